package dashboard

import (
	"context"
	"strings"
	"time"

	"tasktidy/internal/model"
	"tasktidy/internal/prefs"
	"tasktidy/internal/store"
)

// DefaultHeading is shown above the list when the active category has no registry entry.
const DefaultHeading = "Tasks"

// View is the derived state of the task list for the active category.
type View struct {
	Tasks     []model.Task `json:"tasks"`
	Pending   []model.Task `json:"pending"`
	Completed []model.Task `json:"completed"`
	Stats     store.Stats  `json:"stats"`
}

func (v View) Empty() bool { return len(v.Tasks) == 0 }

// Controller wires the task store, the category registry and the theme preference together.
// It is driven from a single loop (the TUI or one CLI invocation) and adds no rules of its own.
type Controller struct {
	tasks    *store.TaskStore
	registry store.Registry
	theme    *prefs.ThemeStore
	now      func() time.Time

	active string
}

type Option func(*Controller)

// WithClock replaces time.Now for overdue checks.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

func WithRegistry(r store.Registry) Option {
	return func(c *Controller) { c.registry = r }
}

func New(tasks *store.TaskStore, theme *prefs.ThemeStore, opts ...Option) *Controller {
	c := &Controller{
		tasks:    tasks,
		registry: store.DefaultRegistry(),
		theme:    theme,
		now:      time.Now,
		active:   store.AllTasksID,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Controller) ActiveCategory() string { return c.active }

// ActiveCategoryName is the list heading: the category name, or "Tasks" for an id the
// registry does not know.
func (c *Controller) ActiveCategoryName() string {
	if c.registry.Has(c.active) {
		return c.registry.NameOf(c.active)
	}
	return DefaultHeading
}

// SetActiveCategory accepts any id; an unknown id simply filters to an empty list.
func (c *Controller) SetActiveCategory(id string) {
	c.active = strings.TrimSpace(id)
}

func (c *Controller) Categories() []model.Category { return c.registry.All() }

func (c *Controller) AssignableCategories() []model.Category { return c.registry.Assignable() }

func (c *Controller) CategoryName(id string) string { return c.registry.NameOf(id) }

// View recomputes the filtered list, its partition and its statistics from the current store
// contents.
func (c *Controller) View() View {
	visible := store.FilteredView(c.tasks.Tasks(), c.active)
	pending, completed := store.Partition(visible)
	return View{
		Tasks:     visible,
		Pending:   pending,
		Completed: completed,
		Stats:     store.CompletionStats(visible),
	}
}

// CategoryCounts returns the number of tasks per category id over the whole store.
func (c *Controller) CategoryCounts() map[string]int {
	return store.CountByCategory(c.tasks.Tasks())
}

// Overdue evaluates t against the clock at call time.
func (c *Controller) Overdue(t model.Task) bool {
	return store.IsOverdue(t, c.now())
}

func (c *Controller) CreateTask(title, category string, due *time.Time) (model.Task, bool) {
	return c.tasks.Create(title, category, due)
}

func (c *Controller) ToggleCompletion(id string) bool {
	return c.tasks.ToggleCompletion(id)
}

func (c *Controller) DarkMode() bool {
	if c.theme == nil {
		return true
	}
	return c.theme.DarkMode()
}

func (c *Controller) ToggleDarkMode(ctx context.Context) {
	if c.theme == nil {
		return
	}
	c.theme.ToggleDarkMode(ctx)
}

func (c *Controller) Theme() *prefs.ThemeStore { return c.theme }
