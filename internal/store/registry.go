package store

import "tasktidy/internal/model"

const (
	// AllTasksID is the aggregate category: it matches every task when filtering and is
	// never stored on a task.
	AllTasksID = "1"

	UnknownCategoryName = "Unknown"
)

// Registry is the fixed category list. It has no mutation operations.
type Registry struct {
	categories []model.Category
}

func DefaultCategories() []model.Category {
	return []model.Category{
		{ID: AllTasksID, Name: "All Tasks"},
		{ID: "2", Name: "Work"},
		{ID: "3", Name: "Personal"},
		{ID: "4", Name: "Other"},
	}
}

func NewRegistry(categories []model.Category) Registry {
	out := make([]model.Category, len(categories))
	copy(out, categories)
	return Registry{categories: out}
}

func DefaultRegistry() Registry {
	return NewRegistry(DefaultCategories())
}

// All returns every category, the aggregate included, in registry order.
func (r Registry) All() []model.Category {
	out := make([]model.Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Assignable returns the categories a new task can be filed under.
func (r Registry) Assignable() []model.Category {
	out := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		if IsAggregate(c.ID) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (r Registry) Has(id string) bool {
	_, ok := r.lookup(id)
	return ok
}

// NameOf returns the category name, or "Unknown" when no category has that id.
func (r Registry) NameOf(id string) string {
	if c, ok := r.lookup(id); ok {
		return c.Name
	}
	return UnknownCategoryName
}

func (r Registry) lookup(id string) (model.Category, bool) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

func IsAggregate(id string) bool { return id == AllTasksID }
