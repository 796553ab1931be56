package dashboard

import (
	"context"
	"testing"
	"time"

	"tasktidy/internal/model"
	"tasktidy/internal/prefs"
	"tasktidy/internal/store"
)

var fixedNow = time.Date(2024, time.March, 10, 9, 30, 0, 0, time.Local)

func newController(t *testing.T, opts ...Option) (*Controller, *prefs.Memory) {
	t.Helper()
	kv := prefs.NewMemory()
	theme := prefs.NewThemeStore(kv)
	ts := store.NewTaskStore(store.SeedTasks(fixedNow))
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return New(ts, theme, opts...), kv
}

func ids(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestController_DefaultsToAggregate(t *testing.T) {
	t.Parallel()

	c, _ := newController(t)
	if got := c.ActiveCategory(); got != store.AllTasksID {
		t.Fatalf("active category: want %q, got %q", store.AllTasksID, got)
	}
	if got := c.ActiveCategoryName(); got != "All Tasks" {
		t.Fatalf("heading: got %q", got)
	}
	v := c.View()
	if v.Stats != (store.Stats{Completed: 1, Total: 5, Percentage: 20}) {
		t.Fatalf("stats: got %+v", v.Stats)
	}
	if !equalIDs(ids(v.Pending), []string{"1", "3", "4", "5"}) {
		t.Fatalf("pending: got %v", ids(v.Pending))
	}
	if !equalIDs(ids(v.Completed), []string{"2"}) {
		t.Fatalf("completed: got %v", ids(v.Completed))
	}
}

func TestController_ToggleUpdatesViewAndAggregate(t *testing.T) {
	t.Parallel()

	c, _ := newController(t)
	c.SetActiveCategory("2")
	before := c.View()
	if before.Stats != (store.Stats{Completed: 0, Total: 2, Percentage: 0}) {
		t.Fatalf("work stats before: got %+v", before.Stats)
	}

	if !c.ToggleCompletion("1") {
		t.Fatalf("toggle of seeded task failed")
	}
	after := c.View()
	if after.Stats != (store.Stats{Completed: 1, Total: 2, Percentage: 50}) {
		t.Fatalf("work stats after: got %+v", after.Stats)
	}
	if !equalIDs(ids(after.Completed), []string{"1"}) || !equalIDs(ids(after.Pending), []string{"5"}) {
		t.Fatalf("partition after toggle: pending=%v completed=%v", ids(after.Pending), ids(after.Completed))
	}

	c.SetActiveCategory(store.AllTasksID)
	all := c.View()
	if all.Stats.Total != 5 || all.Stats.Completed != 2 {
		t.Fatalf("aggregate must reflect the toggle, got %+v", all.Stats)
	}
}

func TestController_UnknownCategoryFiltersToNothing(t *testing.T) {
	t.Parallel()

	c, _ := newController(t)
	c.SetActiveCategory("99")
	v := c.View()
	if !v.Empty() {
		t.Fatalf("expected empty view, got %v", ids(v.Tasks))
	}
	if v.Stats != (store.Stats{}) {
		t.Fatalf("expected zero stats, got %+v", v.Stats)
	}
	if got := c.ActiveCategoryName(); got != DefaultHeading {
		t.Fatalf("heading fallback: got %q", got)
	}
	if got := c.CategoryName("99"); got != store.UnknownCategoryName {
		t.Fatalf("category fallback: got %q", got)
	}
}

func TestController_CreateAppearsInActiveView(t *testing.T) {
	t.Parallel()

	c, _ := newController(t)
	c.SetActiveCategory("4")

	if _, ok := c.CreateTask("   ", "4", nil); ok {
		t.Fatalf("blank title must be rejected")
	}
	task, ok := c.CreateTask("  Renew passport ", "4", model.Date(2024, time.April, 1))
	if !ok {
		t.Fatalf("create failed")
	}
	if task.Title != "Renew passport" || task.Completed {
		t.Fatalf("unexpected task: %+v", task)
	}
	v := c.View()
	if !equalIDs(ids(v.Pending), []string{"3", task.ID}) {
		t.Fatalf("new task must be appended: got %v", ids(v.Pending))
	}
}

func TestController_OverdueReadsClockEachCall(t *testing.T) {
	t.Parallel()

	now := fixedNow
	c, _ := newController(t, WithClock(func() time.Time { return now }))
	task, _ := c.CreateTask("Pay rent", "3", model.Date(2024, time.March, 11))

	if c.Overdue(task) {
		t.Fatalf("not overdue before the due date")
	}
	now = time.Date(2024, time.March, 12, 0, 0, 0, 0, time.Local)
	if !c.Overdue(task) {
		t.Fatalf("overdue once the clock passes the due date")
	}
	c.ToggleCompletion(task.ID)
	done, _ := c.tasks.Get(task.ID)
	if c.Overdue(done) {
		t.Fatalf("completed tasks are never overdue")
	}
}

func TestController_ThemePassthrough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, kv := newController(t)
	if !c.DarkMode() {
		t.Fatalf("dark by default")
	}
	c.ToggleDarkMode(ctx)
	if c.DarkMode() {
		t.Fatalf("toggle did not reach the theme store")
	}
	v, ok, _ := kv.Get(ctx, prefs.DefaultThemeKey)
	if !ok || v != prefs.TokenLight {
		t.Fatalf("persisted token: got %q ok=%v", v, ok)
	}
}

func TestController_CategoryCounts(t *testing.T) {
	t.Parallel()

	c, _ := newController(t)
	counts := c.CategoryCounts()
	want := map[string]int{"1": 5, "2": 2, "3": 2, "4": 1}
	for id, n := range want {
		if counts[id] != n {
			t.Fatalf("count[%s]: want %d, got %d", id, n, counts[id])
		}
	}
}
