package store

import (
	"reflect"
	"testing"
	"time"

	"tasktidy/internal/model"
)

func TestFilteredView(t *testing.T) {
	t.Parallel()

	tasks := SeedTasks(fixedNow)
	tests := []struct {
		category string
		want     []string
	}{
		{category: AllTasksID, want: []string{"1", "2", "3", "4", "5"}},
		{category: "2", want: []string{"1", "5"}},
		{category: "3", want: []string{"2", "4"}},
		{category: "4", want: []string{"3"}},
		{category: "99", want: []string{}},
	}
	for _, tc := range tests {
		got := taskIDs(FilteredView(tasks, tc.category))
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("FilteredView(%q): want %v, got %v", tc.category, tc.want, got)
		}
	}
}

func TestFilteredView_ReflectsLaterMutations(t *testing.T) {
	t.Parallel()

	s := NewTaskStore(SeedTasks(fixedNow))
	if got := len(FilteredView(s.Tasks(), "4")); got != 1 {
		t.Fatalf("expected 1 task in category 4, got %d", got)
	}
	s.Create("Renew passport", "4", nil)
	if got := len(FilteredView(s.Tasks(), "4")); got != 2 {
		t.Fatalf("expected 2 tasks in category 4 after create, got %d", got)
	}
}

func TestPartition_PreservesOrder(t *testing.T) {
	t.Parallel()

	tasks := []model.Task{
		{ID: "a"}, {ID: "b", Completed: true}, {ID: "c"}, {ID: "d", Completed: true}, {ID: "e"},
	}
	pending, completed := Partition(tasks)
	if got := taskIDs(pending); !reflect.DeepEqual(got, []string{"a", "c", "e"}) {
		t.Fatalf("pending: got %v", got)
	}
	if got := taskIDs(completed); !reflect.DeepEqual(got, []string{"b", "d"}) {
		t.Fatalf("completed: got %v", got)
	}
}

func TestCompletionStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tasks []model.Task
		want  Stats
	}{
		{name: "empty", tasks: nil, want: Stats{0, 0, 0}},
		{
			name:  "one of four",
			tasks: []model.Task{{Completed: true}, {}, {}, {}},
			want:  Stats{Completed: 1, Total: 4, Percentage: 25},
		},
		{
			name:  "two of three rounds",
			tasks: []model.Task{{Completed: true}, {Completed: true}, {}},
			want:  Stats{Completed: 2, Total: 3, Percentage: 67},
		},
		{
			name:  "all done",
			tasks: []model.Task{{Completed: true}, {Completed: true}},
			want:  Stats{Completed: 2, Total: 2, Percentage: 100},
		},
	}
	for _, tc := range tests {
		if got := CompletionStats(tc.tasks); got != tc.want {
			t.Fatalf("%s: want %+v, got %+v", tc.name, tc.want, got)
		}
	}
}

func TestIsOverdue(t *testing.T) {
	t.Parallel()

	past := model.Date(2024, time.March, 9)
	future := model.Date(2024, time.March, 11)
	tests := []struct {
		name string
		task model.Task
		want bool
	}{
		{name: "past pending", task: model.Task{Due: past}, want: true},
		{name: "past completed", task: model.Task{Due: past, Completed: true}, want: false},
		{name: "future pending", task: model.Task{Due: future}, want: false},
		{name: "no due pending", task: model.Task{}, want: false},
		{name: "no due completed", task: model.Task{Completed: true}, want: false},
		{name: "due today after midnight", task: model.Task{Due: model.Date(2024, time.March, 10)}, want: true},
	}
	for _, tc := range tests {
		if got := IsOverdue(tc.task, fixedNow); got != tc.want {
			t.Fatalf("%s: want %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestIsOverdue_DependsOnInstantOnly(t *testing.T) {
	t.Parallel()

	task := model.Task{Due: model.Date(2024, time.March, 10)}
	before := time.Date(2024, time.March, 9, 23, 59, 0, 0, time.Local)
	if IsOverdue(task, before) {
		t.Fatalf("task must not be overdue before its due instant")
	}
	if !IsOverdue(task, before.Add(2*time.Minute)) {
		t.Fatalf("task must become overdue once the instant passes, without any store mutation")
	}
}

func TestScenario_CategoryToggleStats(t *testing.T) {
	t.Parallel()

	// Seeded tasks: 2 in category "2", 2 in "3", 1 in "4". Start with none completed in "2".
	s := NewTaskStore(SeedTasks(fixedNow))
	allBefore := CompletionStats(FilteredView(s.Tasks(), AllTasksID))

	work := FilteredView(s.Tasks(), "2")
	if len(work) != 2 {
		t.Fatalf("expected 2 work tasks, got %d", len(work))
	}
	s.ToggleCompletion(work[0].ID)

	if got, want := CompletionStats(FilteredView(s.Tasks(), "2")), (Stats{1, 2, 50}); got != want {
		t.Fatalf("work stats: want %+v, got %+v", want, got)
	}
	allAfter := CompletionStats(FilteredView(s.Tasks(), AllTasksID))
	if allAfter.Total != allBefore.Total {
		t.Fatalf("aggregate total changed: %d -> %d", allBefore.Total, allAfter.Total)
	}
	if allAfter.Completed != allBefore.Completed+1 {
		t.Fatalf("aggregate completed should reflect the toggle: %d -> %d", allBefore.Completed, allAfter.Completed)
	}
}

func TestCountByCategory(t *testing.T) {
	t.Parallel()

	got := CountByCategory(SeedTasks(fixedNow))
	want := map[string]int{AllTasksID: 5, "2": 2, "3": 2, "4": 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}
