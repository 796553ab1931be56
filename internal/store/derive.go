package store

import (
	"math"
	"time"

	"tasktidy/internal/model"
)

// Derived views. Everything here is a pure function of a task snapshot (and, for overdue,
// of the caller-supplied instant); nothing is cached between reads.

type Stats struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// FilteredView returns the tasks visible under activeCategory, preserving order.
func FilteredView(tasks []model.Task, activeCategory string) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if IsAggregate(activeCategory) || t.Category == activeCategory {
			out = append(out, t)
		}
	}
	return out
}

// Partition splits tasks into pending and completed, keeping relative order in each.
func Partition(tasks []model.Task) (pending, completed []model.Task) {
	pending = make([]model.Task, 0, len(tasks))
	completed = make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}
	return pending, completed
}

func CompletionStats(tasks []model.Task) Stats {
	st := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			st.Completed++
		}
	}
	if st.Total > 0 {
		st.Percentage = int(math.Round(float64(st.Completed) / float64(st.Total) * 100))
	}
	return st
}

// IsOverdue reports whether t has a due date strictly before now and is still pending.
func IsOverdue(t model.Task, now time.Time) bool {
	if t.Completed || !t.HasDue() {
		return false
	}
	return t.Due.Before(now)
}

// CountByCategory returns the number of tasks per category id, with the aggregate id
// counting every task.
func CountByCategory(tasks []model.Task) map[string]int {
	out := map[string]int{AllTasksID: len(tasks)}
	for _, t := range tasks {
		if IsAggregate(t.Category) {
			continue
		}
		out[t.Category]++
	}
	return out
}
