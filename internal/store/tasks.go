package store

import (
	"strings"
	"sync"
	"time"

	"tasktidy/internal/model"
)

// TaskStore is the in-memory, insertion-ordered task collection of one session.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []model.Task
	newID func() string
}

type TaskStoreOption func(*TaskStore)

// WithIDGenerator replaces the random id generator. Ids that collide with an existing
// task are re-drawn, so the generator must eventually produce a fresh value.
func WithIDGenerator(gen func() string) TaskStoreOption {
	return func(s *TaskStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}

func NewTaskStore(seed []model.Task, opts ...TaskStoreOption) *TaskStore {
	s := &TaskStore{
		tasks: make([]model.Task, 0, len(seed)),
		newID: func() string { return newRandomID(taskIDPrefix) },
	}
	for _, o := range opts {
		o(s)
	}
	for _, t := range seed {
		s.tasks = append(s.tasks, cloneTask(t))
	}
	return s
}

// Create appends a new pending task. A title that is empty after trimming makes the call a
// no-op: nothing is appended and ok is false.
//
// The category is not validated here; the creation form only offers assignable categories.
func (s *TaskStore) Create(title, category string, due *time.Time) (model.Task, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := model.Task{
		ID:        s.nextIDLocked(),
		Title:     title,
		Category:  category,
		Due:       cloneTime(due),
		Completed: false,
	}
	s.tasks = append(s.tasks, t)
	return cloneTask(t), true
}

// ToggleCompletion flips the completed flag of the task with the given id.
// Unknown ids are ignored.
func (s *TaskStore) ToggleCompletion(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return true
		}
	}
	return false
}

// Tasks returns a snapshot of all tasks in store order.
func (s *TaskStore) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = cloneTask(t)
	}
	return out
}

func (s *TaskStore) Get(id string) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return cloneTask(t), true
		}
	}
	return model.Task{}, false
}

func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

func cloneTask(t model.Task) model.Task {
	t.Due = cloneTime(t.Due)
	return t
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
