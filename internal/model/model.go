package model

import "time"

type Task struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Category  string     `json:"category"`
	Due       *time.Time `json:"dueDate,omitempty"`
	Completed bool       `json:"completed"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HasDue reports whether the task carries a due date.
func (t Task) HasDue() bool { return t.Due != nil && !t.Due.IsZero() }
