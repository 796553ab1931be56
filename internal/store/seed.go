package store

import (
	"time"

	"tasktidy/internal/model"
)

// SeedTasks returns the demo tasks a fresh dashboard session starts with.
// "today" anchors the one task that is due on the current day.
func SeedTasks(today time.Time) []model.Task {
	y, m, d := today.Date()
	return []model.Task{
		{ID: "1", Title: "Finish project report", Category: "2", Due: model.Date(2023, time.December, 15)},
		{ID: "2", Title: "Buy groceries", Category: "3", Completed: true, Due: model.Date(y, m, d)},
		{ID: "3", Title: "Plan summer vacation", Category: "4"},
		{ID: "4", Title: "Schedule dentist appointment", Category: "3", Due: model.Date(2023, time.December, 20)},
		{ID: "5", Title: "Research new technologies", Category: "2", Due: model.Date(2024, time.January, 5)},
	}
}
