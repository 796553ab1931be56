package model

import (
	"strings"
	"time"
)

const (
	dateLayout        = "2006-01-02"
	displayDateLayout = "01/02/2006"
)

// ParseDate parses a YYYY-MM-DD calendar date as local midnight.
// An empty (or whitespace-only) value means "no date" and is not an error.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Date returns local midnight for the given calendar day.
func Date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	return &t
}

func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// DisplayDate formats a due date the way the dashboard shows it (MM/DD/YYYY).
func DisplayDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(displayDateLayout)
}
