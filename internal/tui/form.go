package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tasktidy/internal/model"
)

type formField int

const (
	fieldTitle formField = iota
	fieldCategory
	fieldDue
	fieldCount
)

// defaultFormCategory is preselected when the form first opens.
const defaultFormCategory = "2"

// taskForm collects a title, one of the assignable categories and an optional due date.
type taskForm struct {
	title      textinput.Model
	due        textinput.Model
	categories []model.Category
	catIdx     int
	focus      formField
}

func newTaskForm(categories []model.Category) taskForm {
	title := textinput.New()
	title.Placeholder = "What needs to be done?"
	title.Prompt = ""
	title.CharLimit = 200

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD (optional)"
	due.Prompt = ""
	due.CharLimit = len("2006-01-02")

	f := taskForm{title: title, due: due, categories: categories}
	for i, c := range categories {
		if c.ID == defaultFormCategory {
			f.catIdx = i
			break
		}
	}
	return f
}

// open focuses the title field. The selected category is kept from the previous use.
func (f *taskForm) open() tea.Cmd {
	f.focus = fieldTitle
	f.due.Blur()
	return f.title.Focus()
}

func (f *taskForm) close() {
	f.title.Blur()
	f.due.Blur()
}

func (f *taskForm) category() string {
	if len(f.categories) == 0 {
		return ""
	}
	return f.categories[f.catIdx].ID
}

func (f *taskForm) cycleCategory(delta int) {
	n := len(f.categories)
	if n == 0 {
		return
	}
	f.catIdx = ((f.catIdx+delta)%n + n) % n
}

func (f *taskForm) focusNext() tea.Cmd {
	f.focus = (f.focus + 1) % fieldCount
	return f.syncFocus()
}

func (f *taskForm) syncFocus() tea.Cmd {
	f.title.Blur()
	f.due.Blur()
	switch f.focus {
	case fieldTitle:
		return f.title.Focus()
	case fieldDue:
		return f.due.Focus()
	}
	return nil
}

// values parses the form. A malformed due date is returned as an error; an empty title is
// left for the store to reject.
func (f *taskForm) values() (title, category string, due *time.Time, err error) {
	due, err = model.ParseDate(f.due.Value())
	if err != nil {
		return "", "", nil, err
	}
	return f.title.Value(), f.category(), due, nil
}

// reset clears the text fields after a successful submit. The category selection sticks.
func (f *taskForm) reset() {
	f.title.SetValue("")
	f.due.SetValue("")
}

// update routes a key to the focused field. Left/right/space cycle the category when the
// category row is focused.
func (f *taskForm) update(msg tea.KeyMsg) tea.Cmd {
	switch f.focus {
	case fieldCategory:
		switch msg.String() {
		case "left", "h":
			f.cycleCategory(-1)
		case "right", "l", " ":
			f.cycleCategory(1)
		}
		return nil
	case fieldDue:
		var cmd tea.Cmd
		f.due, cmd = f.due.Update(msg)
		return cmd
	default:
		var cmd tea.Cmd
		f.title, cmd = f.title.Update(msg)
		return cmd
	}
}

func (f *taskForm) view(width int) string {
	label := func(s string, focused bool) string {
		st := styleMuted()
		if focused {
			st = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
		}
		return st.Render(s)
	}
	inputW := max(10, width-12)
	f.title.Width = inputW
	f.due.Width = inputW

	cats := make([]string, 0, len(f.categories))
	for i, c := range f.categories {
		if i == f.catIdx {
			cats = append(cats, styleSelected().Render(" "+c.Name+" "))
			continue
		}
		cats = append(cats, styleMuted().Render(" "+c.Name+" "))
	}

	rows := []string{
		label("Title    ", f.focus == fieldTitle) + " " + f.title.View(),
		label("Category ", f.focus == fieldCategory) + " " + strings.Join(cats, " "),
		label("Due      ", f.focus == fieldDue) + " " + f.due.View(),
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(max(minMainWidth, width-2)).
		Render(styleHeading().Render("New task") + "\n" + strings.Join(rows, "\n"))
}
