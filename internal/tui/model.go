package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"tasktidy/internal/config"
	"tasktidy/internal/dashboard"
	"tasktidy/internal/model"
	"tasktidy/internal/prefs"
)

// Options configures the dashboard model.
type Options struct {
	Controller *dashboard.Controller
	Keys       config.Keymap
	Onboarding bool
	Logger     logrus.FieldLogger
}

// themeLoadedMsg carries the persisted theme preference read after the first frame.
type themeLoadedMsg struct {
	correction prefs.Correction
}

type Model struct {
	ctx  context.Context
	ctrl *dashboard.Controller
	log  logrus.FieldLogger
	keys keyMap
	help help.Model

	width  int
	height int

	adding bool
	form   taskForm
	cursor int

	overlay overlayKind
	onboard onboarding
	tips    tips

	status    string
	statusErr bool
}

func New(ctx context.Context, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	m := Model{
		ctx:    ctx,
		ctrl:   opts.Controller,
		log:    log,
		keys:   newKeyMap(opts.Keys),
		help:   help.New(),
		width:  80,
		height: 24,
		form:   newTaskForm(opts.Controller.AssignableCategories()),
	}
	if opts.Onboarding {
		m.overlay = overlayOnboarding
	}
	return m
}

// Init starts the theme correction. The first frame renders with the dark default.
func (m Model) Init() tea.Cmd {
	return loadThemeCmd(m.ctx, m.ctrl.Theme())
}

func loadThemeCmd(ctx context.Context, theme *prefs.ThemeStore) tea.Cmd {
	if theme == nil {
		return nil
	}
	return func() tea.Msg {
		return themeLoadedMsg{correction: theme.Load(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case themeLoadedMsg:
		if theme := m.ctrl.Theme(); theme != nil {
			applied := theme.ApplyCorrection(m.ctx, msg.correction)
			m.log.WithFields(logrus.Fields{
				"applied": applied,
				"found":   msg.correction.Found,
				"source":  msg.correction.Source,
				"dark":    theme.DarkMode(),
			}).Debug("tui: theme correction")
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.overlay {
		case overlayOnboarding:
			return m.updateOnboarding(msg)
		case overlayTips:
			return m.updateTips(msg)
		}
		if m.adding {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	if m.adding {
		// Cursor blink and other textinput messages.
		var cmd tea.Cmd
		switch m.form.focus {
		case fieldTitle:
			m.form.title, cmd = m.form.title.Update(msg)
		case fieldDue:
			m.form.due, cmd = m.form.due.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) updateOnboarding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "right", "l", "n", " ":
		if m.onboard.next() {
			m.overlay = overlayNone
		}
	case "left", "h", "backspace", "b":
		m.onboard.back()
	case "esc", "s", "q":
		m.overlay = overlayNone
	}
	return m, nil
}

func (m Model) updateTips(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "right", "l", "n", "tab":
		m.tips.next()
	case "left", "h", "p", "shift+tab":
		m.tips.prev()
	case "esc", "q":
		m.overlay = overlayNone
	default:
		if key.Matches(msg, m.keys.Tips) {
			m.overlay = overlayNone
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.adding = false
		m.form.close()
		m.setStatus("", false)
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()
	case key.Matches(msg, m.keys.FocusNext):
		return m, m.form.focusNext()
	case key.Matches(msg, m.keys.CycleOption):
		m.form.cycleCategory(1)
		return m, nil
	}
	return m, m.form.update(msg)
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	title, category, due, err := m.form.values()
	if err != nil {
		m.setStatus("Invalid due date (use YYYY-MM-DD)", true)
		return m, nil
	}
	task, ok := m.ctrl.CreateTask(title, category, due)
	if !ok {
		m.setStatus("A task needs a title", true)
		return m, nil
	}
	m.log.WithFields(logrus.Fields{"id": task.ID, "category": task.Category}).Debug("tui: task created")
	m.form.reset()
	m.form.close()
	m.adding = false
	m.selectTask(task.ID)
	m.setStatus("Added: "+task.Title, false)
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Toggle):
		m.toggleSelected()
	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.setStatus("", false)
		return m, m.form.open()
	case key.Matches(msg, m.keys.NextCat):
		m.cycleCategory(1)
	case key.Matches(msg, m.keys.PrevCat):
		m.cycleCategory(-1)
	case key.Matches(msg, m.keys.Theme):
		m.ctrl.ToggleDarkMode(m.ctx)
	case key.Matches(msg, m.keys.Tips):
		m.overlay = overlayTips
	default:
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			m.selectCategoryAt(int(s[0] - '1'))
		}
	}
	return m, nil
}

// rows is the list order on screen: pending tasks, then completed ones.
func (m Model) rows() []model.Task {
	v := m.ctrl.View()
	return append(v.Pending, v.Completed...)
}

func (m *Model) moveCursor(delta int) {
	n := len(m.rows())
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = max(0, min(m.cursor+delta, n-1))
}

func (m *Model) clampCursor() { m.moveCursor(0) }

func (m *Model) toggleSelected() {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return
	}
	t := rows[m.cursor]
	m.ctrl.ToggleCompletion(t.ID)
	// Keep the selection on the task as it moves between groups.
	m.selectTask(t.ID)
}

func (m *Model) selectTask(id string) {
	for i, t := range m.rows() {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

func (m *Model) cycleCategory(delta int) {
	cats := m.ctrl.Categories()
	if len(cats) == 0 {
		return
	}
	idx := -1
	for i, c := range cats {
		if c.ID == m.ctrl.ActiveCategory() {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = 0
	} else {
		idx = ((idx+delta)%len(cats) + len(cats)) % len(cats)
	}
	m.setCategory(cats[idx].ID)
}

func (m *Model) selectCategoryAt(i int) {
	cats := m.ctrl.Categories()
	if i < 0 || i >= len(cats) {
		return
	}
	m.setCategory(cats[i].ID)
}

func (m *Model) setCategory(id string) {
	m.ctrl.SetActiveCategory(id)
	m.cursor = 0
	m.clampCursor()
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = strings.TrimSpace(s)
	m.statusErr = isErr
}
