package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"tasktidy/internal/dashboard"
	"tasktidy/internal/model"
)

const (
	emptyTitle = "No tasks found"
	emptyHint  = "Add your first task to get started"
)

func (m Model) View() string {
	if m.overlay != overlayNone {
		var box string
		switch m.overlay {
		case overlayOnboarding:
			box = m.onboard.view(m.width)
		case overlayTips:
			box = m.tips.view(m.width)
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	header := m.viewHeader()
	footer := m.viewFooter()
	bodyH := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyH < 3 {
		bodyH = 3
	}

	mainW := max(minMainWidth, m.width-sidebarWidth-1)
	sidebar := normalizePane(m.viewSidebar(), sidebarWidth, bodyH)
	mainPane := normalizePane(m.viewMain(mainW, bodyH), mainW, bodyH)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mainPane)

	return strings.Join([]string{header, body, footer}, "\n")
}

func (m Model) viewHeader() string {
	left := styleTitle().Render("TaskTidy")
	right := styleMuted().Render(themeIndicator(m.ctrl.DarkMode()))
	gap := m.width - xansi.StringWidth(left) - xansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	rule := styleMuted().Render(strings.Repeat("─", max(0, m.width)))
	return line + "\n" + rule
}

func (m Model) viewSidebar() string {
	counts := m.ctrl.CategoryCounts()
	active := m.ctrl.ActiveCategory()

	lines := []string{styleHeading().Render("Categories"), ""}
	for i, c := range m.ctrl.Categories() {
		marker := "  "
		if c.ID == active {
			marker = "› "
		}
		n := fmt.Sprintf("%d", counts[c.ID])
		name := truncate(fmt.Sprintf("%d %s", i+1, c.Name), sidebarWidth-len(marker)-len(n)-2)
		pad := sidebarWidth - len(marker) - xansi.StringWidth(name) - len(n) - 1
		row := marker + name + strings.Repeat(" ", max(1, pad)) + n
		if c.ID == active {
			row = styleSelected().Render(row)
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewMain(width, height int) string {
	var parts []string
	if m.adding {
		parts = append(parts, m.form.view(width), "")
	}

	v := m.ctrl.View()
	heading := styleHeading().Render(m.ctrl.ActiveCategoryName())
	if !v.Empty() {
		heading += "  " + renderProgressBar(v.Stats.Completed, v.Stats.Total, v.Stats.Percentage)
	}
	parts = append(parts, heading, "")

	if v.Empty() {
		parts = append(parts,
			styleHeading().Render(emptyTitle),
			styleMuted().Render(emptyHint),
		)
		return strings.Join(parts, "\n")
	}

	used := lipgloss.Height(strings.Join(parts, "\n"))
	parts = append(parts, m.viewList(v, width, height-used))
	return strings.Join(parts, "\n")
}

// viewList renders both groups, scrolled so the cursor row stays visible within maxLines.
func (m Model) viewList(v dashboard.View, width, maxLines int) string {
	type line struct {
		text string
		row  int // -1 for group headings/spacers
	}
	var lines []line
	row := 0
	group := func(title string, tasks []model.Task) {
		if len(tasks) == 0 {
			return
		}
		if len(lines) > 0 {
			lines = append(lines, line{row: -1})
		}
		lines = append(lines, line{text: styleMuted().Render(fmt.Sprintf("%s (%d)", title, len(tasks))), row: -1})
		for _, t := range tasks {
			lines = append(lines, line{text: m.viewTask(t, width, row == m.cursor), row: row})
			row++
		}
	}
	group("Tasks to do", v.Pending)
	group("Completed", v.Completed)

	start := 0
	if maxLines > 0 && len(lines) > maxLines {
		for i, ln := range lines {
			if ln.row == m.cursor && i >= maxLines {
				start = i - maxLines + 1
				break
			}
		}
	}
	end := len(lines)
	if maxLines > 0 && end-start > maxLines {
		end = start + maxLines
	}
	out := make([]string, 0, end-start)
	for _, ln := range lines[start:end] {
		out = append(out, ln.text)
	}
	return strings.Join(out, "\n")
}

func (m Model) viewTask(t model.Task, width int, selected bool) string {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}
	cursor := "  "
	if selected {
		cursor = "› "
	}

	meta := m.ctrl.CategoryName(t.Category)
	if t.HasDue() {
		meta += " · " + model.DisplayDate(t.Due)
	}
	overdue := m.ctrl.Overdue(t)
	if overdue {
		meta += " · overdue"
	}

	prefix := cursor + check + " "
	titleW := width - xansi.StringWidth(prefix) - xansi.StringWidth(meta) - 2
	title := truncate(t.Title, max(4, titleW))
	gap := max(1, width-xansi.StringWidth(prefix)-xansi.StringWidth(title)-xansi.StringWidth(meta))

	metaSt := styleMuted()
	titleSt := lipgloss.NewStyle().Foreground(colorSurfaceFg)
	switch {
	case t.Completed:
		titleSt = styleDone()
	case overdue:
		titleSt = styleOverdue()
		metaSt = lipgloss.NewStyle().Foreground(colorOverdueFg)
	}
	row := prefix + titleSt.Render(title) + strings.Repeat(" ", gap) + metaSt.Render(meta)
	if selected {
		row = lipgloss.NewStyle().Background(colorSelectedBg).Render(row)
	}
	return row
}

func (m Model) viewFooter() string {
	status := ""
	if m.status != "" {
		st := lipgloss.NewStyle().Foreground(colorOKFg)
		if m.statusErr {
			st = lipgloss.NewStyle().Foreground(colorErrorFg)
		}
		status = st.Render(m.status)
	}
	var helpView string
	if m.adding {
		helpView = m.help.View(formHelp{k: m.keys})
	} else {
		helpView = m.help.View(m.keys)
	}
	return status + "\n" + helpView
}
