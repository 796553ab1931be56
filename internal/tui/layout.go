package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	sidebarWidth  = 24
	minMainWidth  = 30
	modalMaxWidth = 64
	progressWidth = 20
)

// truncate cuts s to at most width display columns, ending with an ellipsis when cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return xansi.Cut(s, 0, 1)
	}
	return xansi.Cut(s, 0, width-1) + "…"
}

// normalizePane forces s to exactly width columns (ANSI-aware) and height lines so panes
// joined with lipgloss.JoinHorizontal stay aligned. height <= 0 keeps the line count.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	for i, ln := range lines {
		ln = truncate(ln, width)
		if w := xansi.StringWidth(ln); w < width {
			ln += strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}
	return strings.Join(lines, "\n")
}

func modalWidth(termWidth int) int {
	w := termWidth - 8
	if w > modalMaxWidth {
		w = modalMaxWidth
	}
	if w < 24 {
		w = 24
	}
	return w
}

// renderModalBox draws a bordered box with a title row, sized for the terminal width.
func renderModalBox(termWidth int, title, body string) string {
	w := modalWidth(termWidth)
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent).
		Render(truncate(title, w-4))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2).
		Width(w).
		Render(head + "\n\n" + body)
}

// renderProgressBar draws a fixed-width bar with the done/total label centred on it.
func renderProgressBar(done, total, percentage int) string {
	if total <= 0 {
		return ""
	}
	label := []rune(fmt.Sprintf("%d/%d", done, total))
	width := progressWidth
	if len(label)+2 > width {
		width = len(label) + 2
	}
	filled := int(math.Round(float64(percentage) / 100 * float64(width)))
	filled = max(0, min(filled, width))
	start := (width - len(label)) / 2

	var b strings.Builder
	for i := 0; i < width; i++ {
		bg, fg := progressEmptyBg, progressEmptyFg
		if i < filled {
			bg, fg = progressFillBg, progressFillFg
		}
		ch := " "
		if i >= start && i < start+len(label) {
			ch = string(label[i-start])
		}
		b.WriteString(lipgloss.NewStyle().Background(bg).Foreground(fg).Render(ch))
	}
	return b.String() + " " + styleMuted().Render(fmt.Sprintf("%d%%", percentage))
}
