package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette helpers.
//
// Every colour is an AdaptiveColor pair; the theme preference decides which side is used by
// flipping lipgloss.SetHasDarkBackground, so nothing here needs rebuilding on toggle.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Faint text on light terminals is often illegible.
func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted     = ac("240", "243")
	colorSurfaceFg = ac("235", "252")
	colorAccent    = ac("27", "62") // blue
	colorBorder    = ac("250", "240")

	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorSelectedFg = ac("235", "255")

	colorOverdueFg = ac("160", "203") // red
	colorDoneFg    = ac("244", "241")
	colorErrorFg   = ac("160", "203")
	colorOKFg      = ac("28", "78") // green

	progressFillBg  = ac("189", "62")
	progressEmptyBg = ac("255", "237")
	progressFillFg  = ac("235", "255")
	progressEmptyFg = ac("240", "252")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
}

func styleHeading() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
}

func styleSelected() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg).Bold(true)
}

func styleOverdue() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorOverdueFg).Bold(true)
}

func styleDone() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorDoneFg).Strikethrough(true))
}

// applyColorProfilePreference sets Lip Gloss's color profile for the interactive TUI.
//
// termenv.EnvColorProfile also honors CLICOLOR, which can disable colors inside a TUI; only
// NO_COLOR is respected here, otherwise the terminal's detected capability is used.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Terminals like macOS Terminal.app under-report during probing; trust TERM/COLORTERM.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	switch {
	case strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit"):
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	case strings.Contains(term, "256color"):
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}
	lipgloss.SetColorProfile(profile)
}

// applyDarkMode points every AdaptiveColor at the requested side of the palette.
func applyDarkMode(dark bool) {
	lipgloss.SetHasDarkBackground(dark)
}

func themeIndicator(dark bool) string {
	if dark {
		return "☾ dark"
	}
	return "☀ light"
}
