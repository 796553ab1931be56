package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard on the alternate screen and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	applyColorProfilePreference()
	if theme := opts.Controller.Theme(); theme != nil {
		applyDarkMode(theme.DarkMode())
		theme.OnChange(applyDarkMode)
	}

	m := New(ctx, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
