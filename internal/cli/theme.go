package cli

import (
	"github.com/spf13/cobra"

	"tasktidy/internal/format"
	"tasktidy/internal/prefs"
)

type themeView struct {
	DarkMode bool   `json:"darkMode"`
	Token    string `json:"token"`
	State    string `json:"state"`
}

func viewTheme(s *prefs.ThemeStore) themeView {
	return themeView{DarkMode: s.DarkMode(), Token: s.Token(), State: s.State().String()}
}

func newThemeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the persisted theme preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, kv, err := app.openTheme(cmd.Context(), app.cliLogger(cmd))
			if err != nil {
				return err
			}
			defer kv.Close()

			theme.Initialize(cmd.Context())
			return writeOut(cmd, app, format.Envelope{Data: viewTheme(theme)})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Flip between dark and light",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, kv, err := app.openTheme(cmd.Context(), app.cliLogger(cmd))
			if err != nil {
				return err
			}
			defer kv.Close()

			// Toggle relative to the stored value, not the dark default.
			theme.Initialize(cmd.Context())
			theme.ToggleDarkMode(cmd.Context())
			return writeOut(cmd, app, format.Envelope{Data: viewTheme(theme)})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <dark|light>",
		Short:     "Set the theme explicitly",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{prefs.TokenDark, prefs.TokenLight},
		RunE: func(cmd *cobra.Command, args []string) error {
			dark, ok := prefs.ParseToken(args[0])
			if !ok {
				return errUsage("invalid theme %q (expected %s or %s)", args[0], prefs.TokenDark, prefs.TokenLight)
			}
			theme, kv, err := app.openTheme(cmd.Context(), app.cliLogger(cmd))
			if err != nil {
				return err
			}
			defer kv.Close()

			theme.SetDarkMode(cmd.Context(), dark)
			return writeOut(cmd, app, format.Envelope{Data: viewTheme(theme)})
		},
	})

	return cmd
}
