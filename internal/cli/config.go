package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"tasktidy/internal/config"
	"tasktidy/internal/format"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage config.toml",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.configPath()
			if err != nil {
				return err
			}
			_, statErr := os.Stat(path)
			return writeOut(cmd, app, format.Envelope{Data: map[string]any{
				"path":   path,
				"dir":    app.dir,
				"exists": statErr == nil,
			}})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default config if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.configPath()
			if err != nil {
				return err
			}
			_, statErr := os.Stat(path)
			created := errors.Is(statErr, os.ErrNotExist)
			if _, err := config.LoadOrCreate(path); err != nil {
				return err
			}
			return writeOut(cmd, app, format.Envelope{Data: map[string]any{
				"path":    path,
				"created": created,
			}})
		},
	})

	return cmd
}
