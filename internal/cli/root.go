package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tasktidy/internal/config"
	"tasktidy/internal/dashboard"
	"tasktidy/internal/format"
	"tasktidy/internal/logging"
	"tasktidy/internal/model"
	"tasktidy/internal/prefs"
	"tasktidy/internal/store"
	"tasktidy/internal/tui"
)

type App struct {
	ConfigPath   string
	Prefs        string
	PrettyJSON   bool
	Format       string
	NoOnboarding bool

	cfg config.Config
	dir string
	now func() time.Time
}

func NewRootCmd() *cobra.Command {
	app := &App{now: time.Now}

	cmd := &cobra.Command{
		Use:          "tasktidy",
		Short:        "TaskTidy terminal task dashboard",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the dashboard
  tasktidy

  # Switch the theme from a script
  tasktidy theme set light
  tasktidy dark

  # Inspect the demo tasks
  tasktidy tasks list --category 2 --pretty
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.loadConfig()
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("TASKTIDY_CONFIG", ""), "Path to config.toml (default: <config dir>/config.toml)")
	cmd.PersistentFlags().StringVar(&app.Prefs, "prefs", "", "Preferences backend override (sqlite|file|redis|memory)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TASKTIDY_FORMAT", format.JSON), "Output format (json|edn)")
	cmd.PersistentFlags().BoolVar(&app.NoOnboarding, "no-onboarding", false, "Skip the onboarding walkthrough")

	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func (app *App) configPath() (string, error) {
	if p := strings.TrimSpace(app.ConfigPath); p != "" {
		return p, nil
	}
	return config.Path()
}

func (app *App) loadConfig() error {
	path, err := app.configPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()
	if p := strings.TrimSpace(app.Prefs); p != "" {
		cfg.Prefs.Backend = p
	}
	app.cfg = cfg
	app.dir = filepath.Dir(path)
	return nil
}

// openTheme opens the configured preferences backend. A backend that fails to open is
// logged and replaced by an in-memory store so the theme keeps working for the session;
// an unknown backend name is a usage error.
func (app *App) openTheme(ctx context.Context, log logrus.FieldLogger) (*prefs.ThemeStore, prefs.KV, error) {
	kv, err := prefs.Open(ctx, prefs.Options{
		Backend:  app.cfg.Prefs.Backend,
		Path:     app.cfg.PrefsPath(app.dir),
		RedisURL: app.cfg.Prefs.RedisURL,
	})
	if errors.Is(err, prefs.ErrUnknownBackend) {
		return nil, nil, errUsage("%s", err.Error())
	}
	if err != nil {
		log.WithError(err).Warn("preferences unavailable; using session-only storage")
		kv = prefs.NewMemory()
	}
	theme := prefs.NewThemeStore(kv,
		prefs.WithKey(app.cfg.Prefs.Key),
		prefs.WithLogger(log),
		prefs.WithLightSignal(prefs.EnvLightSignal),
	)
	return theme, kv, nil
}

func (app *App) newController(theme *prefs.ThemeStore, seed bool) *dashboard.Controller {
	var tasks []model.Task
	if seed {
		tasks = store.SeedTasks(app.now())
	}
	return dashboard.New(store.NewTaskStore(tasks), theme, dashboard.WithClock(app.now))
}

// cliLogger writes warnings to stderr so they never mix with command output.
func (app *App) cliLogger(cmd *cobra.Command) *logrus.Logger {
	return logging.New(cmd.ErrOrStderr(), app.cfg.Log.Level)
}

func runTUI(cmd *cobra.Command, app *App) error {
	path, err := app.configPath()
	if err != nil {
		return err
	}
	// First interactive run writes the default config.
	if _, err := config.LoadOrCreate(path); err != nil {
		return err
	}

	log, closer := app.tuiLogger()
	defer closer.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	theme, kv, err := app.openTheme(ctx, log)
	if err != nil {
		return err
	}
	defer kv.Close()

	log.WithFields(logrus.Fields{"backend": app.cfg.Prefs.Backend, "dir": app.dir}).Info("tasktidy: start")
	return tui.Run(ctx, tui.Options{
		Controller: app.newController(theme, app.cfg.UI.Seed),
		Keys:       app.cfg.Keys,
		Onboarding: app.cfg.UI.Onboarding && !app.NoOnboarding,
		Logger:     log,
	})
}

// tuiLogger logs to a file: the terminal belongs to the TUI.
func (app *App) tuiLogger() (*logrus.Logger, io.Closer) {
	path := config.Resolve(app.dir, app.cfg.Log.File)
	if path == "" {
		return logging.Discard(), io.NopCloser(nil)
	}
	log, closer, err := logging.OpenFile(path, app.cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tasktidy: logging disabled: %v\n", err)
		return logging.Discard(), io.NopCloser(nil)
	}
	return log, closer
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}
