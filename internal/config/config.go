package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultLogFileName    = "tasktidy.log"

	dirName = ".tasktidy"
)

type Keymap struct {
	Quit        []string `toml:"quit"`
	Up          []string `toml:"up"`
	Down        []string `toml:"down"`
	Toggle      []string `toml:"toggle"`
	Add         []string `toml:"add"`
	NextCat     []string `toml:"next_category"`
	PrevCat     []string `toml:"prev_category"`
	Theme       []string `toml:"theme"`
	Tips        []string `toml:"tips"`
	Submit      []string `toml:"submit"`
	Cancel      []string `toml:"cancel"`
	FocusNext   []string `toml:"focus_next"`
	CycleOption []string `toml:"cycle_option"`
}

type Prefs struct {
	// Backend is one of sqlite|file|redis|memory.
	Backend string `toml:"backend"`
	// Path is relative to the config dir unless absolute. Empty picks a backend default.
	Path     string `toml:"path"`
	RedisURL string `toml:"redis_url"`
	Key      string `toml:"key"`
}

type Log struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type UI struct {
	Onboarding bool `toml:"onboarding"`
	// Seed starts each session with the demo tasks.
	Seed bool `toml:"seed"`
}

type Config struct {
	Prefs Prefs  `toml:"prefs"`
	Log   Log    `toml:"log"`
	UI    UI     `toml:"ui"`
	Keys  Keymap `toml:"keys"`
}

func Default() Config {
	return Config{
		Prefs: Prefs{Backend: "sqlite", Key: "theme"},
		Log:   Log{File: DefaultLogFileName, Level: "info"},
		UI:    UI{Onboarding: true, Seed: true},
		Keys:  DefaultKeymap(),
	}
}

func DefaultKeymap() Keymap {
	return Keymap{
		Quit:        []string{"q", "ctrl+c"},
		Up:          []string{"k", "up"},
		Down:        []string{"j", "down"},
		Toggle:      []string{" ", "x"},
		Add:         []string{"a", "/"},
		NextCat:     []string{"tab"},
		PrevCat:     []string{"shift+tab"},
		Theme:       []string{"t"},
		Tips:        []string{"?"},
		Submit:      []string{"enter"},
		Cancel:      []string{"esc"},
		FocusNext:   []string{"tab"},
		CycleOption: []string{"ctrl+n"},
	}
}

// Dir returns the directory holding config, preferences and logs.
func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.tasktidy).
	if v := strings.TrimSpace(os.Getenv("TASKTIDY_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dirName), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigFileName), nil
}

// LoadOrCreate reads path, writing the defaults first when the file does not exist.
// Fields missing from the file keep their default values.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// Load is LoadOrCreate without the write: a missing file yields the defaults.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return LoadOrCreate(path)
}

func Write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ApplyEnv overlays TASKTIDY_* environment variables.
func (c *Config) ApplyEnv() {
	c.Prefs.Backend = envOr("TASKTIDY_PREFS_BACKEND", c.Prefs.Backend)
	c.Prefs.RedisURL = envOr("TASKTIDY_REDIS_URL", c.Prefs.RedisURL)
	c.Log.Level = envOr("TASKTIDY_LOG_LEVEL", c.Log.Level)
	if b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv("TASKTIDY_DEBUG"))); err == nil && b {
		c.Log.Level = "debug"
	}
}

// Resolve returns p joined to dir unless p is empty or absolute.
func Resolve(dir, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// PrefsPath returns the preferences file for the configured backend.
func (c Config) PrefsPath(dir string) string {
	if p := Resolve(dir, c.Prefs.Path); p != "" {
		return p
	}
	if strings.EqualFold(strings.TrimSpace(c.Prefs.Backend), "file") {
		return filepath.Join(dir, "prefs.json")
	}
	return filepath.Join(dir, "prefs.sqlite")
}

func (c *Config) fillDefaults() {
	d := Default()
	if strings.TrimSpace(c.Prefs.Backend) == "" {
		c.Prefs.Backend = d.Prefs.Backend
	}
	if strings.TrimSpace(c.Prefs.Key) == "" {
		c.Prefs.Key = d.Prefs.Key
	}
	if strings.TrimSpace(c.Log.Level) == "" {
		c.Log.Level = d.Log.Level
	}
	fillKeys(&c.Keys, d.Keys)
}

func fillKeys(k *Keymap, d Keymap) {
	pairs := []struct {
		dst *[]string
		src []string
	}{
		{&k.Quit, d.Quit},
		{&k.Up, d.Up},
		{&k.Down, d.Down},
		{&k.Toggle, d.Toggle},
		{&k.Add, d.Add},
		{&k.NextCat, d.NextCat},
		{&k.PrevCat, d.PrevCat},
		{&k.Theme, d.Theme},
		{&k.Tips, d.Tips},
		{&k.Submit, d.Submit},
		{&k.Cancel, d.Cancel},
		{&k.FocusNext, d.FocusNext},
		{&k.CycleOption, d.CycleOption},
	}
	for _, p := range pairs {
		if len(*p.dst) == 0 {
			*p.dst = p.src
		}
	}
}

func envOr(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}
