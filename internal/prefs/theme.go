package prefs

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	DefaultThemeKey = "theme"

	TokenDark  = "dark"
	TokenLight = "light"
)

// ThemeState tracks the two-phase initialization of the theme preference.
type ThemeState int

const (
	Uninitialized ThemeState = iota
	// DefaultApplied: dark mode is shown while the persisted preference has not been read yet.
	DefaultApplied
	// Corrected is terminal: the persisted/OS preference was applied, or the user toggled first.
	Corrected
)

func (s ThemeState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case DefaultApplied:
		return "default"
	case Corrected:
		return "corrected"
	default:
		return "unknown"
	}
}

// Correction is the outcome of reading the persisted preference.
// Found is false when neither a token nor an environment signal was available.
type Correction struct {
	Found  bool
	Dark   bool
	Source string
}

// ThemeStore owns the session-wide dark-mode flag. It is created once at the composition root
// and handed to every reader; ToggleDarkMode/SetDarkMode are the only write paths.
type ThemeStore struct {
	mu        sync.Mutex
	kv        KV
	key       string
	signal    LightSignal
	log       logrus.FieldLogger
	state     ThemeState
	dark      bool
	listeners []func(dark bool)
}

type ThemeOption func(*ThemeStore)

func WithLightSignal(sig LightSignal) ThemeOption {
	return func(s *ThemeStore) {
		if sig != nil {
			s.signal = sig
		}
	}
}

func WithLogger(l logrus.FieldLogger) ThemeOption {
	return func(s *ThemeStore) {
		if l != nil {
			s.log = l
		}
	}
}

func WithKey(key string) ThemeOption {
	return func(s *ThemeStore) {
		if key != "" {
			s.key = key
		}
	}
}

// NewThemeStore returns a store in the DefaultApplied state (dark mode on). The persisted
// preference is not read here so the first frame never waits on storage.
func NewThemeStore(kv KV, opts ...ThemeOption) *ThemeStore {
	s := &ThemeStore{
		kv:     kv,
		key:    DefaultThemeKey,
		signal: NoSignal,
		log:    logrus.StandardLogger(),
		state:  Uninitialized,
	}
	for _, o := range opts {
		o(s)
	}
	s.dark = true
	s.state = DefaultApplied
	return s
}

func (s *ThemeStore) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

func (s *ThemeStore) State() ThemeState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the storage token for the current value.
func (s *ThemeStore) Token() string {
	return tokenFor(s.DarkMode())
}

// OnChange registers fn to run synchronously with every value change, including the
// initial correction. fn must not call back into the store.
func (s *ThemeStore) OnChange(fn func(dark bool)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Load reads the persisted token, falling back to the light-preference signal when no token
// exists. It does not touch the store's state, so it may run off the UI loop.
// Storage failures are logged and reported as "no preference found".
func (s *ThemeStore) Load(ctx context.Context) Correction {
	if s.kv != nil {
		v, ok, err := s.kv.Get(ctx, s.key)
		switch {
		case err != nil:
			s.log.WithError(err).WithField("key", s.key).Warn("theme: read persisted preference")
			return Correction{}
		case ok:
			// Any token other than "light" keeps the dark default.
			return Correction{Found: true, Dark: v != TokenLight, Source: "storage"}
		}
	}
	if light, ok := s.signal(); ok {
		return Correction{Found: true, Dark: !light, Source: "environment"}
	}
	return Correction{}
}

// ApplyCorrection moves DefaultApplied -> Corrected. It is ignored (false) once the state has
// left DefaultApplied, so a correction that arrives after a manual toggle never clobbers it.
// The resulting value is written back to storage.
func (s *ThemeStore) ApplyCorrection(ctx context.Context, c Correction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != DefaultApplied {
		s.log.WithField("state", s.state.String()).Debug("theme: correction superseded")
		return false
	}
	s.state = Corrected
	if c.Found && c.Dark != s.dark {
		s.dark = c.Dark
		s.notifyLocked()
	}
	s.persistLocked(ctx)
	return true
}

// Initialize runs Load and ApplyCorrection back to back.
func (s *ThemeStore) Initialize(ctx context.Context) {
	s.ApplyCorrection(ctx, s.Load(ctx))
}

// ToggleDarkMode flips the flag and persists it. Storage failures are logged, never returned.
func (s *ThemeStore) ToggleDarkMode(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dark = !s.dark
	s.state = Corrected
	s.notifyLocked()
	s.persistLocked(ctx)
}

// SetDarkMode sets an explicit value through the same write path as ToggleDarkMode.
func (s *ThemeStore) SetDarkMode(ctx context.Context, dark bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Corrected
	if s.dark != dark {
		s.dark = dark
		s.notifyLocked()
	}
	s.persistLocked(ctx)
}

func (s *ThemeStore) notifyLocked() {
	for _, fn := range s.listeners {
		fn(s.dark)
	}
}

// persistLocked writes the current token. Writes happen under the lock so the stored token
// always matches the last in-memory value.
func (s *ThemeStore) persistLocked(ctx context.Context) {
	if s.kv == nil {
		return
	}
	token := tokenFor(s.dark)
	if err := s.kv.Set(ctx, s.key, token); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"key": s.key, "token": token}).Warn("theme: persist preference")
	}
}

func tokenFor(dark bool) string {
	if dark {
		return TokenDark
	}
	return TokenLight
}

// ParseToken maps "dark"/"light" to a dark-mode flag.
func ParseToken(v string) (dark bool, ok bool) {
	switch v {
	case TokenDark:
		return true, true
	case TokenLight:
		return false, true
	default:
		return false, false
	}
}
