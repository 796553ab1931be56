package prefs

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type failingKV struct {
	getErr error
	setErr error
	sets   int
}

func (f *failingKV) Get(context.Context, string) (string, bool, error) { return "", false, f.getErr }
func (f *failingKV) Set(context.Context, string, string) error {
	f.sets++
	return f.setErr
}
func (f *failingKV) Close() error { return nil }

func lightSignal() (bool, bool) { return true, true }

func storedToken(t *testing.T, kv KV) string {
	t.Helper()
	v, ok, err := kv.Get(context.Background(), DefaultThemeKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		return ""
	}
	return v
}

func TestThemeStore_DefaultIsDarkBeforeAnyRead(t *testing.T) {
	t.Parallel()

	kv := NewMemory()
	_ = kv.Set(context.Background(), DefaultThemeKey, TokenLight)

	s := NewThemeStore(kv, WithLightSignal(lightSignal))
	if !s.DarkMode() {
		t.Fatalf("expected dark default before correction")
	}
	if got := s.State(); got != DefaultApplied {
		t.Fatalf("expected DefaultApplied, got %v", got)
	}
}

func TestThemeStore_FreshInitToggleSequence(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := NewMemory()
	s := NewThemeStore(kv)
	s.Initialize(ctx)

	if !s.DarkMode() {
		t.Fatalf("fresh init without token or signal must stay dark")
	}
	if got := s.State(); got != Corrected {
		t.Fatalf("expected Corrected after init, got %v", got)
	}

	s.ToggleDarkMode(ctx)
	if got := storedToken(t, kv); got != TokenLight {
		t.Fatalf("after one toggle: want %q, got %q", TokenLight, got)
	}
	s.ToggleDarkMode(ctx)
	if got := storedToken(t, kv); got != TokenDark {
		t.Fatalf("after two toggles: want %q, got %q", TokenDark, got)
	}
}

func TestThemeStore_Load(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tests := []struct {
		name   string
		token  string
		signal LightSignal
		want   Correction
	}{
		{name: "nothing", want: Correction{}},
		{name: "light token", token: TokenLight, want: Correction{Found: true, Dark: false, Source: "storage"}},
		{name: "dark token", token: TokenDark, signal: lightSignal, want: Correction{Found: true, Dark: true, Source: "storage"}},
		{name: "garbage token keeps dark", token: "purple", want: Correction{Found: true, Dark: true, Source: "storage"}},
		{name: "light signal", signal: lightSignal, want: Correction{Found: true, Dark: false, Source: "environment"}},
		{name: "dark signal", signal: func() (bool, bool) { return false, true }, want: Correction{Found: true, Dark: true, Source: "environment"}},
	}
	for _, tc := range tests {
		kv := NewMemory()
		if tc.token != "" {
			_ = kv.Set(ctx, DefaultThemeKey, tc.token)
		}
		s := NewThemeStore(kv, WithLightSignal(tc.signal))
		if got := s.Load(ctx); got != tc.want {
			t.Fatalf("%s: want %+v, got %+v", tc.name, tc.want, got)
		}
		if s.State() != DefaultApplied {
			t.Fatalf("%s: Load must not change state", tc.name)
		}
	}
}

func TestThemeStore_CorrectionAppliesAndPersists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := NewMemory()
	s := NewThemeStore(kv, WithLightSignal(lightSignal))

	var seen []bool
	s.OnChange(func(dark bool) { seen = append(seen, dark) })

	if !s.ApplyCorrection(ctx, s.Load(ctx)) {
		t.Fatalf("expected correction to apply")
	}
	if s.DarkMode() {
		t.Fatalf("light signal should switch to light mode")
	}
	if got := storedToken(t, kv); got != TokenLight {
		t.Fatalf("corrected value must be persisted, got %q", got)
	}
	if len(seen) != 1 || seen[0] {
		t.Fatalf("expected one light notification, got %v", seen)
	}
}

func TestThemeStore_CorrectionDoesNotClobberManualToggle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := NewMemory()
	_ = kv.Set(ctx, DefaultThemeKey, TokenDark)
	s := NewThemeStore(kv)

	// The read starts before the user acts...
	pending := Correction{Found: true, Dark: true, Source: "storage"}
	// ...but the user toggles before it lands.
	s.ToggleDarkMode(ctx)

	if s.ApplyCorrection(ctx, pending) {
		t.Fatalf("late correction must be ignored after a manual toggle")
	}
	if s.DarkMode() {
		t.Fatalf("manual toggle to light was clobbered")
	}
	if got := storedToken(t, kv); got != TokenLight {
		t.Fatalf("stored token: want light, got %q", got)
	}
}

func TestThemeStore_CorrectionRunsOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewThemeStore(NewMemory())
	if !s.ApplyCorrection(ctx, Correction{Found: true, Dark: false}) {
		t.Fatalf("first correction should apply")
	}
	if s.ApplyCorrection(ctx, Correction{Found: true, Dark: true}) {
		t.Fatalf("second correction should be ignored")
	}
	if s.DarkMode() {
		t.Fatalf("second correction changed the value")
	}
}

func TestThemeStore_ReadFailureIsSwallowedAndLogged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	logger, hook := test.NewNullLogger()
	kv := &failingKV{getErr: errors.New("storage denied")}
	s := NewThemeStore(kv, WithLogger(logger), WithLightSignal(lightSignal))

	c := s.Load(ctx)
	if c.Found {
		t.Fatalf("read failure must be treated as no preference, got %+v", c)
	}
	s.ApplyCorrection(ctx, c)
	if !s.DarkMode() {
		t.Fatalf("value must stay dark when the read fails")
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel {
		t.Fatalf("expected a warning log entry, got %#v", entry)
	}
}

func TestThemeStore_WriteFailureNeverSurfaces(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	logger, hook := test.NewNullLogger()
	kv := &failingKV{setErr: errors.New("quota exceeded")}
	s := NewThemeStore(kv, WithLogger(logger))

	s.ToggleDarkMode(ctx)
	if s.DarkMode() {
		t.Fatalf("toggle must apply in memory even when persisting fails")
	}
	s.ToggleDarkMode(ctx)
	if !s.DarkMode() {
		t.Fatalf("second toggle must apply in memory")
	}
	if kv.sets != 2 {
		t.Fatalf("expected 2 write attempts, got %d", kv.sets)
	}
	warnings := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings++
		}
	}
	if warnings != 2 {
		t.Fatalf("expected 2 logged write failures, got %d", warnings)
	}
}

func TestThemeStore_SetDarkMode(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := NewMemory()
	s := NewThemeStore(kv)
	calls := 0
	s.OnChange(func(bool) { calls++ })

	s.SetDarkMode(ctx, true)
	if calls != 0 {
		t.Fatalf("setting the current value must not notify")
	}
	if got := storedToken(t, kv); got != TokenDark {
		t.Fatalf("stored token: want dark, got %q", got)
	}
	s.SetDarkMode(ctx, false)
	if calls != 1 || s.DarkMode() {
		t.Fatalf("expected one change to light, calls=%d dark=%v", calls, s.DarkMode())
	}
	if s.State() != Corrected {
		t.Fatalf("explicit set must end the initialization flow")
	}
}

func TestParseToken(t *testing.T) {
	t.Parallel()

	if dark, ok := ParseToken("dark"); !ok || !dark {
		t.Fatalf("dark token")
	}
	if dark, ok := ParseToken("light"); !ok || dark {
		t.Fatalf("light token")
	}
	if _, ok := ParseToken("Dark"); ok {
		t.Fatalf("tokens are case-sensitive literals")
	}
}
