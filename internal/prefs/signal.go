package prefs

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// LightSignal reports whether the environment prefers a light theme.
// ok is false when nothing is known.
type LightSignal func() (light bool, ok bool)

// NoSignal never expresses a preference.
func NoSignal() (bool, bool) { return false, false }

// EnvLightSignal derives the light-preference signal from the environment.
//
// Priority:
// 1) TASKTIDY_PREFERS_LIGHT=true|false
// 2) COLORFGBG heuristic (common in terminals; format like "15;0" = fg;bg)
// 3) macOS appearance (Light vs Dark)
func EnvLightSignal() (bool, bool) {
	return envLightSignal(os.Getenv, runtime.GOOS, macOSHasDarkAppearance)
}

func envLightSignal(getenv func(string) string, goos string, macDark func() (bool, bool)) (bool, bool) {
	if v := strings.TrimSpace(getenv("TASKTIDY_PREFERS_LIGHT")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b, true
		}
	}

	// Use last segment as bg.
	if v := strings.TrimSpace(getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bgStr := strings.TrimSpace(parts[len(parts)-1])
		if bg, err := strconv.Atoi(bgStr); err == nil {
			return bg >= 7, true
		}
	}

	if goos == "darwin" && macDark != nil {
		if dark, ok := macDark(); ok {
			return !dark, true
		}
	}
	return false, false
}

func macOSHasDarkAppearance() (dark bool, ok bool) {
	// `defaults read -g AppleInterfaceStyle` prints "Dark" in dark mode and returns exit status 1
	// in light mode (key missing).
	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").CombinedOutput()
	if ctx.Err() != nil {
		return false, false
	}
	if err == nil {
		return strings.Contains(strings.ToLower(string(out)), "dark"), true
	}
	if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 {
		return false, true
	}
	return false, false
}
