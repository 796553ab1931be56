package main

import (
	"os"
	"strings"

	"tasktidy/internal/cli"
	"tasktidy/internal/prefs"
)

func isThemeToken(s string) bool {
	_, ok := prefs.ParseToken(s)
	return ok
}

func rewriteThemeShortcutArgs(argv []string) []string {
	// Convenience: `tasktidy light` works like `tasktidy theme set light`.
	//
	// Persistent flags may come first (e.g. `tasktidy --prefs file dark`), so find the
	// first positional token rather than looking at argv[1].
	if len(argv) < 2 {
		return argv
	}

	// Unknown flags are skipped without consuming a value so the token is never swallowed.
	valueFlags := map[string]bool{
		"--config": true,
		"--prefs":  true,
		"--format": true,
	}
	boolFlags := map[string]bool{
		"--pretty":        true,
		"--no-onboarding": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			return argv
		}

		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") || boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++
			}
			continue
		}

		if isThemeToken(a) {
			out := make([]string, 0, len(argv)+2)
			out = append(out, argv[:i]...)
			out = append(out, "theme", "set")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteThemeShortcutArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
