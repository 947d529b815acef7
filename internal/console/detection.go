package console

import (
	"os"

	"golang.org/x/term"
)

// IsGitHubActions reports whether the process runs inside GitHub Actions.
func IsGitHubActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// IsTTY checks if stderr is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}

// NoColorRequested reports whether colored output should be disabled,
// either explicitly via NO_COLOR or because stderr is not a terminal.
func NoColorRequested() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return !IsTTY()
}
