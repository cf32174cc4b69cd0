// Package detector provides environment detection for interactive output
// decisions.
package detector

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdout is a terminal outside of CI. The
// download progress bar and colored summary are only shown interactively.
func IsInteractive() bool {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	return isTTY && !isCI
}
