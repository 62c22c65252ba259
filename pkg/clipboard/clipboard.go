// Package clipboard copies text to the system clipboard via external tools.
package clipboard

import (
	"fmt"
	"os/exec"
	"strings"
)

// Copy places text on the system clipboard. It tries wl-copy first
// (Wayland), then falls back to xclip (X11).
func Copy(text string) error {
	if text == "" {
		return fmt.Errorf("cannot copy empty text to clipboard")
	}

	if err := copyVia(text, "wl-copy"); err == nil {
		return nil
	}
	if err := copyVia(text, "xclip", "-selection", "clipboard"); err == nil {
		return nil
	}

	return fmt.Errorf("clipboard copy failed: neither wl-copy nor xclip available")
}

// IsAvailable reports whether a supported clipboard tool is installed.
func IsAvailable() bool {
	for _, tool := range []string{"wl-copy", "xclip"} {
		if _, err := exec.LookPath(tool); err == nil {
			return true
		}
	}
	return false
}

func copyVia(text string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
