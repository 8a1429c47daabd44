//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package cli

// isTerminal reports false; the shell falls back to plain line reading.
func isTerminal(uintptr) bool {
	return false
}
