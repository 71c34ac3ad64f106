//go:build !windows

package progress

// initTerminal reports ANSI support. Unix terminals handle escape sequences natively.
func initTerminal() bool {
	return true
}
