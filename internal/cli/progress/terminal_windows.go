//go:build windows

package progress

import (
	"os"

	"golang.org/x/sys/windows"
)

// initTerminal switches the console into virtual terminal mode so the spinner can
// use escape sequences. It returns false when the console refuses.
func initTerminal() bool {
	handle := windows.Handle(os.Stdout.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}

	return windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
