package progress

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	defaultTerminalWidth = 80
	ansiReset            = "\033[0m"
)

type terminalCapabilities struct {
	supportsANSI  bool
	terminalWidth int
}

func detectCapabilities() terminalCapabilities {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = defaultTerminalWidth
	}

	return terminalCapabilities{
		supportsANSI:  initTerminal(),
		terminalWidth: width,
	}
}

// clearLine returns the sequence that blanks the spinner line and returns the cursor.
func clearLine(caps terminalCapabilities) string {
	if caps.supportsANSI {
		return "\033[2K\r"
	}
	return "\r" + strings.Repeat(" ", caps.terminalWidth) + "\r"
}

// truncateToWidth cuts s to width visible runes. Escape sequences are copied
// through without counting. A reset is appended when anything was cut.
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}

	var b strings.Builder
	visible := 0
	escaping := false

	for _, r := range s {
		switch {
		case r == '\033':
			escaping = true
		case escaping:
			escaping = !isEscapeTerminator(r)
		case visible == width:
			b.WriteString(ansiReset)
			return b.String()
		default:
			visible++
		}
		b.WriteRune(r)
	}

	return b.String()
}

func isEscapeTerminator(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
