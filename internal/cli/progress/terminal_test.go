package progress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var _ func() bool = initTerminal

func TestClearLine_WithANSISupport(t *testing.T) {
	result := clearLine(terminalCapabilities{supportsANSI: true, terminalWidth: 80})

	assert.Equal(t, "\033[2K\r", result)
}

func TestClearLine_PadsToTerminalWidthWithoutANSI(t *testing.T) {
	for _, width := range []int{40, 80, 120} {
		result := clearLine(terminalCapabilities{terminalWidth: width})

		assert.Equal(t, "\r"+strings.Repeat(" ", width)+"\r", result)
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 5, "hello" + ansiReset},
		{"zero width", "hello", 0, ""},
		{"escape not counted", "\033[32m+\033[0m ok", 4, "\033[32m+\033[0m ok"},
		{"cut after escape", "\033[1m✦\033[0m Deployment", 3, "\033[1m✦\033[0m D" + ansiReset},
		{"multibyte runes", "✦✸✹❋", 2, "✦✸" + ansiReset},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, truncateToWidth(tc.input, tc.width))
		})
	}
}
