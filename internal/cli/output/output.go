package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Stdout and Stderr receive all user facing lines. Tests swap them for buffers.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// ColorsEnabled reports whether stdout is a terminal and NO_COLOR (https://no-color.org/) is unset.
func ColorsEnabled() bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	if f, ok := Stdout.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	white  = "\033[37m"
)

const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolWarning = "!"
	SymbolInfo    = "*"
	SymbolArrow   = "->"
	SymbolBullet  = "-"
)

func style(text string, codes ...string) string {
	if !ColorsEnabled() {
		return text
	}
	var prefix string
	for _, code := range codes {
		prefix += code
	}
	return prefix + text + reset
}

func Bold(text string) string      { return style(text, bold) }
func Dim(text string) string       { return style(text, dim) }
func Success(text string) string   { return style(text, green) }
func Error(text string) string     { return style(text, red) }
func Warning(text string) string   { return style(text, yellow) }
func Info(text string) string      { return style(text, cyan) }
func Header(text string) string    { return style(text, bold, white) }
func Secondary(text string) string { return style(text, dim, cyan) }

func PrintHeader(text string) {
	fmt.Fprintln(Stdout, Header(text))
}

func PrintSuccess(message string) {
	fmt.Fprintf(Stdout, "%s %s\n", Success(SymbolSuccess), Success(message))
}

// PrintError writes to Stderr.
func PrintError(message string) {
	fmt.Fprintf(Stderr, "%s %s\n", Error(SymbolError), Error(message))
}

// PrintWarning writes to Stderr.
func PrintWarning(message string) {
	fmt.Fprintf(Stderr, "%s %s\n", Warning(SymbolWarning), Warning(message))
}

func PrintInfo(message string) {
	fmt.Fprintf(Stdout, "%s %s\n", Info(SymbolInfo), Info(message))
}

func PrintBullet(message string) {
	fmt.Fprintf(Stdout, "  %s %s\n", SymbolBullet, message)
}

// PrintSecondary prints an indented arrow line, e.g. the source file of a planned patch.
func PrintSecondary(message string) {
	fmt.Fprintf(Stdout, "    %s %s\n", SymbolArrow, Secondary(message))
}

func PrintBlank() {
	fmt.Fprintln(Stdout)
}

// Plural returns the singular or plural form based on count
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// Count formats e.g. "1 patch" or "3 patches".
func Count(count int, singular, plural string) string {
	return fmt.Sprintf("%d %s", count, Plural(count, singular, plural))
}
