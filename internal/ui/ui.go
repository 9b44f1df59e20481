// Package ui renders styled terminal output for the interactive renamer.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	isTerminal   = isatty.IsTerminal(os.Stdout.Fd())
	colorEnabled = true

	upperCaser = cases.Upper(language.English)
)

// DisableColors disables all color output
func DisableColors() {
	colorEnabled = false
	isTerminal = false
	initStyles()
}

// IsTerminal checks if stdout is a terminal
func IsTerminal() bool {
	return isTerminal && colorEnabled
}

// Section prints a section header
func Section(title string) {
	fmt.Println()
	if IsTerminal() {
		fmt.Println("━━━ " + upperCaser.String(title) + " ━━━")
	} else {
		upper := upperCaser.String(title)
		fmt.Println(upper)
		fmt.Println(strings.Repeat("=", len(upper)))
	}
}

// FormatBytes formats bytes to human-readable form
func FormatBytes(bytes int64) string {
	return humanize.Bytes(uint64(bytes))
}

// Successf prints a success line
func Successf(format string, args ...interface{}) {
	fmt.Println(successStyle.Render("✓ ") + fmt.Sprintf(format, args...))
}

// Errorf prints an error line
func Errorf(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("✗ ") + fmt.Sprintf(format, args...))
}

// Warnf prints a warning line
func Warnf(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("! ") + fmt.Sprintf(format, args...))
}

// Infof prints an informational line
func Infof(format string, args ...interface{}) {
	fmt.Println(infoStyle.Render(fmt.Sprintf(format, args...)))
}

// Dimf prints a de-emphasized line
func Dimf(format string, args ...interface{}) {
	fmt.Println(dimStyle.Render(fmt.Sprintf(format, args...)))
}
