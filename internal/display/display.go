// Package display renders exercise output for the console.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle     = lipgloss.NewStyle().Bold(true)
	lineNumberStyle = lipgloss.NewStyle().Faint(true)
	traceStyle      = lipgloss.NewStyle().Faint(true)
)

// Banner returns the heading line for the named exercise.
func Banner(name string) string {
	return bannerStyle.Render(name + " Exercise")
}

// NumberedLines renders text one line at a time with right-aligned line
// numbers, e.g. "     1) first line". The result always ends in a newline.
func NumberedLines(text string) string {
	var b strings.Builder

	for i, line := range strings.Split(text, "\n") {
		b.WriteString(fmt.Sprintf("    %s) %s\n", lineNumberStyle.Render(fmt.Sprintf("%2d", i+1)), line))
	}

	return b.String()
}

// Transition renders one state change of the filter.
func Transition(from, to string) string {
	return traceStyle.Render(fmt.Sprintf("    --> State Transition: %s -> %s", from, to))
}
