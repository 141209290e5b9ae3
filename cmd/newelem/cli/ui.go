// Package cli holds the terminal styles and render helpers for the
// newelem commands.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles for command output
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7B61FF")).
		MarginBottom(1)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5A9"))

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F"))

	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666"))

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F25D94"))
)

// TableStyle frames tabular command output
var TableStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#7B61FF"))

// RenderKV renders an aligned key/value block
func RenderKV(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		if len(p[0]) > width {
			width = len(p[0])
		}
	}
	var sb strings.Builder
	for _, p := range pairs {
		sb.WriteString(fmt.Sprintf("%s %s\n",
			Header.Render(fmt.Sprintf("%-*s", width+1, p[0]+":")),
			Value.Render(p[1])))
	}
	return sb.String()
}

// RenderError renders an error message for terminal output
func RenderError(err error) string {
	return ErrorStyle.Render("error: ") + err.Error()
}
