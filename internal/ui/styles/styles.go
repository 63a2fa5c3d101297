// Package styles provides shared lipgloss styles for fw's terminal output.
//
// Styling is applied only when stdout is a terminal; piped output (eval
// pipelines, completion scripts) stays plain.
package styles

import (
	"os"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-isatty"
)

// Colors used across inspect and picker output.
var (
	// Accent highlights selected or emphasized items (pink).
	Accent = lipgloss.Color("212")

	// Success is used for positive outcomes (green).
	Success = lipgloss.Color("82")

	// Error is used for error messages (red).
	Error = lipgloss.Color("196")

	// Muted is used for secondary text like tag lists (gray).
	Muted = lipgloss.Color("240")
)

// Common styles.
var (
	// Header styles a project name heading.
	Header = lipgloss.NewStyle().Bold(true).Foreground(Accent)

	// Label styles a field label in inspect output.
	Label = lipgloss.NewStyle().Bold(true)

	// MutedStyle styles secondary text.
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)

// Enabled reports whether styled output should be produced: true only when
// w is a terminal.
func Enabled(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render applies style to s when styling is on, otherwise returns s as is.
func Render(on bool, style lipgloss.Style, s string) string {
	if !on {
		return s
	}
	return style.Render(s)
}
