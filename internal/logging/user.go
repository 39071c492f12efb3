package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// User-facing output functions with styled status glyphs.
// These write to stdout/stderr directly for CLI output,
// separate from the structured debug logging.

var (
	// Stdout receives UserInfo and UserSuccess lines.
	Stdout io.Writer = os.Stdout
	// Stderr receives UserWarning and UserError lines.
	Stderr io.Writer = os.Stderr
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func userLine(w io.Writer, glyph lipgloss.Style, mark, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", glyph.Render(mark), fmt.Sprintf(format, args...))
}

// UserInfo prints an info message to stdout.
func UserInfo(format string, args ...interface{}) {
	userLine(Stdout, infoStyle, "ℹ", format, args...)
}

// UserSuccess prints a success message to stdout.
func UserSuccess(format string, args ...interface{}) {
	userLine(Stdout, successStyle, "✓", format, args...)
}

// UserWarning prints a warning message to stderr.
func UserWarning(format string, args ...interface{}) {
	userLine(Stderr, warningStyle, "⚠", format, args...)
}

// UserError prints an error message to stderr.
func UserError(format string, args ...interface{}) {
	userLine(Stderr, errorStyle, "✗", format, args...)
}
