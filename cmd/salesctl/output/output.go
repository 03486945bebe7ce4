package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	// Color styles for terminal output
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	primaryStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)

	headerStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	valueStyle  = lipgloss.NewStyle().Bold(true)
)

// Success prints a success message
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprint(w, successStyle.Render("✓ "))
	fmt.Fprintf(w, format+"\n", args...)
}

// Warning prints a warning message
func Warning(w io.Writer, format string, args ...any) {
	fmt.Fprint(w, warningStyle.Render("⚠ "))
	fmt.Fprintf(w, format+"\n", args...)
}

// Error prints an error message
func Error(w io.Writer, format string, args ...any) {
	fmt.Fprint(w, errorStyle.Render("✗ "))
	fmt.Fprintf(w, format+"\n", args...)
}

// Muted prints a muted message
func Muted(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Section prints a section header
func Section(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, primaryStyle.Render(title))
	fmt.Fprintln(w)
}

// KeyValues prints aligned label/value pairs.
func KeyValues(w io.Writer, pairs [][2]string) {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p[0]))
	}

	label := mutedStyle.Width(width + 2)
	for _, p := range pairs {
		fmt.Fprintln(w, label.Render(p[0])+valueStyle.Render(p[1]))
	}
}

// Table prints rows under headers with a rounded border.
func Table(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(w, t.Render())
}
