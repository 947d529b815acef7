package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Diagnostics go to stderr; stdout is reserved for the computed version.
var (
	out      io.Writer = os.Stderr
	renderer           = lipgloss.NewRenderer(os.Stderr)
)

// Style definitions for consistent console output across the application.
var (
	faintStyle   = renderer.NewStyle().Faint(true)
	boldStyle    = renderer.NewStyle().Bold(true)
	successStyle = renderer.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = renderer.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = renderer.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	infoStyle    = renderer.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
)

// SetNoColor disables ANSI styling when noColor is true.
func SetNoColor(noColor bool) {
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
}

// SetOutput redirects printed diagnostics to w and returns a func restoring the previous writer.
func SetOutput(w io.Writer) (restore func()) {
	prev := out
	out = w
	return func() { out = prev }
}

// Render functions return styled strings without printing.

// Faint returns text with faint styling.
func Faint(text string) string {
	return faintStyle.Render(text)
}

// Bold returns text with bold styling.
func Bold(text string) string {
	return boldStyle.Render(text)
}

// Success returns text with success (green) styling.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return warningStyle.Render(text)
}

// Info returns text with info (cyan) styling.
func Info(text string) string {
	return infoStyle.Render(text)
}

// Print functions output styled text to the diagnostics writer with a newline.

// PrintFaint prints text with faint styling.
func PrintFaint(text string) {
	_, _ = fmt.Fprintln(out, Faint(text))
}

// PrintSuccess prints text with success (green) styling.
func PrintSuccess(text string) {
	_, _ = fmt.Fprintln(out, Success(text))
}

// PrintError prints text with error (red) styling.
func PrintError(text string) {
	_, _ = fmt.Fprintln(out, Error(text))
}

// PrintWarning prints text with warning (yellow) styling.
func PrintWarning(text string) {
	_, _ = fmt.Fprintln(out, Warning(text))
}

// PrintInfo prints text with info (cyan) styling.
func PrintInfo(text string) {
	_, _ = fmt.Fprintln(out, Info(text))
}
