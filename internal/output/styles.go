package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: framework identifiers,
	// project names, file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for success states.
	ColorGreen = lipgloss.Color("82")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorBoldRed is used for failure states (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Styles maps domain concepts to visual presentation.
type Styles struct {
	// Bold styles headers and summary lines.
	Bold lipgloss.Style

	// Muted styles descriptions, separators, and structural chrome.
	Muted lipgloss.Style

	// Noun styles identifiable nouns (framework identifiers, paths).
	Noun lipgloss.Style

	// Success styles success confirmations.
	Success lipgloss.Style

	// Failure styles failure messages.
	Failure lipgloss.Style
}

// GetStyles returns the semantic style set.
func GetStyles() Styles {
	return Styles{
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
		Noun:    lipgloss.NewStyle().Foreground(ColorCyan),
		Success: lipgloss.NewStyle().Foreground(ColorGreen),
		Failure: lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed),
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the stdout terminal width, or a sensible default
// when stdout is not a terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
