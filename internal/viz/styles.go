package viz

import "github.com/charmbracelet/lipgloss"

// Shared CLI styles.
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("242"))

	Value = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 2)

	Warn = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("220"))

	outcomeCaptured  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	outcomeEscaped   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	outcomeExhausted = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// OutcomeBadge renders a colored terminal badge for a trajectory outcome
// string as stored in run metadata.
func OutcomeBadge(outcome string) string {
	switch outcome {
	case "captured":
		return outcomeCaptured.Render(outcome)
	case "escaped":
		return outcomeEscaped.Render(outcome)
	default:
		return outcomeExhausted.Render(outcome)
	}
}
