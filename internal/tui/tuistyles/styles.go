// Package tuistyles holds the colours and lipgloss styles shared by the TUI
// scenes and components.
package tuistyles

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#B4232A", Dark: "#EF5350"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#1F4E79", Dark: "#64B5F6"}
	ColorAccent    = lipgloss.AdaptiveColor{Light: "#8A6D00", Dark: "#FFD54F"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}
	ColorDanger    = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#E57373"}

	ColorForeground = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#EEEEEE"}
	ColorMuted      = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#9E9E9E"}
	ColorBorder     = lipgloss.AdaptiveColor{Light: "#C8C8C8", Dark: "#4A4A4A"}
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(ColorForeground).
				Bold(true)

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Width(30)

	FocusedFieldLabelStyle = FieldLabelStyle.
				Foreground(ColorPrimary).
				Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorForeground)
)

// FlagStyle colours a yes/no outcome.
func FlagStyle(ok bool) lipgloss.Style {
	if ok {
		return SuccessStyle
	}
	return ErrorStyle
}
