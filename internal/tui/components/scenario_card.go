package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/tui/tuistyles"
)

// ScenarioCard displays a compact overview of a saved scenario
type ScenarioCard struct {
	Name       string
	Client     string
	Highlights []string
	IsSelected bool
	Width      int
}

// NewScenarioCard builds a card listing the client and the calculators of s.
func NewScenarioCard(s *domain.Scenario) *ScenarioCard {
	card := &ScenarioCard{Name: s.Name, Client: s.Client.Name, Width: 50}
	for _, c := range s.Calculations {
		h := c.Calculator.Title()
		if c.Label != "" {
			h += " - " + c.Label
		}
		card.Highlights = append(card.Highlights, h)
	}
	return card
}

// SetSelected marks the card as selected
func (s *ScenarioCard) SetSelected(selected bool) *ScenarioCard {
	s.IsSelected = selected
	return s
}

// WithWidth sets the card width
func (s *ScenarioCard) WithWidth(width int) *ScenarioCard {
	s.Width = width
	return s
}

// Render returns the styled scenario card
func (s *ScenarioCard) Render() string {
	var content strings.Builder

	content.WriteString(tuistyles.TitleStyle.Render(s.Name))
	content.WriteString("\n")
	if s.Client != "" {
		content.WriteString(tuistyles.SubtitleStyle.Render("for " + s.Client))
		content.WriteString("\n")
	}
	for _, h := range s.Highlights {
		content.WriteString(tuistyles.MetricLabelStyle.Render("• " + h))
		content.WriteString("\n")
	}

	border := tuistyles.ColorBorder
	if s.IsSelected {
		border = tuistyles.ColorPrimary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(s.Width).
		Render(strings.TrimRight(content.String(), "\n"))
}

// RenderCompact returns a compact single-line version
func (s *ScenarioCard) RenderCompact() string {
	parts := []string{s.Name}
	if s.Client != "" {
		parts = append(parts, "("+s.Client+")")
	}
	parts = append(parts, fmt.Sprintf("• %d calculation%s", len(s.Highlights), pluralS(len(s.Highlights))))
	return strings.Join(parts, " ")
}

// ScenarioListCompact renders a compact list for selection menus
func ScenarioListCompact(cards []*ScenarioCard, selectedIndex int) string {
	if len(cards) == 0 {
		return tuistyles.SubtitleStyle.Render("No saved scenarios")
	}

	rendered := make([]string, len(cards))
	for i, card := range cards {
		prefix := "  "
		style := tuistyles.UnselectedItemStyle
		if i == selectedIndex {
			prefix = "▸ "
			style = tuistyles.SelectedItemStyle
		}
		rendered[i] = style.Render(prefix + card.RenderCompact())
	}
	return strings.Join(rendered, "\n")
}

func pluralS(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
