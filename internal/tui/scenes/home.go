package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/tui/tuimsg"
	"github.com/rgehrsitz/sgfin/internal/tui/tuistyles"
)

// HomeModel lists the calculators.
type HomeModel struct {
	calculators []domain.CalculatorID
	selected    int
	width       int
	height      int
}

// NewHomeModel creates a new home scene model
func NewHomeModel() *HomeModel {
	return &HomeModel{calculators: domain.AllCalculators()}
}

// SetSize updates the model dimensions
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the highlighted calculator.
func (m *HomeModel) Selected() domain.CalculatorID {
	return m.calculators[m.selected]
}

// Update handles messages for the home scene
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.selected < len(m.calculators)-1 {
			m.selected++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		id := m.Selected()
		return m, func() tea.Msg { return tuimsg.CalculatorSelectedMsg{Calculator: id} }
	}
	return m, nil
}

// View renders the calculator list
func (m *HomeModel) View() string {
	var content strings.Builder

	content.WriteString(tuistyles.SectionStyle.Render("Calculators"))
	content.WriteString("\n\n")

	for i, id := range m.calculators {
		line := fmt.Sprintf("%2d. %s", i+1, id.Title())
		if i == m.selected {
			content.WriteString(tuistyles.SelectedItemStyle.Render("▸ " + line))
		} else {
			content.WriteString(tuistyles.UnselectedItemStyle.Render("  " + line))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(tuistyles.SubtitleStyle.Render("↑/↓ to choose • enter to open • s for saved scenarios"))

	return tuistyles.BorderStyle.Render(content.String())
}
