package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/tui/components"
	"github.com/rgehrsitz/sgfin/internal/tui/tuimsg"
	"github.com/rgehrsitz/sgfin/internal/tui/tuistyles"
)

// ScenariosModel represents the saved scenarios scene
type ScenariosModel struct {
	scenarios     []*domain.Scenario
	cards         []*components.ScenarioCard
	selectedIndex int
	width         int
	height        int
}

// NewScenariosModel creates a new scenarios scene model
func NewScenariosModel() *ScenariosModel {
	return &ScenariosModel{}
}

// SetScenarios updates the scenarios list
func (m *ScenariosModel) SetScenarios(scenarios []*domain.Scenario) {
	m.scenarios = scenarios
	m.cards = make([]*components.ScenarioCard, len(scenarios))
	for i, s := range scenarios {
		m.cards[i] = components.NewScenarioCard(s)
	}
	if m.selectedIndex >= len(m.scenarios) {
		m.selectedIndex = 0
	}
}

// SetSize updates the scene dimensions
func (m *ScenariosModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SelectedScenario returns the highlighted scenario, or nil when the list is
// empty.
func (m *ScenariosModel) SelectedScenario() *domain.Scenario {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.scenarios) {
		return m.scenarios[m.selectedIndex]
	}
	return nil
}

// Update handles messages for the scenarios scene
func (m *ScenariosModel) Update(msg tea.Msg) (*ScenariosModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.selectedIndex < len(m.scenarios)-1 {
			m.selectedIndex++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		if s := m.SelectedScenario(); s != nil {
			id := s.ID
			return m, func() tea.Msg { return tuimsg.ScenarioSelectedMsg{ID: id} }
		}
	}
	return m, nil
}

// View renders the scenarios list with the highlighted scenario expanded.
func (m *ScenariosModel) View() string {
	var content strings.Builder

	content.WriteString(tuistyles.SectionStyle.Render("Saved Scenarios"))
	content.WriteString("\n\n")
	content.WriteString(components.ScenarioListCompact(m.cards, m.selectedIndex))

	if m.selectedIndex < len(m.cards) {
		content.WriteString("\n\n")
		content.WriteString(m.cards[m.selectedIndex].SetSelected(true).Render())
	}

	content.WriteString("\n\n")
	content.WriteString(tuistyles.SubtitleStyle.Render("↑/↓ to choose • enter to run • esc to go back"))

	return tuistyles.BorderStyle.Render(content.String())
}
