package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/store"
	"github.com/rgehrsitz/sgfin/internal/tui/tuimsg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send applies msg and then every application message produced by the
// resulting commands, depth first. Commands that do not finish promptly,
// such as cursor blinks, are dropped.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	return drain(t, m, cmd)
}

func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	var out tea.Msg
	select {
	case out = <-done:
	case <-time.After(100 * time.Millisecond):
		return m
	}
	switch msg := out.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(t, m, c)
		}
		return m
	case NavigateMsg, tuimsg.CalculatorSelectedMsg, tuimsg.CalculateRequestedMsg,
		tuimsg.CalculationCompleteMsg, tuimsg.ScenarioSelectedMsg, tuimsg.ScenariosLoadedMsg:
		return send(t, m, msg)
	}
	return m
}

// typeText feeds runes to the model without running the blink commands the
// text inputs return.
func typeText(m Model, text string) Model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func TestModel_CalculatorFlow(t *testing.T) {
	m := NewModel(Options{})
	assert.Equal(t, SceneHome, m.currentScene)
	assert.Contains(t, m.View(), "Mortgage Calculator")

	m = send(t, m, key("down"))
	m = send(t, m, key("enter"))
	require.Equal(t, SceneForm, m.currentScene)
	assert.Equal(t, domain.CalcBSD, m.formModel.Calculator())

	m = typeText(m, "1000000")
	assert.Equal(t, map[string]string{"propertyValue": "1000000"}, m.formModel.Values())

	m = send(t, m, key("enter"))
	require.Equal(t, SceneResults, m.currentScene)
	view := m.View()
	assert.Contains(t, view, "$24,600")
	assert.Contains(t, view, "Buyer's Stamp Duty")

	m = send(t, m, key("esc"))
	assert.Equal(t, SceneForm, m.currentScene)
}

func TestModel_FormErrorStaysOnForm(t *testing.T) {
	m := NewModel(Options{})
	m = send(t, m, tuimsg.CalculatorSelectedMsg{Calculator: domain.CalcTDSR})
	require.Equal(t, SceneForm, m.currentScene)

	m.formModel.SetValue("monthlyIncome", "lots")
	m = send(t, m, key("enter"))

	assert.Equal(t, SceneForm, m.currentScene)
	assert.Contains(t, m.formModel.Err(), "monthlyIncome")
	assert.Contains(t, m.View(), "must be a number")
}

func TestModel_LettersReachFormInputs(t *testing.T) {
	m := NewModel(Options{})
	m = send(t, m, tuimsg.CalculatorSelectedMsg{Calculator: domain.CalcABSD})
	next, _ := m.Update(key("tab"))
	m = typeText(next.(Model), "foreigner")
	assert.Equal(t, SceneForm, m.currentScene, "q or h must not leave the form")
	assert.Equal(t, "foreigner", m.formModel.Values()["buyerCategory"])
}

func TestModel_SavedScenarios(t *testing.T) {
	st := store.NewMemory()
	saved, err := st.SaveScenario(context.Background(), &domain.Scenario{
		Name:   "Condo purchase",
		Client: domain.Client{Name: "John Lim"},
		Calculations: []domain.CalculationRequest{
			{Calculator: domain.CalcBSD, Inputs: map[string]string{"propertyValue": "1000000"}},
			{Calculator: domain.CalcABSD, Inputs: map[string]string{"propertyValue": "1200000", "buyerCategory": "foreigner"}},
		},
	})
	require.NoError(t, err)

	m := NewModel(Options{Store: st})
	m = drain(t, m, m.Init())
	require.NotNil(t, m.scenariosModel.SelectedScenario())
	assert.Equal(t, saved.ID, m.scenariosModel.SelectedScenario().ID)

	m = send(t, m, key("s"))
	require.Equal(t, SceneScenarios, m.currentScene)
	assert.Contains(t, m.View(), "Condo purchase")

	m = send(t, m, key("enter"))
	require.Equal(t, SceneResults, m.currentScene)
	view := m.View()
	assert.Contains(t, view, "Additional Buyer's Stamp Duty")
	assert.Contains(t, view, "Property values are inconsistent across stamp duty calculations")
}

func TestModel_HelpAndQuit(t *testing.T) {
	m := NewModel(Options{})
	m = send(t, m, key("?"))
	assert.Equal(t, SceneHelp, m.currentScene)
	assert.Contains(t, m.View(), "KEYBOARD SHORTCUTS")

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
