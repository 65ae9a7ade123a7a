package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/sgfin/internal/report"
	"github.com/rgehrsitz/sgfin/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.homeModel.SetSize(msg.Width, msg.Height)
		m.formModel.SetSize(msg.Width, msg.Height)
		m.scenariosModel.SetSize(msg.Width, msg.Height)
		m.resultsModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case tuimsg.CalculatorSelectedMsg:
		cmd := m.formModel.SetCalculator(msg.Calculator)
		return m, tea.Batch(cmd, navigate(SceneForm))

	case tuimsg.CalculateRequestedMsg:
		m.loading = true
		m.loadingMessage = "Calculating " + msg.Calculator.Title() + "..."
		m.formModel.ClearError()
		return m, calculateCmd(m.builder, m.preparer, msg.Calculator, msg.Values)

	case tuimsg.ScenariosLoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.scenariosModel.SetScenarios(msg.Scenarios)
		return m, nil

	case tuimsg.ScenarioSelectedMsg:
		if m.store == nil {
			return m, nil
		}
		m.loading = true
		m.loadingMessage = "Running scenario..."
		return m, runScenarioCmd(m.store, m.builder, m.preparer, msg.ID)

	case tuimsg.CalculationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			if m.currentScene == SceneForm {
				return m, m.formModel.SetError(msg.Err)
			}
			m.err = msg.Err
			return m, nil
		}
		summary := msg.Summary
		if len(summary.Errors) == 0 && len(summary.Warnings) == 0 {
			summary = report.ValidationSummary{IsValid: true}
		}
		m.resultsModel.SetResults(msg.Title, msg.Report, summary)
		return m, navigate(SceneResults)
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input. While the form has focus only
// ctrl+c and esc are global so that letters reach the text inputs.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		switch m.currentScene {
		case SceneHome:
			return m, nil
		case SceneResults:
			if m.previousScene == SceneForm || m.previousScene == SceneScenarios {
				return m, navigate(m.previousScene)
			}
		}
		return m, navigate(SceneHome)
	}

	if m.currentScene == SceneForm {
		return m.updateCurrentScene(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		return m, navigate(SceneHelp)

	case "h":
		if m.currentScene != SceneHome {
			return m, navigate(SceneHome)
		}

	case "s":
		if m.store != nil && m.currentScene != SceneScenarios {
			return m, tea.Batch(loadScenariosCmd(m.store), navigate(SceneScenarios))
		}

	case "r":
		if m.currentScene != SceneResults && m.resultsModel.Report() != nil {
			return m, navigate(SceneResults)
		}
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	case SceneForm:
		m.formModel, cmd = m.formModel.Update(msg)
	case SceneScenarios:
		m.scenariosModel, cmd = m.scenariosModel.Update(msg)
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	}
	return m, cmd
}
