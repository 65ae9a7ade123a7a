package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/sgfin/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderApp(m.renderLoading())
	}
	if m.err != nil {
		return m.renderApp(m.renderError())
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case SceneForm:
		content = m.formModel.View()
	case SceneScenarios:
		content = m.scenariosModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneHelp:
		content = renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		content,
		m.renderStatusBar(),
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	breadcrumb := m.currentScene.String()
	if m.currentScene == SceneForm {
		breadcrumb = fmt.Sprintf("%s / %s", breadcrumb, m.formModel.Calculator().Title())
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		tuistyles.TitleStyle.Render("SGFIN - Singapore Financial Calculators"),
		tuistyles.SubtitleStyle.Render(breadcrumb),
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	var shortcuts []string
	if m.currentScene == SceneForm {
		shortcuts = []string{
			formatShortcut("enter", "calculate"),
			formatShortcut("esc", "back"),
			formatShortcut("ctrl+c", "quit"),
		}
	} else {
		shortcuts = []string{formatShortcut("h", "home")}
		if m.store != nil {
			shortcuts = append(shortcuts, formatShortcut("s", "scenarios"))
		}
		shortcuts = append(shortcuts,
			formatShortcut("r", "results"),
			formatShortcut("?", "help"),
			formatShortcut("q", "quit"),
		)
	}
	return tuistyles.StatusBarStyle.Width(m.width).Render(strings.Join(shortcuts, " • "))
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return tuistyles.StatusKeyStyle.Render(key) + " " + desc
}

func (m Model) renderLoading() string {
	message := m.loadingMessage
	if message == "" {
		message = "Loading..."
	}
	return tuistyles.BorderStyle.Render("⠋ " + message)
}

func (m Model) renderError() string {
	return tuistyles.ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err.Error()),
	)
}

func renderHelp() string {
	helpText := `SGFIN - Singapore Financial Calculators

KEYBOARD SHORTCUTS:
  h        Home (calculator list)
  s        Saved scenarios
  r        Last results
  ?        Show this help
  ESC      Go back
  q/Ctrl+C Quit

CALCULATOR FORM:
  Tab / Shift+Tab  Move between fields
  Enter            Calculate
  Fields marked * are required; blank fields use their defaults.
  Amounts may include $ and thousands separators.`

	return tuistyles.BorderStyle.Render(helpText)
}
