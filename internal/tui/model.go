package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/sgfin/internal/calculation"
	"github.com/rgehrsitz/sgfin/internal/config"
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/report"
	"github.com/rgehrsitz/sgfin/internal/store"
	"github.com/rgehrsitz/sgfin/internal/tui/scenes"
	"github.com/rgehrsitz/sgfin/internal/tui/tuimsg"
)

// Options are the dependencies of the TUI. Store may be nil, which hides
// saved scenarios.
type Options struct {
	Engine   *calculation.CalculationEngine
	Parser   *config.InputParser
	Store    store.Store
	Preparer domain.Preparer
}

// Model represents the entire application state
type Model struct {
	currentScene  Scene
	previousScene Scene

	width  int
	height int

	store    store.Store
	builder  *report.Builder
	preparer domain.Preparer

	homeModel      *scenes.HomeModel
	formModel      *scenes.FormModel
	scenariosModel *scenes.ScenariosModel
	resultsModel   *scenes.ResultsModel

	err error

	loading        bool
	loadingMessage string
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	if opts.Engine == nil {
		opts.Engine = calculation.NewCalculationEngine()
	}
	if opts.Parser == nil {
		opts.Parser = config.NewInputParser()
	}
	return Model{
		currentScene:   SceneHome,
		store:          opts.Store,
		builder:        report.NewBuilder(opts.Engine, opts.Parser),
		preparer:       opts.Preparer,
		homeModel:      scenes.NewHomeModel(),
		formModel:      scenes.NewFormModel(),
		scenariosModel: scenes.NewScenariosModel(),
		resultsModel:   scenes.NewResultsModel(),
		width:          80,
		height:         24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadScenariosCmd(m.store)
}

// loadScenariosCmd returns a command that lists the saved scenarios
func loadScenariosCmd(st store.Store) tea.Cmd {
	if st == nil {
		return nil
	}
	return func() tea.Msg {
		list, err := st.ListScenarios(context.Background())
		return tuimsg.ScenariosLoadedMsg{Scenarios: list, Err: err}
	}
}

// calculateCmd runs one calculator as a single-entry report.
func calculateCmd(b *report.Builder, preparer domain.Preparer, id domain.CalculatorID, values map[string]string) tea.Cmd {
	return func() tea.Msg {
		scenario := &domain.Scenario{
			Name:         id.Title(),
			Calculations: []domain.CalculationRequest{{Calculator: id, Inputs: values}},
		}
		r, err := b.Build(scenario, preparer)
		if err != nil {
			if ce, ok := domain.AsCalculationError(err); ok {
				err = ce
			}
			return tuimsg.CalculationCompleteMsg{Title: id.Title(), Err: err}
		}
		return tuimsg.CalculationCompleteMsg{Title: id.Title(), Report: r}
	}
}

// runScenarioCmd loads a saved scenario, builds its report and checks it.
func runScenarioCmd(st store.Store, b *report.Builder, preparer domain.Preparer, id string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		s, err := st.GetScenario(ctx, id)
		if err != nil {
			return tuimsg.CalculationCompleteMsg{Err: fmt.Errorf("failed to load scenario: %w", err)}
		}
		if p, err := st.GetProfile(ctx); err == nil {
			preparer = p
		}
		r, err := b.Build(s, preparer)
		if err != nil {
			return tuimsg.CalculationCompleteMsg{Title: s.Name, Err: err}
		}
		return tuimsg.CalculationCompleteMsg{Title: s.Name, Report: r, Summary: report.Validate(r)}
	}
}

// navigate returns a command that switches scenes.
func navigate(s Scene) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Scene: s} }
}
