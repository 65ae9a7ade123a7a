// Package tuimsg holds the messages scenes send to the root model. It is
// separate from package tui so scenes can emit them without an import cycle.
package tuimsg

import (
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/report"
)

// CalculatorSelectedMsg opens the form of a calculator.
type CalculatorSelectedMsg struct {
	Calculator domain.CalculatorID
}

// CalculateRequestedMsg carries the raw form values to calculate.
type CalculateRequestedMsg struct {
	Calculator domain.CalculatorID
	Values     map[string]string
}

// ScenarioSelectedMsg asks for a saved scenario to be run.
type ScenarioSelectedMsg struct {
	ID string
}

// ScenariosLoadedMsg delivers the saved scenarios.
type ScenariosLoadedMsg struct {
	Scenarios []*domain.Scenario
	Err       error
}

// CalculationCompleteMsg signals a calculation or scenario run has finished.
// Report is nil when Err is set.
type CalculationCompleteMsg struct {
	Title   string
	Report  *domain.Report
	Summary report.ValidationSummary
	Err     error
}
