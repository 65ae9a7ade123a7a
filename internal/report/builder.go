// Package report assembles calculation reports from scenarios and checks
// them before they are handed to a client.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rgehrsitz/sgfin/internal/domain"
)

// Calculator runs one calculation.
type Calculator interface {
	Calculate(id domain.CalculatorID, input domain.Input) (domain.Result, error)
}

// RequestParser turns a string-valued request into a typed input.
type RequestParser interface {
	ParseRequest(req domain.CalculationRequest) (domain.Input, error)
}

// Builder runs every calculation of a scenario and collects the results into
// a Report.
type Builder struct {
	engine Calculator
	parser RequestParser
	now    func() time.Time
	newID  func() string
}

func NewBuilder(engine Calculator, parser RequestParser) *Builder {
	return &Builder{
		engine: engine,
		parser: parser,
		now:    time.Now,
		newID:  NewReportID,
	}
}

// NewReportID returns an id of the form SG-FIN-XXXXXXXX.
func NewReportID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "SG-FIN-" + strings.ToUpper(id[:8])
}

// Build runs the scenario. The scenario's own preparer, when set, takes
// precedence over the given one. The first failing calculation aborts the
// build.
func (b *Builder) Build(scenario *domain.Scenario, preparer domain.Preparer) (*domain.Report, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is required")
	}
	if scenario.Preparer != nil && !scenario.Preparer.IsZero() {
		preparer = *scenario.Preparer
	}

	report := &domain.Report{
		ID:          b.newID(),
		GeneratedAt: b.now(),
		Preparer:    preparer,
		Client:      scenario.Client,
		Entries:     make([]domain.ReportEntry, 0, len(scenario.Calculations)),
	}

	for i, req := range scenario.Calculations {
		in, err := b.parser.ParseRequest(req)
		if err != nil {
			return nil, fmt.Errorf("calculation %d (%s): %w", i+1, req.Calculator, err)
		}
		result, err := b.engine.Calculate(req.Calculator, in)
		if err != nil {
			return nil, fmt.Errorf("calculation %d (%s): %w", i+1, req.Calculator, err)
		}
		report.Entries = append(report.Entries, domain.ReportEntry{
			Label:  req.Label,
			Input:  in,
			Result: result,
		})
	}
	return report, nil
}
