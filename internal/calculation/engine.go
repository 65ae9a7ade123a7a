package calculation

import (
	"fmt"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/rates"
)

// CalculationEngine runs the calculators against a fixed rate schedule. It
// holds no mutable state and is safe for concurrent use once the logger is
// set.
type CalculationEngine struct {
	Rates  *rates.Schedule
	Logger Logger
}

// NewCalculationEngine creates an engine using the 2025 Singapore rates.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Rates:  rates.Singapore2025(),
		Logger: NopLogger{},
	}
}

// NewCalculationEngineWithRates creates an engine using a custom schedule.
func NewCalculationEngineWithRates(schedule *rates.Schedule) (*CalculationEngine, error) {
	if schedule == nil {
		return nil, fmt.Errorf("rate schedule is required")
	}
	if err := schedule.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rate schedule: %w", err)
	}
	return &CalculationEngine{Rates: schedule, Logger: NopLogger{}}, nil
}

// SetLogger sets the engine logger. A nil logger disables logging.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Calculate runs the calculator named by id. The input must be the value
// type belonging to that calculator. Errors are *domain.CalculationError.
func (ce *CalculationEngine) Calculate(id domain.CalculatorID, input domain.Input) (domain.Result, error) {
	if !id.Valid() {
		return nil, domain.InvalidField(id, "", "unknown calculator")
	}
	if input == nil {
		return nil, domain.InvalidField(id, "", "input is required")
	}
	if input.Calculator() != id {
		return nil, domain.InvalidField(id, "", fmt.Sprintf("input belongs to calculator %s", input.Calculator()))
	}

	ce.Logger.Debugf("calculate %s", id)

	var (
		result domain.Result
		err    error
	)
	switch in := input.(type) {
	case domain.MortgageInput:
		result, err = wrap(ce.Mortgage(in))
	case domain.BSDInput:
		result, err = wrap(ce.BSD(in))
	case domain.ABSDInput:
		result, err = wrap(ce.ABSD(in))
	case domain.SSDInput:
		result, err = wrap(ce.SSD(in))
	case domain.TDSRInput:
		result, err = wrap(ce.TDSR(in))
	case domain.CPFInput:
		result, err = wrap(ce.CPF(in))
	case domain.IncomeTaxInput:
		result, err = wrap(ce.IncomeTax(in))
	case domain.CorporateTaxInput:
		result, err = wrap(ce.CorporateTax(in))
	case domain.InvestmentInput:
		result, err = wrap(ce.Investment(in))
	case domain.HDBUpgradeInput:
		result, err = wrap(ce.HDBUpgrade(in))
	case domain.AffordabilityInput:
		result, err = wrap(ce.Affordability(in))
	default:
		err = domain.InvalidField(id, "", fmt.Sprintf("unsupported input type %T", input))
	}

	if err != nil {
		ce.Logger.Warnf("calculate %s failed: %v", id, err)
		return nil, err
	}
	return result, nil
}

func wrap[R domain.Result](r R, err error) (domain.Result, error) {
	if err != nil {
		return nil, err
	}
	return r, nil
}
