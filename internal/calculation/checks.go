package calculation

import (
	"math"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/shopspring/decimal"
)

// Structural input checks shared by the calculators. Each returns nil or a
// MissingOrInvalidField error naming the offending field.

func positive(calc domain.CalculatorID, field string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return domain.InvalidField(calc, field, "must be greater than zero")
	}
	return nil
}

func nonNegative(calc domain.CalculatorID, field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return domain.InvalidField(calc, field, "must not be negative")
	}
	return nil
}

func optionalNonNegative(calc domain.CalculatorID, field string, v *decimal.Decimal) error {
	if v == nil {
		return nil
	}
	return nonNegative(calc, field, *v)
}

func positiveInt(calc domain.CalculatorID, field string, v int) error {
	if v <= 0 {
		return domain.InvalidField(calc, field, "must be greater than zero")
	}
	return nil
}

// maxYears keeps years*monthsPerYear inside int32.
const maxYears = math.MaxInt32 / monthsPerYear

func positiveYears(calc domain.CalculatorID, field string, v int) error {
	if err := positiveInt(calc, field, v); err != nil {
		return err
	}
	if v > maxYears {
		return domain.InvalidField(calc, field, "is too large")
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
