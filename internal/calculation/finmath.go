package calculation

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/shopspring/decimal"
)

// Rates passed to the functions in this file are periodic fractions. Use
// PeriodicRate to convert an annual percentage.

// PeriodicRate converts an annual percentage (3.5 = 3.5%) into the rate per
// period.
func PeriodicRate(annualPercent decimal.Decimal, periodsPerYear int) decimal.Decimal {
	return annualPercent.Div(hundred).Div(decimal.NewFromInt(int64(periodsPerYear)))
}

// growth returns (1+rate)^periods - 1 as expm1(periods*log1p(rate)) in
// float64. Zero means the rate is below float64 resolution; callers then use
// the zero-rate formula. Overflow is an ErrUndefinedComputation.
func growth(rate decimal.Decimal, periods int) (decimal.Decimal, error) {
	g := math.Expm1(float64(periods) * math.Log1p(rate.InexactFloat64()))
	if math.IsNaN(g) || math.IsInf(g, 0) {
		return decimal.Zero, fmt.Errorf("growth at rate %s over %d periods overflows: %w", rate, periods, domain.ErrUndefinedComputation)
	}
	return decimal.NewFromFloat(g), nil
}

// AmortizedPayment returns the fixed payment that repays principal over
// periods payments at rate per period.
func AmortizedPayment(principal, rate decimal.Decimal, periods int) (decimal.Decimal, error) {
	if periods <= 0 {
		return decimal.Zero, nil
	}
	n := decimal.NewFromInt(int64(periods))
	if rate.IsZero() {
		return principal.Div(n), nil
	}
	g, err := growth(rate, periods)
	if err != nil {
		return decimal.Zero, err
	}
	if g.IsZero() {
		return principal.Div(n), nil
	}
	f := g.Add(one)
	return principal.Mul(rate).Mul(f).Div(g), nil
}

// ReverseAmortizedPrincipal returns the largest principal that maxPayment
// per period can repay over periods payments.
func ReverseAmortizedPrincipal(maxPayment, rate decimal.Decimal, periods int) (decimal.Decimal, error) {
	if !maxPayment.IsPositive() || periods <= 0 {
		return decimal.Zero, nil
	}
	n := decimal.NewFromInt(int64(periods))
	if rate.IsZero() {
		return maxPayment.Mul(n), nil
	}
	g, err := growth(rate, periods)
	if err != nil {
		return decimal.Zero, err
	}
	if g.IsZero() {
		return maxPayment.Mul(n), nil
	}
	return maxPayment.Mul(g).Div(rate.Mul(g.Add(one))), nil
}

// FutureValueLumpSum compounds principal for periods at rate.
func FutureValueLumpSum(principal, rate decimal.Decimal, periods int) (decimal.Decimal, error) {
	if periods <= 0 || rate.IsZero() {
		return principal, nil
	}
	g, err := growth(rate, periods)
	if err != nil {
		return decimal.Zero, err
	}
	return principal.Mul(g.Add(one)), nil
}

// FutureValueAnnuity returns the value of a contribution paid at the end of
// every period.
func FutureValueAnnuity(contribution, rate decimal.Decimal, periods int) (decimal.Decimal, error) {
	if periods <= 0 {
		return decimal.Zero, nil
	}
	n := decimal.NewFromInt(int64(periods))
	if rate.IsZero() {
		return contribution.Mul(n), nil
	}
	g, err := growth(rate, periods)
	if err != nil {
		return decimal.Zero, err
	}
	if g.IsZero() {
		return contribution.Mul(n), nil
	}
	return contribution.Mul(g).Div(rate), nil
}

// AnnualizedReturn returns the compound annual growth rate, as a fraction,
// that turns invested into final over years.
func AnnualizedReturn(final, invested decimal.Decimal, years int) (decimal.Decimal, error) {
	if !invested.IsPositive() {
		return decimal.Zero, fmt.Errorf("annualized return with invested value %s: %w", invested, domain.ErrUndefinedComputation)
	}
	if years <= 0 {
		return decimal.Zero, fmt.Errorf("annualized return over %d years: %w", years, domain.ErrUndefinedComputation)
	}
	ratio := final.Div(invested).InexactFloat64()
	v := math.Pow(ratio, 1/float64(years)) - 1
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, fmt.Errorf("annualized return of ratio %v: %w", ratio, domain.ErrUndefinedComputation)
	}
	return decimal.NewFromFloat(v), nil
}
