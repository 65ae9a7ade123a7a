package calculation

import (
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/shopspring/decimal"
)

const monthsPerYear = 12

// Mortgage computes the monthly instalment of a fully amortizing loan. A zero
// interest rate repays the principal in equal instalments.
func (ce *CalculationEngine) Mortgage(in domain.MortgageInput) (domain.MortgageResult, error) {
	calc := domain.CalcMortgage
	if err := firstError(
		positive(calc, "principal", in.Principal),
		nonNegative(calc, "annualRate", in.AnnualRate),
		positiveYears(calc, "tenureYears", in.TenureYears),
		optionalNonNegative(calc, "propertyValue", in.PropertyValue),
	); err != nil {
		return domain.MortgageResult{}, err
	}

	periods := in.TenureYears * monthsPerYear
	rate := PeriodicRate(in.AnnualRate, monthsPerYear)
	payment, err := AmortizedPayment(in.Principal, rate, periods)
	if err != nil {
		ce.Logger.Warnf("mortgage: %v", err)
		cerr := domain.Undefined(calc, "monthlyPayment", "instalment is too large to compute")
		cerr.Cause = err
		return domain.MortgageResult{}, cerr
	}
	totalPayment := payment.Mul(decimal.NewFromInt(int64(periods)))

	ltv := decimal.Zero
	if in.PropertyValue != nil && in.PropertyValue.IsPositive() {
		ltv = in.Principal.Div(*in.PropertyValue).Mul(hundred)
	}

	ce.Logger.Debugf("mortgage: principal=%s rate=%s%% periods=%d payment=%s",
		in.Principal.StringFixed(2), in.AnnualRate.String(), periods, payment.StringFixed(2))

	return domain.MortgageResult{
		MonthlyPayment:   payment,
		TotalPayment:     totalPayment,
		TotalInterest:    totalPayment.Sub(in.Principal),
		LoanToValueRatio: ltv,
		NumPayments:      periods,
	}, nil
}
