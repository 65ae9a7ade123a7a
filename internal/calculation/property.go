package calculation

import (
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/shopspring/decimal"
)

// HDBUpgrade estimates the cash released by selling an HDB flat and how much
// more is needed to meet a target down payment. CPF refunds and accrued
// interest are deducted from the sale proceeds.
func (ce *CalculationEngine) HDBUpgrade(in domain.HDBUpgradeInput) (domain.HDBUpgradeResult, error) {
	calc := domain.CalcHDBUpgrade
	if err := firstError(
		positive(calc, "hdbValue", in.HDBValue),
		nonNegative(calc, "outstandingLoan", in.OutstandingLoan),
		optionalNonNegative(calc, "cpfUsed", in.CPFUsed),
		optionalNonNegative(calc, "accruedInterest", in.AccruedInterest),
		optionalNonNegative(calc, "targetDownPayment", in.TargetDownPayment),
	); err != nil {
		return domain.HDBUpgradeResult{}, err
	}

	net := in.HDBValue.
		Sub(in.OutstandingLoan).
		Sub(domain.OptionalOrZero(in.CPFUsed)).
		Sub(domain.OptionalOrZero(in.AccruedInterest))
	available := decimal.Max(decimal.Zero, net)
	shortfall := decimal.Max(decimal.Zero, domain.OptionalOrZero(in.TargetDownPayment).Sub(available))

	return domain.HDBUpgradeResult{
		NetProceeds:          net,
		AvailableForUpgrade:  available,
		AdditionalCashNeeded: shortfall,
		CanAffordUpgrade:     shortfall.IsZero(),
	}, nil
}

// Affordability sizes the largest loan whose instalment fits inside the TDSR
// headroom left after existing debts. No headroom means no loan.
func (ce *CalculationEngine) Affordability(in domain.AffordabilityInput) (domain.AffordabilityResult, error) {
	calc := domain.CalcAffordability
	if err := firstError(
		positive(calc, "monthlyIncome", in.MonthlyIncome),
		nonNegative(calc, "monthlyExpenses", in.MonthlyExpenses),
		nonNegative(calc, "monthlyDebts", in.MonthlyDebts),
		nonNegative(calc, "availableDownPayment", in.AvailableDownPayment),
		nonNegative(calc, "annualRate", in.AnnualRate),
		positiveYears(calc, "tenureYears", in.TenureYears),
	); err != nil {
		return domain.AffordabilityResult{}, err
	}

	periods := in.TenureYears * monthsPerYear
	rate := PeriodicRate(in.AnnualRate, monthsPerYear)

	headroom := in.MonthlyIncome.Mul(ce.Rates.TDSRLimit).Div(hundred).Sub(in.MonthlyDebts)
	maxInstalment := decimal.Max(decimal.Zero, headroom)

	maxLoan, err := ReverseAmortizedPrincipal(maxInstalment, rate, periods)
	payment := decimal.Zero
	if err == nil && maxLoan.IsPositive() {
		payment, err = AmortizedPayment(maxLoan, rate, periods)
	}
	if err != nil {
		ce.Logger.Warnf("affordability: %v", err)
		cerr := domain.Undefined(calc, "maxLoanAmount", "loan size is too large to compute")
		cerr.Cause = err
		return domain.AffordabilityResult{}, cerr
	}

	ce.Logger.Debugf("affordability: headroom=%s maxLoan=%s", headroom.StringFixed(2), maxLoan.StringFixed(2))

	return domain.AffordabilityResult{
		MaxMonthlyInstalment: maxInstalment,
		MaxLoanAmount:        maxLoan,
		MaxPropertyValue:     maxLoan.Add(in.AvailableDownPayment),
		MonthlyPayment:       payment,
		AvailableDownPayment: in.AvailableDownPayment,
		RemainingIncome:      in.MonthlyIncome.Sub(in.MonthlyExpenses).Sub(in.MonthlyDebts).Sub(payment),
	}, nil
}
