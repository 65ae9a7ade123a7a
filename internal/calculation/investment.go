package calculation

import (
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/shopspring/decimal"
)

// Investment projects a lump sum plus monthly contributions compounded
// monthly. ROI and annualized return are undefined when nothing is invested.
func (ce *CalculationEngine) Investment(in domain.InvestmentInput) (domain.InvestmentResult, error) {
	calc := domain.CalcInvestment
	if err := firstError(
		nonNegative(calc, "initialInvestment", in.InitialInvestment),
		nonNegative(calc, "monthlyContribution", in.MonthlyContribution),
		nonNegative(calc, "annualReturn", in.AnnualReturn),
		positiveYears(calc, "years", in.Years),
	); err != nil {
		return domain.InvestmentResult{}, err
	}

	periods := in.Years * monthsPerYear
	rate := PeriodicRate(in.AnnualReturn, monthsPerYear)

	fvInitial, err := FutureValueLumpSum(in.InitialInvestment, rate, periods)
	var fvContrib decimal.Decimal
	if err == nil {
		fvContrib, err = FutureValueAnnuity(in.MonthlyContribution, rate, periods)
	}
	if err != nil {
		ce.Logger.Warnf("investment: %v", err)
		cerr := domain.Undefined(calc, "totalValue", "future value is too large to compute")
		cerr.Cause = err
		return domain.InvestmentResult{}, cerr
	}
	total := fvInitial.Add(fvContrib)
	invested := in.InitialInvestment.Add(in.MonthlyContribution.Mul(decimal.NewFromInt(int64(periods))))

	if !invested.IsPositive() {
		return domain.InvestmentResult{}, domain.Undefined(calc, "totalInvested", "return is undefined when nothing is invested")
	}

	gains := total.Sub(invested)
	annualized, err := AnnualizedReturn(total, invested, in.Years)
	if err != nil {
		ce.Logger.Warnf("investment: %v", err)
		cerr := domain.Undefined(calc, "annualizedReturn", "annualized return is undefined")
		cerr.Cause = err
		return domain.InvestmentResult{}, cerr
	}

	return domain.InvestmentResult{
		FutureValueInitial:       fvInitial,
		FutureValueContributions: fvContrib,
		TotalValue:               total,
		TotalInvested:            invested,
		TotalGains:               gains,
		ROI:                      gains.Div(invested).Mul(hundred),
		AnnualizedReturn:         annualized.Mul(hundred),
	}, nil
}
