package calculation

import (
	"github.com/rgehrsitz/sgfin/internal/domain"
)

// TDSR computes the Total Debt Servicing Ratio against the regulatory limit.
func (ce *CalculationEngine) TDSR(in domain.TDSRInput) (domain.TDSRResult, error) {
	calc := domain.CalcTDSR
	if err := firstError(
		positive(calc, "monthlyIncome", in.MonthlyIncome),
		nonNegative(calc, "existingDebts", in.ExistingDebts),
		nonNegative(calc, "newLoanEMI", in.NewLoanEMI),
	); err != nil {
		return domain.TDSRResult{}, err
	}

	totalDebts := in.ExistingDebts.Add(in.NewLoanEMI)
	ratio := totalDebts.Div(in.MonthlyIncome).Mul(hundred)
	limit := ce.Rates.TDSRLimit

	return domain.TDSRResult{
		TDSRPercentage:  ratio,
		TotalDebts:      totalDebts,
		MaxAllowedDebts: in.MonthlyIncome.Mul(limit).Div(hundred),
		IsWithinLimit:   ratio.LessThanOrEqual(limit),
	}, nil
}
