package calculation

import (
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/shopspring/decimal"
)

// CPF computes monthly CPF contributions on ordinary wages capped at the
// monthly ceiling. Voluntary contributions are added after the rates are
// applied and are not subject to the ceiling.
func (ce *CalculationEngine) CPF(in domain.CPFInput) (domain.CPFResult, error) {
	calc := domain.CalcCPF
	if err := firstError(
		positive(calc, "monthlySalary", in.MonthlySalary),
		positiveInt(calc, "age", in.Age),
		optionalNonNegative(calc, "voluntaryContribution", in.VoluntaryContribution),
	); err != nil {
		return domain.CPFResult{}, err
	}
	if _, err := domain.ParseResidencyStatus(string(in.ResidencyStatus)); err != nil {
		return domain.CPFResult{}, domain.InvalidField(calc, "residencyStatus", err.Error())
	}
	if in.PRYear < 0 {
		return domain.CPFResult{}, domain.InvalidField(calc, "prYear", "must not be negative")
	}

	contributable := decimal.Min(in.MonthlySalary, ce.Rates.CPF.MonthlyCeiling)
	rates, band := ce.Rates.CPFRate(in.Age, in.ResidencyStatus, in.PRYear)

	employee := contributable.Mul(rates.Employee)
	employer := contributable.Mul(rates.Employer)
	voluntary := domain.OptionalOrZero(in.VoluntaryContribution)
	total := employee.Add(employer).Add(voluntary)

	ce.Logger.Debugf("cpf: band=%s contributable=%s total=%s", band, contributable.StringFixed(2), total.StringFixed(2))

	return domain.CPFResult{
		ContributableSalary:   contributable,
		EmployeeRate:          rates.Employee.Mul(hundred),
		EmployerRate:          rates.Employer.Mul(hundred),
		EmployeeContribution:  employee,
		EmployerContribution:  employer,
		VoluntaryContribution: voluntary,
		TotalContribution:     total,
		AnnualContribution:    total.Mul(decimal.NewFromInt(monthsPerYear)),
	}, nil
}
