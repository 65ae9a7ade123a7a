package domain

import "github.com/shopspring/decimal"

// InputFields returns the entered values of an input in schema order, labelled
// the way the calculator's form labels them. Optional amounts that were not
// supplied are omitted.
func InputFields(in Input) []Field {
	if in == nil {
		return nil
	}
	labels := make(map[string]InputField)
	for _, f := range Schema(in.Calculator()) {
		labels[f.Key] = f
	}
	field := func(key string, v decimal.Decimal) Field {
		f := labels[key]
		return Field{Key: key, Label: f.Label, Kind: f.Kind, Value: v}
	}
	count := func(key string, n int) Field {
		return field(key, decimal.NewFromInt(int64(n)))
	}
	choice := func(key, text string) Field {
		return Field{Key: key, Label: labels[key].Label, Kind: KindChoice, Text: text}
	}

	var out []Field
	optional := func(key string, v *decimal.Decimal) {
		if v != nil {
			out = append(out, field(key, *v))
		}
	}

	switch v := in.(type) {
	case MortgageInput:
		out = append(out, field("principal", v.Principal), field("annualRate", v.AnnualRate), count("tenureYears", v.TenureYears))
		optional("propertyValue", v.PropertyValue)
	case BSDInput:
		out = append(out, field("propertyValue", v.PropertyValue))
	case ABSDInput:
		out = append(out, field("propertyValue", v.PropertyValue), choice("buyerCategory", string(v.BuyerCategory)))
	case SSDInput:
		out = append(out, field("propertyValue", v.PropertyValue), field("holdingPeriodYears", v.HoldingPeriodYears))
	case TDSRInput:
		out = append(out, field("monthlyIncome", v.MonthlyIncome), field("existingDebts", v.ExistingDebts), field("newLoanEMI", v.NewLoanEMI))
	case CPFInput:
		out = append(out, field("monthlySalary", v.MonthlySalary), count("age", v.Age), choice("residencyStatus", string(v.ResidencyStatus)))
		if v.ResidencyStatus == PermanentResident {
			out = append(out, count("prYear", v.PRYear))
		}
		optional("voluntaryContribution", v.VoluntaryContribution)
	case IncomeTaxInput:
		out = append(out, field("annualIncome", v.AnnualIncome), Field{Key: "isResident", Label: labels["isResident"].Label, Kind: KindFlag, Flag: v.IsResident})
		optional("reliefs", v.Reliefs)
	case CorporateTaxInput:
		out = append(out, field("taxableIncome", v.TaxableIncome), choice("companyType", string(v.CompanyType)))
	case InvestmentInput:
		out = append(out, field("initialInvestment", v.InitialInvestment), field("monthlyContribution", v.MonthlyContribution),
			field("annualReturn", v.AnnualReturn), count("years", v.Years))
	case HDBUpgradeInput:
		out = append(out, field("hdbValue", v.HDBValue), field("outstandingLoan", v.OutstandingLoan))
		optional("cpfUsed", v.CPFUsed)
		optional("accruedInterest", v.AccruedInterest)
		optional("targetDownPayment", v.TargetDownPayment)
	case AffordabilityInput:
		out = append(out, field("monthlyIncome", v.MonthlyIncome), field("monthlyExpenses", v.MonthlyExpenses),
			field("monthlyDebts", v.MonthlyDebts), field("availableDownPayment", v.AvailableDownPayment),
			field("annualRate", v.AnnualRate), count("tenureYears", v.TenureYears))
	}
	return out
}
