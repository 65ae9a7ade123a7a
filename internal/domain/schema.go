package domain

// InputField describes one user-entered input of a calculator.
type InputField struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
	Domain   string    `json:"domain,omitempty"`  // validation range name
	Default  string    `json:"default,omitempty"` // used when a form field is left blank
}

func buyerCategoryOptions() []string {
	var out []string
	for _, c := range BuyerCategories() {
		out = append(out, string(c))
	}
	return out
}

func companyTypeOptions() []string {
	var out []string
	for _, c := range CompanyTypes() {
		out = append(out, string(c))
	}
	return out
}

// Schema returns the input fields of a calculator in form order.
func Schema(id CalculatorID) []InputField {
	switch id {
	case CalcMortgage:
		return []InputField{
			{Key: "principal", Label: "Loan Amount", Kind: KindCurrency, Required: true, Domain: "loanAmount"},
			{Key: "annualRate", Label: "Interest Rate (% p.a.)", Kind: KindPercentage, Required: true, Domain: "interestRate"},
			{Key: "tenureYears", Label: "Loan Tenure (Years)", Kind: KindCount, Required: true, Domain: "tenure"},
			{Key: "propertyValue", Label: "Property Value", Kind: KindCurrency, Domain: "propertyPrice"},
		}
	case CalcBSD:
		return []InputField{
			{Key: "propertyValue", Label: "Property Value", Kind: KindCurrency, Required: true, Domain: "propertyPrice"},
		}
	case CalcABSD:
		return []InputField{
			{Key: "propertyValue", Label: "Property Value", Kind: KindCurrency, Required: true, Domain: "propertyPrice"},
			{Key: "buyerCategory", Label: "Buyer Category", Kind: KindChoice, Required: true, Options: buyerCategoryOptions()},
		}
	case CalcSSD:
		return []InputField{
			{Key: "propertyValue", Label: "Property Value", Kind: KindCurrency, Required: true, Domain: "propertyPrice"},
			{Key: "holdingPeriodYears", Label: "Holding Period (Years)", Kind: KindNumber, Required: true},
		}
	case CalcTDSR:
		return []InputField{
			{Key: "monthlyIncome", Label: "Gross Monthly Income", Kind: KindCurrency, Required: true, Domain: "income"},
			{Key: "existingDebts", Label: "Existing Monthly Debts", Kind: KindCurrency, Required: true, Default: "0"},
			{Key: "newLoanEMI", Label: "New Loan Instalment", Kind: KindCurrency, Required: true, Default: "0"},
		}
	case CalcCPF:
		return []InputField{
			{Key: "monthlySalary", Label: "Monthly Salary", Kind: KindCurrency, Required: true, Domain: "income"},
			{Key: "age", Label: "Age", Kind: KindCount, Required: true, Domain: "age"},
			{Key: "residencyStatus", Label: "Residency Status", Kind: KindChoice, Required: true, Options: []string{string(Citizen), string(PermanentResident)}, Default: string(Citizen)},
			{Key: "prYear", Label: "PR Year", Kind: KindCount, Default: "1"},
			{Key: "voluntaryContribution", Label: "Voluntary Contribution", Kind: KindCurrency},
		}
	case CalcIncomeTax:
		return []InputField{
			{Key: "annualIncome", Label: "Annual Income", Kind: KindCurrency, Required: true},
			{Key: "isResident", Label: "Tax Resident", Kind: KindFlag, Required: true, Default: "true"},
			{Key: "reliefs", Label: "Tax Reliefs", Kind: KindCurrency},
		}
	case CalcCorporateTax:
		return []InputField{
			{Key: "taxableIncome", Label: "Taxable Income", Kind: KindCurrency, Required: true},
			{Key: "companyType", Label: "Company Type", Kind: KindChoice, Required: true, Options: companyTypeOptions(), Default: string(CompanyRegular)},
		}
	case CalcInvestment:
		return []InputField{
			{Key: "initialInvestment", Label: "Initial Investment", Kind: KindCurrency, Required: true},
			{Key: "monthlyContribution", Label: "Monthly Contribution", Kind: KindCurrency, Required: true, Default: "0"},
			{Key: "annualReturn", Label: "Expected Return (% p.a.)", Kind: KindPercentage, Required: true, Domain: "interestRate"},
			{Key: "years", Label: "Investment Period (Years)", Kind: KindCount, Required: true},
		}
	case CalcHDBUpgrade:
		return []InputField{
			{Key: "hdbValue", Label: "HDB Valuation", Kind: KindCurrency, Required: true, Domain: "propertyPrice"},
			{Key: "outstandingLoan", Label: "Outstanding Loan", Kind: KindCurrency, Required: true},
			{Key: "cpfUsed", Label: "CPF Used", Kind: KindCurrency},
			{Key: "accruedInterest", Label: "Accrued Interest", Kind: KindCurrency},
			{Key: "targetDownPayment", Label: "Target Down Payment", Kind: KindCurrency},
		}
	case CalcAffordability:
		return []InputField{
			{Key: "monthlyIncome", Label: "Gross Monthly Income", Kind: KindCurrency, Required: true, Domain: "income"},
			{Key: "monthlyExpenses", Label: "Monthly Expenses", Kind: KindCurrency, Required: true, Default: "0"},
			{Key: "monthlyDebts", Label: "Monthly Debts", Kind: KindCurrency, Required: true, Default: "0"},
			{Key: "availableDownPayment", Label: "Available Down Payment", Kind: KindCurrency, Required: true, Default: "0"},
			{Key: "annualRate", Label: "Interest Rate (% p.a.)", Kind: KindPercentage, Required: true, Domain: "interestRate"},
			{Key: "tenureYears", Label: "Loan Tenure (Years)", Kind: KindCount, Required: true, Domain: "tenure"},
		}
	}
	return nil
}
