package domain

import "github.com/shopspring/decimal"

// MortgageResult holds the monthly instalment and loan totals.
type MortgageResult struct {
	MonthlyPayment   decimal.Decimal `json:"monthlyPayment"`
	TotalPayment     decimal.Decimal `json:"totalPayment"`
	TotalInterest    decimal.Decimal `json:"totalInterest"`
	LoanToValueRatio decimal.Decimal `json:"loanToValueRatio"`
	NumPayments      int             `json:"numPayments"`
}

func (MortgageResult) Calculator() CalculatorID { return CalcMortgage }

func (r MortgageResult) Fields() []Field {
	return []Field{
		currencyField("monthlyPayment", "Monthly Payment", r.MonthlyPayment),
		currencyField("totalPayment", "Total Payment", r.TotalPayment),
		currencyField("totalInterest", "Total Interest", r.TotalInterest),
		percentField("loanToValueRatio", "Loan-to-Value Ratio", r.LoanToValueRatio),
		countField("numPayments", "Number of Payments", r.NumPayments),
	}
}

// BSDResult carries the progressive breakdown; the sum of breakdown tax
// equals BSD.
type BSDResult struct {
	PropertyValue decimal.Decimal `json:"propertyValue"`
	BSD           decimal.Decimal `json:"bsd"`
	Breakdown     []BracketLine   `json:"breakdown"`
}

func (BSDResult) Calculator() CalculatorID { return CalcBSD }

func (r BSDResult) Fields() []Field {
	return []Field{
		currencyField("propertyValue", "Property Value", r.PropertyValue),
		currencyField("bsd", "Buyer's Stamp Duty", r.BSD),
	}
}

func (r BSDResult) Lines() []BracketLine { return r.Breakdown }

type ABSDResult struct {
	PropertyValue decimal.Decimal `json:"propertyValue"`
	BuyerCategory BuyerCategory   `json:"buyerCategory"`
	ABSDRate      decimal.Decimal `json:"absdRate"`
	ABSD          decimal.Decimal `json:"absd"`
	Explanation   string          `json:"explanation"`
}

func (ABSDResult) Calculator() CalculatorID { return CalcABSD }

func (r ABSDResult) Fields() []Field {
	return []Field{
		currencyField("propertyValue", "Property Value", r.PropertyValue),
		textField("buyerCategory", "Buyer Category", string(r.BuyerCategory)),
		percentField("absdRate", "ABSD Rate", r.ABSDRate),
		currencyField("absd", "Additional Buyer's Stamp Duty", r.ABSD),
		textField("explanation", "Explanation", r.Explanation),
	}
}

type SSDResult struct {
	PropertyValue      decimal.Decimal `json:"propertyValue"`
	HoldingPeriodYears decimal.Decimal `json:"holdingPeriodYears"`
	HoldingYear        int             `json:"holdingYear"`
	SSDRate            decimal.Decimal `json:"ssdRate"`
	SSD                decimal.Decimal `json:"ssd"`
	Explanation        string          `json:"explanation"`
}

func (SSDResult) Calculator() CalculatorID { return CalcSSD }

func (r SSDResult) Fields() []Field {
	return []Field{
		currencyField("propertyValue", "Property Value", r.PropertyValue),
		numberField("holdingPeriodYears", "Holding Period (Years)", r.HoldingPeriodYears),
		percentField("ssdRate", "SSD Rate", r.SSDRate),
		currencyField("ssd", "Seller's Stamp Duty", r.SSD),
		textField("explanation", "Explanation", r.Explanation),
	}
}

type TDSRResult struct {
	TDSRPercentage  decimal.Decimal `json:"tdsrPercentage"`
	TotalDebts      decimal.Decimal `json:"totalDebts"`
	MaxAllowedDebts decimal.Decimal `json:"maxAllowedDebts"`
	IsWithinLimit   bool            `json:"isWithinLimit"`
}

func (TDSRResult) Calculator() CalculatorID { return CalcTDSR }

func (r TDSRResult) Fields() []Field {
	return []Field{
		percentField("tdsrPercentage", "TDSR", r.TDSRPercentage),
		currencyField("totalDebts", "Total Monthly Debts", r.TotalDebts),
		currencyField("maxAllowedDebts", "Maximum Allowed Debts", r.MaxAllowedDebts),
		flagField("isWithinLimit", "Within 55% Limit", r.IsWithinLimit),
	}
}

// CPFResult holds monthly contributions. TotalContribution is the exact sum
// of the three parts and AnnualContribution is exactly twelve months of it.
type CPFResult struct {
	ContributableSalary   decimal.Decimal `json:"contributableSalary"`
	EmployeeRate          decimal.Decimal `json:"employeeRate"`
	EmployerRate          decimal.Decimal `json:"employerRate"`
	EmployeeContribution  decimal.Decimal `json:"employeeContribution"`
	EmployerContribution  decimal.Decimal `json:"employerContribution"`
	VoluntaryContribution decimal.Decimal `json:"voluntaryContribution"`
	TotalContribution     decimal.Decimal `json:"totalContribution"`
	AnnualContribution    decimal.Decimal `json:"annualContribution"`
}

func (CPFResult) Calculator() CalculatorID { return CalcCPF }

func (r CPFResult) Fields() []Field {
	return []Field{
		currencyField("contributableSalary", "Contributable Salary", r.ContributableSalary),
		percentField("employeeRate", "Employee Rate", r.EmployeeRate),
		percentField("employerRate", "Employer Rate", r.EmployerRate),
		currencyField("employeeContribution", "Employee Contribution", r.EmployeeContribution),
		currencyField("employerContribution", "Employer Contribution", r.EmployerContribution),
		currencyField("voluntaryContribution", "Voluntary Contribution", r.VoluntaryContribution),
		currencyField("totalContribution", "Total Monthly Contribution", r.TotalContribution),
		currencyField("annualContribution", "Annual Contribution", r.AnnualContribution),
	}
}

// IncomeTaxResult reports TaxPayable after rebate. TaxBeforeRebate equals the
// sum of the breakdown for residents.
type IncomeTaxResult struct {
	IsResident       bool            `json:"isResident"`
	ChargeableIncome decimal.Decimal `json:"chargeableIncome"`
	TaxBeforeRebate  decimal.Decimal `json:"taxBeforeRebate"`
	Rebate           decimal.Decimal `json:"rebate"`
	TaxPayable       decimal.Decimal `json:"taxPayable"`
	EffectiveRate    decimal.Decimal `json:"effectiveRate"`
	MarginalRate     decimal.Decimal `json:"marginalRate"`
	Breakdown        []BracketLine   `json:"breakdown,omitempty"`
}

func (IncomeTaxResult) Calculator() CalculatorID { return CalcIncomeTax }

func (r IncomeTaxResult) Fields() []Field {
	return []Field{
		flagField("isResident", "Tax Resident", r.IsResident),
		currencyField("chargeableIncome", "Chargeable Income", r.ChargeableIncome),
		currencyField("taxBeforeRebate", "Tax Before Rebate", r.TaxBeforeRebate),
		currencyField("rebate", "Rebate", r.Rebate),
		currencyField("taxPayable", "Tax Payable", r.TaxPayable),
		percentField("effectiveRate", "Effective Rate", r.EffectiveRate),
		percentField("marginalRate", "Marginal Rate", r.MarginalRate),
	}
}

func (r IncomeTaxResult) Lines() []BracketLine { return r.Breakdown }

type CorporateTaxResult struct {
	CompanyType      CompanyType     `json:"companyType"`
	Exemptions       decimal.Decimal `json:"exemptions"`
	ChargeableIncome decimal.Decimal `json:"chargeableIncome"`
	TaxBeforeRebate  decimal.Decimal `json:"taxBeforeRebate"`
	Rebate           decimal.Decimal `json:"rebate"`
	TaxPayable       decimal.Decimal `json:"taxPayable"`
	EffectiveRate    decimal.Decimal `json:"effectiveRate"`
	MarginalRate     decimal.Decimal `json:"marginalRate"`
}

func (CorporateTaxResult) Calculator() CalculatorID { return CalcCorporateTax }

func (r CorporateTaxResult) Fields() []Field {
	return []Field{
		textField("companyType", "Company Type", string(r.CompanyType)),
		currencyField("exemptions", "Exemptions", r.Exemptions),
		currencyField("chargeableIncome", "Chargeable Income", r.ChargeableIncome),
		currencyField("taxBeforeRebate", "Tax Before Rebate", r.TaxBeforeRebate),
		currencyField("rebate", "Rebate", r.Rebate),
		currencyField("taxPayable", "Tax Payable", r.TaxPayable),
		percentField("effectiveRate", "Effective Rate", r.EffectiveRate),
		percentField("marginalRate", "Marginal Rate", r.MarginalRate),
	}
}

type InvestmentResult struct {
	FutureValueInitial       decimal.Decimal `json:"futureValueInitial"`
	FutureValueContributions decimal.Decimal `json:"futureValueContributions"`
	TotalValue               decimal.Decimal `json:"totalValue"`
	TotalInvested            decimal.Decimal `json:"totalInvested"`
	TotalGains               decimal.Decimal `json:"totalGains"`
	ROI                      decimal.Decimal `json:"roi"`
	AnnualizedReturn         decimal.Decimal `json:"annualizedReturn"`
}

func (InvestmentResult) Calculator() CalculatorID { return CalcInvestment }

func (r InvestmentResult) Fields() []Field {
	return []Field{
		currencyField("futureValueInitial", "Growth of Initial Investment", r.FutureValueInitial),
		currencyField("futureValueContributions", "Growth of Contributions", r.FutureValueContributions),
		currencyField("totalValue", "Total Value", r.TotalValue),
		currencyField("totalInvested", "Total Invested", r.TotalInvested),
		currencyField("totalGains", "Total Gains", r.TotalGains),
		percentField("roi", "ROI", r.ROI),
		percentField("annualizedReturn", "Annualized Return", r.AnnualizedReturn),
	}
}

type HDBUpgradeResult struct {
	NetProceeds          decimal.Decimal `json:"netProceeds"`
	AvailableForUpgrade  decimal.Decimal `json:"availableForUpgrade"`
	AdditionalCashNeeded decimal.Decimal `json:"additionalCashNeeded"`
	CanAffordUpgrade     bool            `json:"canAffordUpgrade"`
}

func (HDBUpgradeResult) Calculator() CalculatorID { return CalcHDBUpgrade }

func (r HDBUpgradeResult) Fields() []Field {
	return []Field{
		currencyField("netProceeds", "Net Sale Proceeds", r.NetProceeds),
		currencyField("availableForUpgrade", "Available for Upgrade", r.AvailableForUpgrade),
		currencyField("additionalCashNeeded", "Additional Cash Needed", r.AdditionalCashNeeded),
		flagField("canAffordUpgrade", "Can Afford Upgrade", r.CanAffordUpgrade),
	}
}

type AffordabilityResult struct {
	MaxMonthlyInstalment decimal.Decimal `json:"maxMonthlyInstalment"`
	MaxLoanAmount        decimal.Decimal `json:"maxLoanAmount"`
	MaxPropertyValue     decimal.Decimal `json:"maxPropertyValue"`
	MonthlyPayment       decimal.Decimal `json:"monthlyPayment"`
	AvailableDownPayment decimal.Decimal `json:"availableDownPayment"`
	RemainingIncome      decimal.Decimal `json:"remainingIncome"`
}

func (AffordabilityResult) Calculator() CalculatorID { return CalcAffordability }

func (r AffordabilityResult) Fields() []Field {
	return []Field{
		currencyField("maxMonthlyInstalment", "Maximum Monthly Instalment", r.MaxMonthlyInstalment),
		currencyField("maxLoanAmount", "Maximum Loan Amount", r.MaxLoanAmount),
		currencyField("maxPropertyValue", "Maximum Property Value", r.MaxPropertyValue),
		currencyField("monthlyPayment", "Monthly Payment", r.MonthlyPayment),
		currencyField("availableDownPayment", "Available Down Payment", r.AvailableDownPayment),
		currencyField("remainingIncome", "Remaining Monthly Income", r.RemainingIncome),
	}
}

// StampDutySummary combines the three stamp duties on one property.
type StampDutySummary struct {
	BSD   decimal.Decimal `json:"bsd"`
	ABSD  decimal.Decimal `json:"absd"`
	SSD   decimal.Decimal `json:"ssd"`
	Total decimal.Decimal `json:"total"`
}
