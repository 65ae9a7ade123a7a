package domain

import "github.com/shopspring/decimal"

// Input structs carry the raw, already parsed values for one calculator.
// Money is whole SGD, rates are percentages (3.5 = 3.5%) and periods are
// whole years unless stated otherwise. Validate tags name the range domains
// registered by the validation package.

// MortgageInput holds the loan terms for an EMI calculation.
type MortgageInput struct {
	Principal     decimal.Decimal  `json:"principal" yaml:"principal" validate:"loanAmount"`
	AnnualRate    decimal.Decimal  `json:"annualRate" yaml:"annualRate" validate:"interestRate"`
	TenureYears   int              `json:"tenureYears" yaml:"tenureYears" validate:"tenure"`
	PropertyValue *decimal.Decimal `json:"propertyValue,omitempty" yaml:"propertyValue,omitempty" validate:"omitempty,propertyPrice"`
}

func (MortgageInput) Calculator() CalculatorID { return CalcMortgage }

type BSDInput struct {
	PropertyValue decimal.Decimal `json:"propertyValue" yaml:"propertyValue" validate:"propertyPrice"`
}

func (BSDInput) Calculator() CalculatorID { return CalcBSD }

type ABSDInput struct {
	PropertyValue decimal.Decimal `json:"propertyValue" yaml:"propertyValue" validate:"propertyPrice"`
	BuyerCategory BuyerCategory   `json:"buyerCategory" yaml:"buyerCategory" validate:"required,oneof=citizen_first citizen_second citizen_third pr_first pr_subsequent foreigner"`
}

func (ABSDInput) Calculator() CalculatorID { return CalcABSD }

// SSDInput allows fractional holding periods; the rate is looked up by the
// holding year the sale falls in.
type SSDInput struct {
	PropertyValue      decimal.Decimal `json:"propertyValue" yaml:"propertyValue" validate:"propertyPrice"`
	HoldingPeriodYears decimal.Decimal `json:"holdingPeriodYears" yaml:"holdingPeriodYears" validate:"gt=0"`
}

func (SSDInput) Calculator() CalculatorID { return CalcSSD }

type TDSRInput struct {
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" yaml:"monthlyIncome" validate:"income"`
	ExistingDebts decimal.Decimal `json:"existingDebts" yaml:"existingDebts" validate:"gte=0"`
	NewLoanEMI    decimal.Decimal `json:"newLoanEMI" yaml:"newLoanEMI" validate:"gte=0"`
}

func (TDSRInput) Calculator() CalculatorID { return CalcTDSR }

// CPFInput describes one month of ordinary wages. PRYear is only read for
// permanent residents; 0 is treated as the first year.
type CPFInput struct {
	MonthlySalary         decimal.Decimal  `json:"monthlySalary" yaml:"monthlySalary" validate:"income"`
	Age                   int              `json:"age" yaml:"age" validate:"age"`
	ResidencyStatus       ResidencyStatus  `json:"residencyStatus" yaml:"residencyStatus" validate:"required,oneof=citizen pr"`
	PRYear                int              `json:"prYear,omitempty" yaml:"prYear,omitempty" validate:"gte=0"`
	VoluntaryContribution *decimal.Decimal `json:"voluntaryContribution,omitempty" yaml:"voluntaryContribution,omitempty" validate:"omitempty,gte=0"`
}

func (CPFInput) Calculator() CalculatorID { return CalcCPF }

type IncomeTaxInput struct {
	AnnualIncome decimal.Decimal  `json:"annualIncome" yaml:"annualIncome" validate:"gt=0"`
	IsResident   bool             `json:"isResident" yaml:"isResident"`
	Reliefs      *decimal.Decimal `json:"reliefs,omitempty" yaml:"reliefs,omitempty" validate:"omitempty,gte=0"`
}

func (IncomeTaxInput) Calculator() CalculatorID { return CalcIncomeTax }

type CorporateTaxInput struct {
	TaxableIncome decimal.Decimal `json:"taxableIncome" yaml:"taxableIncome" validate:"gt=0"`
	CompanyType   CompanyType     `json:"companyType" yaml:"companyType" validate:"required,oneof=startup sme regular"`
}

func (CorporateTaxInput) Calculator() CalculatorID { return CalcCorporateTax }

type InvestmentInput struct {
	InitialInvestment   decimal.Decimal `json:"initialInvestment" yaml:"initialInvestment" validate:"gte=0"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution" yaml:"monthlyContribution" validate:"gte=0"`
	AnnualReturn        decimal.Decimal `json:"annualReturn" yaml:"annualReturn" validate:"interestRate"`
	Years               int             `json:"years" yaml:"years" validate:"gt=0,lte=100"`
}

func (InvestmentInput) Calculator() CalculatorID { return CalcInvestment }

type HDBUpgradeInput struct {
	HDBValue          decimal.Decimal  `json:"hdbValue" yaml:"hdbValue" validate:"propertyPrice"`
	OutstandingLoan   decimal.Decimal  `json:"outstandingLoan" yaml:"outstandingLoan" validate:"gte=0"`
	CPFUsed           *decimal.Decimal `json:"cpfUsed,omitempty" yaml:"cpfUsed,omitempty" validate:"omitempty,gte=0"`
	AccruedInterest   *decimal.Decimal `json:"accruedInterest,omitempty" yaml:"accruedInterest,omitempty" validate:"omitempty,gte=0"`
	TargetDownPayment *decimal.Decimal `json:"targetDownPayment,omitempty" yaml:"targetDownPayment,omitempty" validate:"omitempty,gte=0"`
}

func (HDBUpgradeInput) Calculator() CalculatorID { return CalcHDBUpgrade }

type AffordabilityInput struct {
	MonthlyIncome        decimal.Decimal `json:"monthlyIncome" yaml:"monthlyIncome" validate:"income"`
	MonthlyExpenses      decimal.Decimal `json:"monthlyExpenses" yaml:"monthlyExpenses" validate:"gte=0"`
	MonthlyDebts         decimal.Decimal `json:"monthlyDebts" yaml:"monthlyDebts" validate:"gte=0"`
	AvailableDownPayment decimal.Decimal `json:"availableDownPayment" yaml:"availableDownPayment" validate:"gte=0"`
	AnnualRate           decimal.Decimal `json:"annualRate" yaml:"annualRate" validate:"interestRate"`
	TenureYears          int             `json:"tenureYears" yaml:"tenureYears" validate:"tenure"`
}

func (AffordabilityInput) Calculator() CalculatorID { return CalcAffordability }

// OptionalOrZero dereferences an optional amount.
func OptionalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
