package report

import (
	"fmt"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	minLoan          = decimal.NewFromInt(10_000)
	maxLoan          = decimal.NewFromInt(10_000_000)
	minPropertyValue = decimal.NewFromInt(10_000)
	maxPropertyValue = decimal.NewFromInt(100_000_000)
	maxSSDYears      = decimal.NewFromInt(4)
	tdsrLimit        = decimal.NewFromInt(60)
	maxIncome        = decimal.NewFromInt(10_000_000)
	maxReturn        = decimal.NewFromInt(50)
	twelve           = decimal.NewFromInt(12)
)

// ValidationSummary lists the problems found in a report. Errors make the
// report unfit for a client; warnings are advisory.
type ValidationSummary struct {
	IsValid             bool     `json:"isValid"`
	Errors              []string `json:"errors"`
	Warnings            []string `json:"warnings"`
	TotalCalculations   int      `json:"totalCalculations"`
	ValidCalculations   int      `json:"validCalculations"`
	InvalidCalculations int      `json:"invalidCalculations"`
}

// Status is "ready" or "errors".
func (s ValidationSummary) Status() string {
	if s.IsValid {
		return "ready"
	}
	return "errors"
}

func (s ValidationSummary) Message() string {
	if s.IsValid {
		return fmt.Sprintf("Report ready for client (%d calculations validated)", s.ValidCalculations)
	}
	return fmt.Sprintf("Report has %d error(s) that must be fixed", len(s.Errors))
}

type entryCheck struct {
	name     string
	errors   []string
	warnings []string
}

func (c *entryCheck) errorf(format string, args ...interface{}) {
	c.errors = append(c.errors, c.name+": "+fmt.Sprintf(format, args...))
}

func (c *entryCheck) warnf(format string, args ...interface{}) {
	c.warnings = append(c.warnings, c.name+": "+fmt.Sprintf(format, args...))
}

func (c *entryCheck) positive(label string, v decimal.Decimal) {
	if !v.IsPositive() {
		c.errorf("invalid %s (%s)", label, v.String())
	}
}

func (c *entryCheck) nonNegative(label string, v decimal.Decimal) {
	if v.IsNegative() {
		c.errorf("invalid %s (%s)", label, v.String())
	}
}

func outside(v, lo, hi decimal.Decimal) bool {
	return v.LessThan(lo) || v.GreaterThan(hi)
}

// Validate checks every entry of the report, then the consistency of values
// shared between entries and the presence of property and tax calculations.
func Validate(report *domain.Report) ValidationSummary {
	s := ValidationSummary{Errors: []string{}, Warnings: []string{}}
	if report == nil || len(report.Entries) == 0 {
		s.Errors = append(s.Errors, "No calculations found in report")
		return s
	}
	s.TotalCalculations = len(report.Entries)

	for _, e := range report.Entries {
		c := checkEntry(e)
		if len(c.errors) == 0 {
			s.ValidCalculations++
		} else {
			s.InvalidCalculations++
		}
		s.Errors = append(s.Errors, c.errors...)
		s.Warnings = append(s.Warnings, c.warnings...)
	}

	s.Warnings = append(s.Warnings, consistencyWarnings(report)...)
	s.Warnings = append(s.Warnings, coverageWarnings(report)...)
	s.IsValid = len(s.Errors) == 0
	return s
}

func calculatorOf(e domain.ReportEntry) domain.CalculatorID {
	switch {
	case e.Result != nil:
		return e.Result.Calculator()
	case e.Input != nil:
		return e.Input.Calculator()
	}
	return ""
}

func entryName(e domain.ReportEntry) string {
	name := calculatorOf(e).Title()
	if name == "" {
		name = "Calculation"
	}
	if e.Label != "" {
		name += " (" + e.Label + ")"
	}
	return name
}

func checkEntry(e domain.ReportEntry) *entryCheck {
	c := &entryCheck{name: entryName(e)}
	if e.Result == nil {
		c.errorf("no calculation result found")
		return c
	}
	if e.Input == nil {
		c.warnf("no input parameters found")
	}

	switch r := e.Result.(type) {
	case domain.MortgageResult:
		c.positive("monthly payment", r.MonthlyPayment)
		c.positive("total payment", r.TotalPayment)
		c.nonNegative("total interest", r.TotalInterest)
		if in, ok := e.Input.(domain.MortgageInput); ok && outside(in.Principal, minLoan, maxLoan) {
			c.warnf("loan amount seems unusually high or low")
		}
	case domain.BSDResult:
		c.nonNegative("stamp duty amount", r.BSD)
		checkPropertyValue(c, r.PropertyValue)
	case domain.ABSDResult:
		c.nonNegative("stamp duty amount", r.ABSD)
		checkPropertyValue(c, r.PropertyValue)
	case domain.SSDResult:
		c.nonNegative("stamp duty amount", r.SSD)
		checkPropertyValue(c, r.PropertyValue)
		if r.HoldingPeriodYears.GreaterThan(maxSSDYears) {
			c.warnf("holding period beyond %s years attracts no seller's stamp duty", maxSSDYears)
		}
	case domain.TDSRResult:
		c.nonNegative("TDSR percentage", r.TDSRPercentage)
		if r.TDSRPercentage.GreaterThan(tdsrLimit) {
			c.warnf("TDSR exceeds %s%% - may not be approved by banks", tdsrLimit)
		}
	case domain.CPFResult:
		c.nonNegative("employee contribution", r.EmployeeContribution)
		c.nonNegative("employer contribution", r.EmployerContribution)
		c.nonNegative("total contribution", r.TotalContribution)
		if in, ok := e.Input.(domain.CPFInput); ok {
			if !in.MonthlySalary.IsPositive() {
				c.errorf("missing or invalid monthly salary")
			}
			if in.Age < 16 || in.Age > 100 {
				c.errorf("invalid age %d (must be 16-100)", in.Age)
			}
		}
	case domain.IncomeTaxResult:
		c.nonNegative("tax payable amount", r.TaxPayable)
		if in, ok := e.Input.(domain.IncomeTaxInput); ok {
			checkIncome(c, in.AnnualIncome)
		}
	case domain.CorporateTaxResult:
		c.nonNegative("tax payable amount", r.TaxPayable)
		if in, ok := e.Input.(domain.CorporateTaxInput); ok {
			checkIncome(c, in.TaxableIncome)
		}
	case domain.InvestmentResult:
		c.nonNegative("total value", r.TotalValue)
		c.nonNegative("total invested", r.TotalInvested)
		if in, ok := e.Input.(domain.InvestmentInput); ok && in.AnnualReturn.GreaterThan(maxReturn) {
			c.warnf("expected return seems unusually high")
		}
	case domain.HDBUpgradeResult:
		if in, ok := e.Input.(domain.HDBUpgradeInput); ok {
			checkPropertyValue(c, in.HDBValue)
		}
	case domain.AffordabilityResult:
		c.nonNegative("maximum loan amount", r.MaxLoanAmount)
		c.nonNegative("maximum property value", r.MaxPropertyValue)
		c.nonNegative("monthly payment", r.MonthlyPayment)
	}
	return c
}

func checkPropertyValue(c *entryCheck, v decimal.Decimal) {
	if !v.IsPositive() {
		c.errorf("missing or invalid property value")
		return
	}
	if outside(v, minPropertyValue, maxPropertyValue) {
		c.warnf("property value seems unusually high or low")
	}
}

func checkIncome(c *entryCheck, v decimal.Decimal) {
	if !v.IsPositive() {
		c.errorf("missing or invalid income")
		return
	}
	if v.GreaterThan(maxIncome) {
		c.warnf("income seems unusually high")
	}
}

func propertyValueOf(e domain.ReportEntry) (decimal.Decimal, bool) {
	switch r := e.Result.(type) {
	case domain.BSDResult:
		return r.PropertyValue, true
	case domain.ABSDResult:
		return r.PropertyValue, true
	case domain.SSDResult:
		return r.PropertyValue, true
	}
	return decimal.Decimal{}, false
}

// monthlyIncomeOf returns the monthly income an entry was computed from,
// rounded to cents. Annual incomes are divided by twelve.
func monthlyIncomeOf(e domain.ReportEntry) (decimal.Decimal, bool) {
	switch in := e.Input.(type) {
	case domain.TDSRInput:
		return in.MonthlyIncome.Round(2), true
	case domain.AffordabilityInput:
		return in.MonthlyIncome.Round(2), true
	case domain.IncomeTaxInput:
		return in.AnnualIncome.Div(twelve).Round(2), true
	}
	return decimal.Decimal{}, false
}

func distinct(values []decimal.Decimal) bool {
	for _, v := range values[1:] {
		if !v.Equal(values[0]) {
			return true
		}
	}
	return false
}

func consistencyWarnings(report *domain.Report) []string {
	var properties, incomes []decimal.Decimal
	for _, e := range report.Entries {
		if v, ok := propertyValueOf(e); ok {
			properties = append(properties, v)
		}
		if v, ok := monthlyIncomeOf(e); ok {
			incomes = append(incomes, v)
		}
	}

	var out []string
	if len(properties) > 1 && distinct(properties) {
		out = append(out, "Property values are inconsistent across stamp duty calculations")
	}
	if len(incomes) > 1 && distinct(incomes) {
		out = append(out, "Income values are inconsistent across calculations")
	}
	return out
}

func coverageWarnings(report *domain.Report) []string {
	var property, tax bool
	for _, e := range report.Entries {
		switch calculatorOf(e) {
		case domain.CalcMortgage, domain.CalcBSD, domain.CalcABSD, domain.CalcTDSR, domain.CalcAffordability:
			property = true
		case domain.CalcIncomeTax, domain.CalcCorporateTax:
			tax = true
		}
	}

	var out []string
	if !property {
		out = append(out, "No property-related calculations found - consider adding mortgage, stamp duty, or affordability calculations")
	}
	if !tax {
		out = append(out, "No tax calculations found - consider adding income tax or corporate tax calculations")
	}
	return out
}
