package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/validation"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files and raw calculator inputs
type InputParser struct {
	validator *validation.Validator
}

// NewInputParser creates a new input parser using the default range domains
func NewInputParser() *InputParser {
	return &InputParser{validator: validation.New(nil)}
}

// NewInputParserWithValidator creates a parser that checks ranges with v
func NewInputParserWithValidator(v *validation.Validator) *InputParser {
	if v == nil {
		v = validation.New(nil)
	}
	return &InputParser{validator: v}
}

// Validator returns the validator used for range checks
func (ip *InputParser) Validator() *validation.Validator {
	return ip.validator
}

// LoadFromFile loads a scenario from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a scenario document
func (ip *InputParser) Parse(data []byte) (*domain.Scenario, error) {
	var scenario domain.Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&scenario); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &scenario, nil
}

// ValidateConfiguration checks that every calculation of a scenario names a
// known calculator and carries parseable, in-range inputs
func (ip *InputParser) ValidateConfiguration(scenario *domain.Scenario) error {
	if scenario == nil {
		return fmt.Errorf("scenario is required")
	}
	if len(scenario.Calculations) == 0 {
		return fmt.Errorf("no calculations provided")
	}
	for i, c := range scenario.Calculations {
		if _, err := ip.ParseRequest(c); err != nil {
			return fmt.Errorf("calculation %d validation failed: %w", i+1, err)
		}
	}
	return nil
}

// ParseRequest parses one calculation request
func (ip *InputParser) ParseRequest(req domain.CalculationRequest) (domain.Input, error) {
	if !req.Calculator.Valid() {
		return nil, domain.InvalidField(req.Calculator, "", "unknown calculator")
	}
	return ip.ParseCalculatorInput(req.Calculator, req.Inputs)
}

// ParseCalculatorInput converts string-valued form fields into the typed
// input of a calculator. Blank fields take their schema default; required
// fields without one are reported as missing. Ranges are checked with the
// parser's validator. Errors are *domain.CalculationError.
func (ip *InputParser) ParseCalculatorInput(id domain.CalculatorID, values map[string]string) (domain.Input, error) {
	schema := domain.Schema(id)
	if schema == nil {
		return nil, domain.InvalidField(id, "", "unknown calculator")
	}

	known := make(map[string]bool, len(schema))
	for _, f := range schema {
		known[f.Key] = true
	}
	for k := range values {
		if !known[k] {
			return nil, domain.InvalidField(id, k, "unknown field")
		}
	}

	r := &fieldReader{id: id, values: make(map[string]string, len(schema))}
	for _, f := range schema {
		v := strings.TrimSpace(values[f.Key])
		if v == "" {
			v = f.Default
		}
		if v == "" && f.Required {
			return nil, domain.InvalidField(id, f.Key, "is required")
		}
		if v != "" {
			r.values[f.Key] = v
		}
	}

	var in domain.Input
	switch id {
	case domain.CalcMortgage:
		in = domain.MortgageInput{
			Principal:     r.decimal("principal"),
			AnnualRate:    r.decimal("annualRate"),
			TenureYears:   r.integer("tenureYears"),
			PropertyValue: r.optionalDecimal("propertyValue"),
		}
	case domain.CalcBSD:
		in = domain.BSDInput{PropertyValue: r.decimal("propertyValue")}
	case domain.CalcABSD:
		in = domain.ABSDInput{
			PropertyValue: r.decimal("propertyValue"),
			BuyerCategory: choice(r, "buyerCategory", domain.ParseBuyerCategory),
		}
	case domain.CalcSSD:
		in = domain.SSDInput{
			PropertyValue:      r.decimal("propertyValue"),
			HoldingPeriodYears: r.decimal("holdingPeriodYears"),
		}
	case domain.CalcTDSR:
		in = domain.TDSRInput{
			MonthlyIncome: r.decimal("monthlyIncome"),
			ExistingDebts: r.decimal("existingDebts"),
			NewLoanEMI:    r.decimal("newLoanEMI"),
		}
	case domain.CalcCPF:
		in = domain.CPFInput{
			MonthlySalary:         r.decimal("monthlySalary"),
			Age:                   r.integer("age"),
			ResidencyStatus:       choice(r, "residencyStatus", domain.ParseResidencyStatus),
			PRYear:                r.integer("prYear"),
			VoluntaryContribution: r.optionalDecimal("voluntaryContribution"),
		}
	case domain.CalcIncomeTax:
		in = domain.IncomeTaxInput{
			AnnualIncome: r.decimal("annualIncome"),
			IsResident:   r.boolean("isResident"),
			Reliefs:      r.optionalDecimal("reliefs"),
		}
	case domain.CalcCorporateTax:
		in = domain.CorporateTaxInput{
			TaxableIncome: r.decimal("taxableIncome"),
			CompanyType:   choice(r, "companyType", domain.ParseCompanyType),
		}
	case domain.CalcInvestment:
		in = domain.InvestmentInput{
			InitialInvestment:   r.decimal("initialInvestment"),
			MonthlyContribution: r.decimal("monthlyContribution"),
			AnnualReturn:        r.decimal("annualReturn"),
			Years:               r.integer("years"),
		}
	case domain.CalcHDBUpgrade:
		in = domain.HDBUpgradeInput{
			HDBValue:          r.decimal("hdbValue"),
			OutstandingLoan:   r.decimal("outstandingLoan"),
			CPFUsed:           r.optionalDecimal("cpfUsed"),
			AccruedInterest:   r.optionalDecimal("accruedInterest"),
			TargetDownPayment: r.optionalDecimal("targetDownPayment"),
		}
	case domain.CalcAffordability:
		in = domain.AffordabilityInput{
			MonthlyIncome:        r.decimal("monthlyIncome"),
			MonthlyExpenses:      r.decimal("monthlyExpenses"),
			MonthlyDebts:         r.decimal("monthlyDebts"),
			AvailableDownPayment: r.decimal("availableDownPayment"),
			AnnualRate:           r.decimal("annualRate"),
			TenureYears:          r.integer("tenureYears"),
		}
	}
	if r.err != nil {
		return nil, r.err
	}

	if err := ip.validator.Check(in); err != nil {
		return nil, err
	}
	return in, nil
}

var (
	maxInt = decimal.NewFromInt(math.MaxInt)
	minInt = decimal.NewFromInt(math.MinInt)
)

// fieldReader converts string values, keeping the first failure.
type fieldReader struct {
	id     domain.CalculatorID
	values map[string]string
	err    error
}

func (r *fieldReader) fail(key, reason string) {
	if r.err == nil {
		r.err = domain.InvalidField(r.id, key, reason)
	}
}

func (r *fieldReader) decimal(key string) decimal.Decimal {
	v, ok := r.values[key]
	if !ok {
		return decimal.Zero
	}
	d, err := ParseAmount(v)
	if err != nil {
		r.fail(key, "must be a number")
		return decimal.Zero
	}
	return d
}

func (r *fieldReader) optionalDecimal(key string) *decimal.Decimal {
	if _, ok := r.values[key]; !ok {
		return nil
	}
	d := r.decimal(key)
	return &d
}

func (r *fieldReader) integer(key string) int {
	v, ok := r.values[key]
	if !ok {
		return 0
	}
	d, err := ParseAmount(v)
	if err != nil || !d.Equal(d.Truncate(0)) {
		r.fail(key, "must be a whole number")
		return 0
	}
	if d.GreaterThan(maxInt) || d.LessThan(minInt) {
		r.fail(key, "is out of range")
		return 0
	}
	return int(d.IntPart())
}

func (r *fieldReader) boolean(key string) bool {
	v, ok := r.values[key]
	if !ok {
		return false
	}
	b, err := ParseBool(v)
	if err != nil {
		r.fail(key, "must be true or false")
	}
	return b
}

func choice[T ~string](r *fieldReader, key string, parse func(string) (T, error)) T {
	v, ok := r.values[key]
	if !ok {
		return ""
	}
	c, err := parse(strings.ToLower(v))
	if err != nil {
		r.fail(key, err.Error())
	}
	return c
}

// ParseAmount parses a number, tolerating a leading "$" and thousands
// separators.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	return decimal.NewFromString(s)
}

// ParseBool accepts true/false, yes/no and 1/0 in any case.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1":
		return true, nil
	case "false", "no", "n", "0":
		return false, nil
	}
	return false, strconv.ErrSyntax
}
