package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validScenarioYAML = `
name: "First home"
client:
  name: "John Lim"
preparer:
  name: "Jane Tan"
  cea_number: "R012345A"
calculations:
  - calculator: bsd
    label: Condo
    inputs:
      propertyValue: 1000000
  - calculator: absd
    inputs:
      propertyValue: "1,000,000"
      buyerCategory: Citizen_Second
  - calculator: income-tax
    inputs:
      annualIncome: 120000
      isResident: yes
`

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser, "Should create input parser")
	assert.NotNil(t, parser.Validator())
}

func TestInputParser_LoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()

	scenario, err := parser.LoadFromFile("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, scenario, "Should return nil scenario")
	assert.Contains(t, err.Error(), "failed to read file", "Should have specific error message")
}

func TestInputParser_LoadFromFile_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.yaml")

	err := os.WriteFile(invalidFile, []byte("invalid: yaml: content: [unclosed"), 0644)
	require.NoError(t, err)

	parser := NewInputParser()
	scenario, err := parser.LoadFromFile(invalidFile)

	assert.Error(t, err, "Should error for invalid YAML")
	assert.Nil(t, scenario, "Should return nil scenario")
	assert.Contains(t, err.Error(), "failed to parse YAML", "Should have specific error message")
}

func TestInputParser_LoadFromFile_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	validFile := filepath.Join(tmpDir, "valid.yaml")
	require.NoError(t, os.WriteFile(validFile, []byte(validScenarioYAML), 0644))

	parser := NewInputParser()
	scenario, err := parser.LoadFromFile(validFile)
	require.NoError(t, err)

	assert.Equal(t, "First home", scenario.Name)
	assert.Equal(t, "John Lim", scenario.Client.Name)
	require.NotNil(t, scenario.Preparer)
	assert.Equal(t, "R012345A", scenario.Preparer.CEANumber)
	require.Len(t, scenario.Calculations, 3)
	assert.Equal(t, domain.CalcBSD, scenario.Calculations[0].Calculator)
	assert.Equal(t, "Condo", scenario.Calculations[0].Label)
	assert.Equal(t, "1000000", scenario.Calculations[0].Inputs["propertyValue"])
	assert.Equal(t, "yes", scenario.Calculations[2].Inputs["isResident"])
}

func TestInputParser_ValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name     string
		scenario *domain.Scenario
		want     string
	}{
		{"nil scenario", nil, "scenario is required"},
		{"no calculations", &domain.Scenario{Name: "empty"}, "no calculations provided"},
		{
			"unknown calculator",
			&domain.Scenario{Calculations: []domain.CalculationRequest{{Calculator: "lottery"}}},
			"calculation 1 validation failed: lottery: unknown calculator",
		},
		{
			"bad second calculation",
			&domain.Scenario{Calculations: []domain.CalculationRequest{
				{Calculator: domain.CalcBSD, Inputs: map[string]string{"propertyValue": "500000"}},
				{Calculator: domain.CalcCPF, Inputs: map[string]string{"monthlySalary": "5000", "age": "12"}},
			}},
			"calculation 2 validation failed: cpf: age",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidateConfiguration(tt.scenario)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseCalculatorInput(t *testing.T) {
	parser := NewInputParser()
	pv := decimal.NewFromInt(1000000)

	tests := []struct {
		name   string
		id     domain.CalculatorID
		values map[string]string
		want   domain.Input
	}{
		{
			"mortgage with property value",
			domain.CalcMortgage,
			map[string]string{"principal": "750,000", "annualRate": "3.5", "tenureYears": "30", "propertyValue": "$1,000,000"},
			domain.MortgageInput{Principal: decimal.NewFromInt(750000), AnnualRate: decimal.RequireFromString("3.5"), TenureYears: 30, PropertyValue: &pv},
		},
		{
			"tdsr defaults",
			domain.CalcTDSR,
			map[string]string{"monthlyIncome": "10000", "existingDebts": " "},
			domain.TDSRInput{MonthlyIncome: decimal.NewFromInt(10000), ExistingDebts: decimal.Zero, NewLoanEMI: decimal.Zero},
		},
		{
			"cpf defaults to citizen",
			domain.CalcCPF,
			map[string]string{"monthlySalary": "6000", "age": "40"},
			domain.CPFInput{MonthlySalary: decimal.NewFromInt(6000), Age: 40, ResidencyStatus: domain.Citizen, PRYear: 1},
		},
		{
			"income tax non-resident",
			domain.CalcIncomeTax,
			map[string]string{"annualIncome": "80000", "isResident": "No"},
			domain.IncomeTaxInput{AnnualIncome: decimal.NewFromInt(80000), IsResident: false},
		},
		{
			"corporate tax default company type",
			domain.CalcCorporateTax,
			map[string]string{"taxableIncome": "500000"},
			domain.CorporateTaxInput{TaxableIncome: decimal.NewFromInt(500000), CompanyType: domain.CompanyRegular},
		},
		{
			"absd category is case insensitive",
			domain.CalcABSD,
			map[string]string{"propertyValue": "1000000", "buyerCategory": "Foreigner"},
			domain.ABSDInput{PropertyValue: pv, BuyerCategory: domain.ForeignerBuyer},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseCalculatorInput(tt.id, tt.values)
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)

			want, err := json.Marshal(tt.want)
			require.NoError(t, err)
			have, err := json.Marshal(got)
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(have))
		})
	}
}

func TestParseCalculatorInput_Errors(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name   string
		id     domain.CalculatorID
		values map[string]string
		field  string
		reason string
	}{
		{"missing required", domain.CalcBSD, map[string]string{}, "propertyValue", "is required"},
		{"not a number", domain.CalcBSD, map[string]string{"propertyValue": "lots"}, "propertyValue", "must be a number"},
		{"fractional tenure", domain.CalcMortgage, map[string]string{"principal": "500000", "annualRate": "3", "tenureYears": "25.5"}, "tenureYears", "must be a whole number"},
		{"tenure beyond int", domain.CalcMortgage, map[string]string{"principal": "500000", "annualRate": "3", "tenureYears": "18446744073709551641"}, "tenureYears", "is out of range"},
		{"bad flag", domain.CalcIncomeTax, map[string]string{"annualIncome": "50000", "isResident": "maybe"}, "isResident", "must be true or false"},
		{"unknown category", domain.CalcABSD, map[string]string{"propertyValue": "1000000", "buyerCategory": "martian"}, "buyerCategory", "unknown buyer category"},
		{"unknown field", domain.CalcBSD, map[string]string{"propertyValue": "1", "discount": "5"}, "discount", "unknown field"},
		{"out of range", domain.CalcMortgage, map[string]string{"principal": "500000", "annualRate": "25", "tenureYears": "25"}, "annualRate", "must be within [0, 20]"},
		{"negative optional", domain.CalcHDBUpgrade, map[string]string{"hdbValue": "500000", "outstandingLoan": "100000", "cpfUsed": "-1"}, "cpfUsed", "must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseCalculatorInput(tt.id, tt.values)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, domain.ErrMissingOrInvalidField))

			ce, ok := domain.AsCalculationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, ce.Field)
			assert.Contains(t, ce.Reason, tt.reason)
		})
	}

	_, err := parser.ParseCalculatorInput("lottery", nil)
	assert.ErrorContains(t, err, "unknown calculator")
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"true", "TRUE", "yes", "Y", "1"} {
		b, err := ParseBool(s)
		assert.NoError(t, err, s)
		assert.True(t, b, s)
	}
	for _, s := range []string{"false", "no", "N", "0"} {
		b, err := ParseBool(s)
		assert.NoError(t, err, s)
		assert.False(t, b, s)
	}
	_, err := ParseBool("sometimes")
	assert.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount(" $1,234,567.50 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1234567.5")))

	_, err = ParseAmount("")
	assert.Error(t, err)
}
