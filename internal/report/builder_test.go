package report

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/rgehrsitz/sgfin/internal/calculation"
	"github.com/rgehrsitz/sgfin/internal/config"
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder() *Builder {
	b := NewBuilder(calculation.NewCalculationEngine(), config.NewInputParser())
	b.now = func() time.Time { return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) }
	b.newID = func() string { return "SG-FIN-TEST0001" }
	return b
}

func TestNewReportID(t *testing.T) {
	re := regexp.MustCompile(`^SG-FIN-[0-9A-F]{8}$`)
	a, b := NewReportID(), NewReportID()
	assert.Regexp(t, re, a)
	assert.Regexp(t, re, b)
	assert.NotEqual(t, a, b)
}

func TestBuilder_Build(t *testing.T) {
	scenario := &domain.Scenario{
		Name:   "Condo purchase",
		Client: domain.Client{Name: "John Lim"},
		Calculations: []domain.CalculationRequest{
			{Calculator: domain.CalcBSD, Label: "Condo", Inputs: map[string]string{"propertyValue": "1,000,000"}},
			{Calculator: domain.CalcTDSR, Inputs: map[string]string{"monthlyIncome": "10000", "existingDebts": "1000", "newLoanEMI": "3000"}},
		},
	}
	profile := domain.Preparer{Name: "Jane Tan", CEANumber: "R012345A"}

	report, err := newTestBuilder().Build(scenario, profile)
	require.NoError(t, err)

	assert.Equal(t, "SG-FIN-TEST0001", report.ID)
	assert.Equal(t, 2025, report.GeneratedAt.Year())
	assert.Equal(t, profile, report.Preparer)
	assert.Equal(t, "John Lim", report.Client.Name)
	require.Len(t, report.Entries, 2)

	assert.Equal(t, "Condo", report.Entries[0].Label)
	bsd, ok := report.Entries[0].Result.(domain.BSDResult)
	require.True(t, ok)
	assert.True(t, bsd.BSD.Equal(decimal.NewFromInt(24600)), "got %s", bsd.BSD)

	tdsr, ok := report.Entries[1].Result.(domain.TDSRResult)
	require.True(t, ok)
	assert.True(t, tdsr.TDSRPercentage.Equal(decimal.NewFromInt(40)), "got %s", tdsr.TDSRPercentage)
	assert.IsType(t, domain.TDSRInput{}, report.Entries[1].Input)
}

func TestBuilder_ScenarioPreparerOverridesProfile(t *testing.T) {
	scenario := &domain.Scenario{
		Name:     "Override",
		Preparer: &domain.Preparer{Name: "Alex Koh"},
		Calculations: []domain.CalculationRequest{
			{Calculator: domain.CalcBSD, Inputs: map[string]string{"propertyValue": "500000"}},
		},
	}

	report, err := newTestBuilder().Build(scenario, domain.Preparer{Name: "Jane Tan"})
	require.NoError(t, err)
	assert.Equal(t, "Alex Koh", report.Preparer.Name)

	scenario.Preparer = &domain.Preparer{}
	report, err = newTestBuilder().Build(scenario, domain.Preparer{Name: "Jane Tan"})
	require.NoError(t, err)
	assert.Equal(t, "Jane Tan", report.Preparer.Name)
}

func TestBuilder_Errors(t *testing.T) {
	b := newTestBuilder()

	_, err := b.Build(nil, domain.Preparer{})
	assert.Error(t, err)

	_, err = b.Build(&domain.Scenario{Calculations: []domain.CalculationRequest{
		{Calculator: domain.CalcBSD, Inputs: map[string]string{"propertyValue": "500000"}},
		{Calculator: domain.CalcTDSR, Inputs: map[string]string{"monthlyIncome": "abc"}},
	}}, domain.Preparer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calculation 2 (tdsr)")
	assert.True(t, errors.Is(err, domain.ErrMissingOrInvalidField))

	_, err = b.Build(&domain.Scenario{Calculations: []domain.CalculationRequest{
		{Calculator: domain.CalcInvestment, Inputs: map[string]string{"initialInvestment": "0", "annualReturn": "5", "years": "10"}},
	}}, domain.Preparer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUndefinedComputation))
}
