package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rgehrsitz/sgfin/internal/calculation"
	"github.com/rgehrsitz/sgfin/internal/config"
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/output"
	"github.com/rgehrsitz/sgfin/internal/report"
	"github.com/rgehrsitz/sgfin/internal/store/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const condoScenario = "../testdata/condo_purchase.yaml"

// buildCondoReport loads the condo fixture and runs it through the engine.
func buildCondoReport(t *testing.T) (*domain.Scenario, *domain.Report) {
	t.Helper()
	parser := config.NewInputParser()
	scenario, err := parser.LoadFromFile(condoScenario)
	require.NoError(t, err)

	r, err := report.NewBuilder(calculation.NewCalculationEngine(), parser).Build(scenario, domain.Preparer{})
	require.NoError(t, err)
	return scenario, r
}

func amount(t *testing.T, r *domain.Report, id domain.CalculatorID, key string) decimal.Decimal {
	t.Helper()
	e, ok := r.Find(id)
	require.True(t, ok, "report should contain %s", id)
	for _, f := range e.Result.Fields() {
		if f.Key == key {
			return f.Value
		}
	}
	t.Fatalf("%s result has no field %s", id, key)
	return decimal.Zero
}

func TestIntegrationSmokeTest(t *testing.T) {
	t.Run("basic_calculation", func(t *testing.T) {
		scenario, r := buildCondoReport(t)
		assert.Len(t, r.Entries, len(scenario.Calculations))
		assert.Equal(t, "John Lim", r.Client.Name)
		assert.Equal(t, "Jane Tan", r.Preparer.Name, "the scenario preparer should be used")
		assert.Regexp(t, `^SG-FIN-[0-9A-F]{8}$`, r.ID)
	})

	t.Run("stamp_duty", func(t *testing.T) {
		_, r := buildCondoReport(t)
		assert.True(t, amount(t, r, domain.CalcBSD, "bsd").Equal(decimal.NewFromInt(44600)))
		assert.True(t, amount(t, r, domain.CalcABSD, "absd").Equal(decimal.NewFromInt(75000)))
	})

	t.Run("validation", func(t *testing.T) {
		_, r := buildCondoReport(t)
		summary := report.Validate(r)
		assert.True(t, summary.IsValid, "errors: %v", summary.Errors)
		assert.Empty(t, summary.Warnings)
		assert.Equal(t, 5, summary.ValidCalculations)
		assert.Equal(t, "ready", summary.Status())
	})
}

func TestIntegrationRegression(t *testing.T) {
	t.Run("calculation_consistency", func(t *testing.T) {
		_, first := buildCondoReport(t)
		_, second := buildCondoReport(t)

		require.Len(t, second.Entries, len(first.Entries))
		for i := range first.Entries {
			a, b := first.Entries[i].Result.Fields(), second.Entries[i].Result.Fields()
			require.Len(t, b, len(a))
			for j := range a {
				assert.Equal(t, a[j].Key, b[j].Key)
				assert.True(t, a[j].Value.Equal(b[j].Value), "%s should match across runs", a[j].Key)
			}
		}
		assert.NotEqual(t, first.ID, second.ID, "every report gets a fresh id")
	})

	t.Run("output_format_consistency", func(t *testing.T) {
		_, r := buildCondoReport(t)
		dir := t.TempDir()

		for _, format := range []string{"console", "console-lite", "json", "csv", "detailed-csv", "html", "pdf"} {
			t.Run(fmt.Sprintf("format_%s", format), func(t *testing.T) {
				path, err := output.GenerateReport(r, format, dir)
				require.NoError(t, err, "Should generate %s output", format)

				info, err := os.Stat(path)
				require.NoError(t, err)
				assert.Greater(t, info.Size(), int64(0))
			})
		}
	})
}

func TestIntegrationStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sgfin.db")
	parser := config.NewInputParser()
	scenario, err := parser.LoadFromFile(condoScenario)
	require.NoError(t, err)

	st, err := sqlite.New(dbPath)
	require.NoError(t, err)
	saved, err := st.SaveScenario(context.Background(), scenario)
	require.NoError(t, err)
	require.NoError(t, st.SaveProfile(context.Background(), domain.Preparer{Name: "Profile Agent"}))
	require.NoError(t, st.Close())

	st, err = sqlite.New(dbPath)
	require.NoError(t, err)
	defer st.Close()

	loaded, err := st.GetScenario(context.Background(), saved.ID)
	require.NoError(t, err)
	require.NoError(t, parser.ValidateConfiguration(loaded))

	profile, err := st.GetProfile(context.Background())
	require.NoError(t, err)

	r, err := report.NewBuilder(calculation.NewCalculationEngine(), parser).Build(loaded, profile)
	require.NoError(t, err)
	assert.Equal(t, "Jane Tan", r.Preparer.Name, "a scenario preparer overrides the profile")
	assert.True(t, amount(t, r, domain.CalcBSD, "bsd").Equal(decimal.NewFromInt(44600)))
}

func TestIntegrationDataValidation(t *testing.T) {
	t.Run("configuration_data_validation", func(t *testing.T) {
		parser := config.NewInputParser()
		scenario, err := parser.LoadFromFile(condoScenario)
		require.NoError(t, err)

		assert.NotEmpty(t, scenario.Name)
		assert.NotEmpty(t, scenario.Client.Name)
		for _, c := range scenario.Calculations {
			assert.True(t, c.Calculator.Valid(), "unknown calculator %s", c.Calculator)
			assert.NotEmpty(t, c.Inputs)
		}
	})

	t.Run("invalid_input_rejected", func(t *testing.T) {
		_, err := config.NewInputParser().LoadFromFile("../testdata/bad_input.yaml")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMissingOrInvalidField)
		assert.Contains(t, err.Error(), "monthlyIncome")
	})
}

func TestIntegrationBenchmarks(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping benchmarks in short mode")
	}

	t.Run("calculation_performance", func(t *testing.T) {
		start := time.Now()
		for i := 0; i < 100; i++ {
			buildCondoReport(t)
		}
		duration := time.Since(start)
		assert.Less(t, duration, 10*time.Second, "100 reports should build within 10 seconds")
		t.Logf("100 reports built in %v", duration)
	})
}
