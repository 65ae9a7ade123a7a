package validation

import (
	"errors"
	"testing"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		domain string
		value  string
		valid  bool
	}{
		{"propertyPrice", "0", false},
		{"propertyPrice", "1", true},
		{"propertyPrice", "49999999", true},
		{"propertyPrice", "50000000", false},
		{"interestRate", "0", true},
		{"interestRate", "20", true},
		{"interestRate", "20.01", false},
		{"interestRate", "-0.1", false},
		{"income", "0", false},
		{"income", "999999", true},
		{"income", "1000000", false},
		{"age", "15", false},
		{"age", "16", true},
		{"age", "100", true},
		{"age", "101", false},
		{"tenure", "0", false},
		{"tenure", "35", true},
		{"tenure", "36", false},
		{"loanAmount", "9999999", true},
		{"loanAmount", "10000000", false},
	}

	for _, tt := range tests {
		t.Run(tt.domain+"="+tt.value, func(t *testing.T) {
			out := reg.Validate(tt.domain, decimal.RequireFromString(tt.value))
			assert.Equal(t, tt.valid, out.Valid)
			assert.Equal(t, tt.domain, out.Field)
			if !tt.valid {
				assert.NotEmpty(t, out.Reason)
			}
		})
	}
}

func TestRegistry_RegisterAndUnknown(t *testing.T) {
	reg := DefaultRegistry()
	assert.Equal(t, []string{"age", "income", "interestRate", "loanAmount", "propertyPrice", "tenure"}, reg.Names())

	out := reg.Validate("holdingPeriod", decimal.NewFromInt(-3))
	assert.True(t, out.Valid, "unregistered domains are not checked")
	assert.False(t, reg.Has("holdingPeriod"))

	reg.Register("holdingPeriod", Rule{Min: decimal.Zero, Max: decimal.NewFromInt(4), MaxInclusive: true})
	assert.True(t, reg.Has("holdingPeriod"))
	out = reg.Validate("holdingPeriod", decimal.NewFromInt(5))
	assert.False(t, out.Valid)
	assert.Contains(t, out.Reason, "(0, 4]")
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, "[16, 100]", Rule{Min: decimal.NewFromInt(16), Max: decimal.NewFromInt(100), MinInclusive: true, MaxInclusive: true}.String())
	assert.Equal(t, "(0, 50000000)", Rule{Min: decimal.Zero, Max: decimal.NewFromInt(50000000)}.String())
}

func TestValidator_Struct(t *testing.T) {
	v := New(nil)

	t.Run("valid mortgage", func(t *testing.T) {
		pv := decimal.NewFromInt(1000000)
		in := domain.MortgageInput{
			Principal:     decimal.NewFromInt(750000),
			AnnualRate:    decimal.NewFromFloat(3.5),
			TenureYears:   30,
			PropertyValue: &pv,
		}
		assert.Empty(t, v.Struct(in))
		assert.NoError(t, v.Check(in))
	})

	t.Run("out of range tenure", func(t *testing.T) {
		in := domain.MortgageInput{
			Principal:   decimal.NewFromInt(750000),
			AnnualRate:  decimal.NewFromFloat(3.5),
			TenureYears: 40,
		}
		outcomes := v.Struct(in)
		require.Len(t, outcomes, 1)
		assert.Equal(t, "tenureYears", outcomes[0].Field)
		assert.Equal(t, "must be within (0, 35]", outcomes[0].Reason)

		err := v.Check(in)
		assert.True(t, errors.Is(err, domain.ErrMissingOrInvalidField))
		assert.Contains(t, err.Error(), "mortgage: tenureYears")
	})

	t.Run("optional field skipped when absent", func(t *testing.T) {
		in := domain.CPFInput{
			MonthlySalary:   decimal.NewFromInt(5000),
			Age:             35,
			ResidencyStatus: domain.Citizen,
		}
		assert.Empty(t, v.Struct(in))
	})

	t.Run("several failures", func(t *testing.T) {
		in := domain.CPFInput{
			MonthlySalary:   decimal.Zero,
			Age:             12,
			ResidencyStatus: "tourist",
		}
		outcomes := v.Struct(in)
		fields := make([]string, 0, len(outcomes))
		for _, o := range outcomes {
			assert.False(t, o.Valid)
			fields = append(fields, o.Field)
		}
		assert.ElementsMatch(t, []string{"monthlySalary", "age", "residencyStatus"}, fields)
	})

	t.Run("enum checked", func(t *testing.T) {
		in := domain.ABSDInput{PropertyValue: decimal.NewFromInt(1000000), BuyerCategory: "martian"}
		outcomes := v.Struct(in)
		require.Len(t, outcomes, 1)
		assert.Equal(t, "buyerCategory", outcomes[0].Field)
		assert.Contains(t, outcomes[0].Reason, "must be one of citizen_first, citizen_second")
	})

	t.Run("negative optional amount", func(t *testing.T) {
		neg := decimal.NewFromInt(-1)
		in := domain.HDBUpgradeInput{HDBValue: decimal.NewFromInt(500000), CPFUsed: &neg}
		outcomes := v.Struct(in)
		require.Len(t, outcomes, 1)
		assert.Equal(t, "cpfUsed", outcomes[0].Field)
		assert.Equal(t, "must be at least 0", outcomes[0].Reason)
	})
}
