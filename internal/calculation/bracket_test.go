package calculation

import (
	"testing"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/rates"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAccumulateBrackets_BSD(t *testing.T) {
	table := rates.Singapore2025().BSD

	tests := []struct {
		name      string
		amount    decimal.Decimal
		wantTotal decimal.Decimal
		wantLines int
	}{
		{"zero", decimal.Zero, decimal.Zero, 0},
		{"negative", dec("-100"), decimal.Zero, 0},
		{"first bracket", dec("100000"), dec("1000"), 1},
		{"first bracket boundary", dec("180000"), dec("1800"), 1},
		{"one million", dec("1000000"), dec("24600"), 3},
		{"above all finite bounds", dec("3500000"), dec("149600"), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, lines := AccumulateBrackets(tt.amount, table)
			assert.True(t, total.Equal(tt.wantTotal), "total %s, want %s", total, tt.wantTotal)
			assert.Len(t, lines, tt.wantLines)
			assert.True(t, domain.SumTax(lines).Equal(total), "breakdown tax must sum to total")
		})
	}
}

func TestAccumulateBrackets_Breakdown(t *testing.T) {
	total, lines := AccumulateBrackets(dec("1000000"), rates.Singapore2025().BSD)
	require.Len(t, lines, 3)
	assert.True(t, total.Equal(dec("24600")))

	want := []struct{ from, to, amount, rate, tax string }{
		{"0", "180000", "180000", "1", "1800"},
		{"180000", "360000", "180000", "2", "3600"},
		{"360000", "1000000", "640000", "3", "19200"},
	}
	for i, w := range want {
		assert.True(t, lines[i].From.Equal(dec(w.from)), "line %d from", i)
		assert.True(t, lines[i].To.Equal(dec(w.to)), "line %d to", i)
		assert.True(t, lines[i].Amount.Equal(dec(w.amount)), "line %d amount", i)
		assert.True(t, lines[i].Rate.Equal(dec(w.rate)), "line %d rate", i)
		assert.True(t, lines[i].Tax.Equal(dec(w.tax)), "line %d tax", i)
	}
}

func TestAccumulateBrackets_MonotonicAndSpansCoverAmount(t *testing.T) {
	table := rates.Singapore2025().BSD
	previous := decimal.Zero
	step := dec("25000")

	for v := decimal.Zero; v.LessThanOrEqual(dec("4000000")); v = v.Add(step) {
		total, lines := AccumulateBrackets(v, table)
		assert.True(t, total.GreaterThanOrEqual(previous), "tax decreased at %s", v)
		previous = total

		spans := decimal.Zero
		for _, l := range lines {
			spans = spans.Add(l.Amount)
		}
		assert.True(t, spans.Equal(v), "spans %s do not cover %s", spans, v)
	}
}

func TestAccumulateBrackets_ZeroRateBracketKeepsSpan(t *testing.T) {
	total, lines := AccumulateBrackets(dec("25000"), rates.Singapore2025().IncomeTax.Brackets)
	require.Len(t, lines, 2)
	assert.True(t, lines[0].Tax.IsZero())
	assert.True(t, lines[0].Amount.Equal(dec("20000")))
	assert.True(t, total.Equal(dec("100")))
}
