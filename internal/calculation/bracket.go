package calculation

import (
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// AccumulateBrackets applies a progressive marginal-rate schedule to amount.
// Each bracket taxes the part of the amount that falls inside it; brackets
// with nothing taxed are left out of the breakdown. The breakdown amounts sum
// to amount and the breakdown tax sums to the returned total.
func AccumulateBrackets(amount decimal.Decimal, brackets []domain.RateBracket) (decimal.Decimal, []domain.BracketLine) {
	total := decimal.Zero
	if !amount.IsPositive() {
		return total, nil
	}

	var lines []domain.BracketLine
	remaining := amount
	previous := decimal.Zero

	for _, b := range brackets {
		if !remaining.IsPositive() {
			break
		}

		taxed := remaining
		if !b.Unbounded {
			taxed = decimal.Min(remaining, b.UpperBound.Sub(previous))
		}

		if taxed.IsPositive() {
			tax := taxed.Mul(b.Rate)
			lines = append(lines, domain.BracketLine{
				From:   previous,
				To:     previous.Add(taxed),
				Amount: taxed,
				Rate:   b.Rate.Mul(hundred),
				Tax:    tax,
			})
			total = total.Add(tax)
			remaining = remaining.Sub(taxed)
		}

		if !b.Unbounded {
			previous = b.UpperBound
		}
	}

	return total, lines
}
