package domain

import "github.com/shopspring/decimal"

// RateBracket is one step of a progressive schedule. UpperBound is inclusive
// and ignored when Unbounded is set. Rate is a fraction (0.03 = 3%).
type RateBracket struct {
	UpperBound decimal.Decimal `yaml:"upper_bound" json:"upper_bound"`
	Unbounded  bool            `yaml:"unbounded,omitempty" json:"unbounded,omitempty"`
	Rate       decimal.Decimal `yaml:"rate" json:"rate"`
}

// BracketLine is the portion of an amount taxed inside one bracket. Rate is
// expressed as a percentage.
type BracketLine struct {
	From   decimal.Decimal `json:"from"`
	To     decimal.Decimal `json:"to"`
	Amount decimal.Decimal `json:"amount"`
	Rate   decimal.Decimal `json:"rate"`
	Tax    decimal.Decimal `json:"tax"`
}

// SumTax returns the total tax across lines.
func SumTax(lines []BracketLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Tax)
	}
	return total
}
