package rates

import (
	"math"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/shopspring/decimal"
)

// ABSDRate returns the flat ABSD rate and explanation for a buyer category.
// ok is false for categories without a rate.
func (s *Schedule) ABSDRate(c domain.BuyerCategory) (rate decimal.Decimal, explanation string, ok bool) {
	rate, ok = s.ABSD.Rates[c]
	if !ok {
		return decimal.Zero, "", false
	}
	return rate, s.ABSD.Explanations[c], true
}

// SSDRate returns the holding year a sale falls in, its SSD rate and the
// explanation. Holding periods beyond the table carry a zero rate.
// The holding year saturates at math.MaxInt32.
func (s *Schedule) SSDRate(holdingYears decimal.Decimal) (year int, rate decimal.Decimal, explanation string) {
	ceil := holdingYears.Ceil()
	for _, h := range s.SSD.ByYear {
		if ceil.Equal(decimal.NewFromInt(int64(h.Year))) {
			return h.Year, h.Rate, h.Explanation
		}
	}
	year = math.MaxInt32
	if ceil.LessThan(decimal.NewFromInt(math.MaxInt32)) {
		year = int(ceil.IntPart())
	}
	return year, decimal.Zero, s.SSD.ExemptExplanation
}

// CPFRate selects the contribution rates for an employee. Permanent residents
// use the PR tier for their year of PR status; everyone else uses the age
// band. A prYear of 0 or 1 selects the first-year tier.
func (s *Schedule) CPFRate(age int, status domain.ResidencyStatus, prYear int) (ContributionRate, string) {
	if status == domain.PermanentResident {
		if prYear <= 1 {
			return s.CPF.PRFirstYear, "pr_first_year"
		}
		return s.CPF.PRSubsequent, "pr_subsequent"
	}
	for _, b := range s.CPF.AgeBands {
		if b.Open || age < b.BelowAge {
			return b.Rates, b.Label
		}
	}
	last := s.CPF.AgeBands[len(s.CPF.AgeBands)-1]
	return last.Rates, last.Label
}

// MarginalRate returns the rate of the bracket containing amount.
func MarginalRate(amount decimal.Decimal, brackets []domain.RateBracket) decimal.Decimal {
	for _, b := range brackets {
		if b.Unbounded || amount.LessThanOrEqual(b.UpperBound) {
			return b.Rate
		}
	}
	return brackets[len(brackets)-1].Rate
}
