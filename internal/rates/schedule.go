package rates

import (
	"fmt"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/shopspring/decimal"
)

// Schedule holds every regulatory constant used by the calculators. A
// schedule is built once per release and never mutated afterwards.
type Schedule struct {
	Year         int                  `yaml:"year" json:"year"`
	BSD          []domain.RateBracket `yaml:"bsd_brackets" json:"bsd_brackets"`
	ABSD         ABSDRules            `yaml:"absd" json:"absd"`
	SSD          SSDRules             `yaml:"ssd" json:"ssd"`
	CPF          CPFRules             `yaml:"cpf" json:"cpf"`
	IncomeTax    IncomeTaxRules       `yaml:"income_tax" json:"income_tax"`
	CorporateTax CorporateTaxRules    `yaml:"corporate_tax" json:"corporate_tax"`
	TDSRLimit    decimal.Decimal      `yaml:"tdsr_limit" json:"tdsr_limit"` // percent of gross monthly income
}

// ABSDRules holds the flat ABSD rate per buyer category.
type ABSDRules struct {
	Rates        map[domain.BuyerCategory]decimal.Decimal `yaml:"rates" json:"rates"`
	Explanations map[domain.BuyerCategory]string          `yaml:"explanations" json:"explanations"`
}

// HoldingRate is the SSD rate for a sale within the given holding year.
type HoldingRate struct {
	Year        int             `yaml:"year" json:"year"`
	Rate        decimal.Decimal `yaml:"rate" json:"rate"`
	Explanation string          `yaml:"explanation" json:"explanation"`
}

// SSDRules lists holding-year rates, ascending from year 1.
type SSDRules struct {
	ByYear            []HoldingRate `yaml:"by_year" json:"by_year"`
	ExemptExplanation string        `yaml:"exempt_explanation" json:"exempt_explanation"`
}

// ContributionRate is an employee/employer pair of CPF rates.
type ContributionRate struct {
	Employee decimal.Decimal `yaml:"employee" json:"employee"`
	Employer decimal.Decimal `yaml:"employer" json:"employer"`
}

// AgeBand applies to ages strictly below BelowAge; the last band is open.
type AgeBand struct {
	Label    string           `yaml:"label" json:"label"`
	BelowAge int              `yaml:"below_age,omitempty" json:"below_age,omitempty"`
	Open     bool             `yaml:"open,omitempty" json:"open,omitempty"`
	Rates    ContributionRate `yaml:"rates" json:"rates"`
}

// CPFRules holds the ordinary wage ceiling and contribution tables.
type CPFRules struct {
	MonthlyCeiling decimal.Decimal  `yaml:"monthly_ceiling" json:"monthly_ceiling"`
	AgeBands       []AgeBand        `yaml:"age_bands" json:"age_bands"`
	PRFirstYear    ContributionRate `yaml:"pr_first_year" json:"pr_first_year"`
	PRSubsequent   ContributionRate `yaml:"pr_subsequent" json:"pr_subsequent"`
}

// IncomeTaxRules holds the resident progressive table and the non-resident
// flat rate.
type IncomeTaxRules struct {
	Brackets        []domain.RateBracket `yaml:"brackets" json:"brackets"`
	NonResidentRate decimal.Decimal      `yaml:"non_resident_rate" json:"non_resident_rate"`
	RebateRate      decimal.Decimal      `yaml:"rebate_rate" json:"rebate_rate"`
	RebateCap       decimal.Decimal      `yaml:"rebate_cap" json:"rebate_cap"`
}

// ExemptionTier exempts Rate of the next Span of taxable income.
type ExemptionTier struct {
	Span decimal.Decimal `yaml:"span" json:"span"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// CorporateTaxRules holds the headline rate, exemption schemes and rebate.
type CorporateTaxRules struct {
	StandardRate decimal.Decimal                        `yaml:"standard_rate" json:"standard_rate"`
	Exemptions   map[domain.CompanyType][]ExemptionTier `yaml:"exemptions" json:"exemptions"`
	RebateRate   decimal.Decimal                        `yaml:"rebate_rate" json:"rebate_rate"`
	RebateCap    decimal.Decimal                        `yaml:"rebate_cap" json:"rebate_cap"`
}

func pct(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func bound(n int64, rate string) domain.RateBracket {
	return domain.RateBracket{UpperBound: decimal.NewFromInt(n), Rate: pct(rate)}
}

func open(rate string) domain.RateBracket {
	return domain.RateBracket{Unbounded: true, Rate: pct(rate)}
}

// Singapore2025 returns the 2025 rate schedule.
func Singapore2025() *Schedule {
	return &Schedule{
		Year: 2025,
		BSD: []domain.RateBracket{
			bound(180000, "0.01"),
			bound(360000, "0.02"),
			bound(1000000, "0.03"),
			bound(1500000, "0.04"),
			bound(3000000, "0.05"),
			open("0.06"),
		},
		ABSD: ABSDRules{
			Rates: map[domain.BuyerCategory]decimal.Decimal{
				domain.CitizenFirst:   decimal.Zero,
				domain.CitizenSecond:  pct("0.20"),
				domain.CitizenThird:   pct("0.30"),
				domain.PRFirst:        pct("0.05"),
				domain.PRSubsequent:   pct("0.30"),
				domain.ForeignerBuyer: pct("0.60"),
			},
			Explanations: map[domain.BuyerCategory]string{
				domain.CitizenFirst:   "No ABSD for Singapore citizens buying their first property",
				domain.CitizenSecond:  "20% ABSD for Singapore citizens buying their second property",
				domain.CitizenThird:   "30% ABSD for Singapore citizens buying their third or subsequent property",
				domain.PRFirst:        "5% ABSD for PRs buying their first property",
				domain.PRSubsequent:   "30% ABSD for PRs buying their second or subsequent property",
				domain.ForeignerBuyer: "60% ABSD for foreigners buying any property in Singapore",
			},
		},
		SSD: SSDRules{
			ByYear: []HoldingRate{
				{Year: 1, Rate: pct("0.20"), Explanation: "20% SSD for properties sold within the first year"},
				{Year: 2, Rate: pct("0.15"), Explanation: "15% SSD for properties sold in the second year"},
				{Year: 3, Rate: pct("0.10"), Explanation: "10% SSD for properties sold in the third year"},
				{Year: 4, Rate: pct("0.05"), Explanation: "5% SSD for properties sold in the fourth year"},
			},
			ExemptExplanation: "No SSD for properties held for more than 4 years",
		},
		CPF: CPFRules{
			MonthlyCeiling: decimal.NewFromInt(7400),
			AgeBands: []AgeBand{
				{Label: "under_55", BelowAge: 55, Rates: ContributionRate{Employee: pct("0.20"), Employer: pct("0.17")}},
				{Label: "55_to_60", BelowAge: 60, Rates: ContributionRate{Employee: pct("0.13"), Employer: pct("0.13")}},
				{Label: "60_to_65", BelowAge: 65, Rates: ContributionRate{Employee: pct("0.075"), Employer: pct("0.075")}},
				{Label: "over_65", Open: true, Rates: ContributionRate{Employee: pct("0.05"), Employer: pct("0.075")}},
			},
			PRFirstYear:  ContributionRate{Employee: pct("0.05"), Employer: pct("0.17")},
			PRSubsequent: ContributionRate{Employee: pct("0.15"), Employer: pct("0.17")},
		},
		IncomeTax: IncomeTaxRules{
			Brackets: []domain.RateBracket{
				bound(20000, "0"),
				bound(30000, "0.02"),
				bound(40000, "0.035"),
				bound(80000, "0.07"),
				bound(120000, "0.115"),
				bound(160000, "0.15"),
				bound(200000, "0.18"),
				bound(240000, "0.19"),
				bound(280000, "0.195"),
				bound(320000, "0.20"),
				bound(500000, "0.22"),
				bound(1000000, "0.23"),
				open("0.24"),
			},
			NonResidentRate: pct("0.15"),
			RebateRate:      pct("0.5"),
			RebateCap:       decimal.NewFromInt(200),
		},
		CorporateTax: CorporateTaxRules{
			StandardRate: pct("0.17"),
			Exemptions: map[domain.CompanyType][]ExemptionTier{
				domain.CompanyStartup: {
					{Span: decimal.NewFromInt(100000), Rate: pct("1")},
					{Span: decimal.NewFromInt(25000), Rate: pct("0.75")},
				},
				domain.CompanySME: {
					{Span: decimal.NewFromInt(10000), Rate: pct("0.75")},
					{Span: decimal.NewFromInt(190000), Rate: pct("0.05")},
				},
				domain.CompanyRegular: nil,
			},
			RebateRate: pct("0.5"),
			RebateCap:  decimal.NewFromInt(20000),
		},
		TDSRLimit: decimal.NewFromInt(55),
	}
}

// Validate checks the structural invariants of every table in the schedule.
func (s *Schedule) Validate() error {
	if err := ValidateBrackets(s.BSD); err != nil {
		return fmt.Errorf("bsd brackets: %w", err)
	}
	if err := ValidateBrackets(s.IncomeTax.Brackets); err != nil {
		return fmt.Errorf("income tax brackets: %w", err)
	}
	for _, c := range domain.BuyerCategories() {
		r, ok := s.ABSD.Rates[c]
		if !ok {
			return fmt.Errorf("absd: no rate for %s", c)
		}
		if !isFraction(r) {
			return fmt.Errorf("absd: rate for %s out of range: %s", c, r)
		}
	}
	for i, h := range s.SSD.ByYear {
		if h.Year != i+1 {
			return fmt.Errorf("ssd: holding years must start at 1 and be consecutive, got %d at position %d", h.Year, i)
		}
		if !isFraction(h.Rate) {
			return fmt.Errorf("ssd: rate for year %d out of range: %s", h.Year, h.Rate)
		}
	}
	if !s.CPF.MonthlyCeiling.IsPositive() {
		return fmt.Errorf("cpf: monthly ceiling must be positive")
	}
	if n := len(s.CPF.AgeBands); n == 0 || !s.CPF.AgeBands[n-1].Open {
		return fmt.Errorf("cpf: last age band must be open")
	}
	prev := 0
	for _, b := range s.CPF.AgeBands[:len(s.CPF.AgeBands)-1] {
		if b.Open || b.BelowAge <= prev {
			return fmt.Errorf("cpf: age bands must ascend, got %s below %d", b.Label, b.BelowAge)
		}
		prev = b.BelowAge
	}
	for _, t := range domain.CompanyTypes() {
		if _, ok := s.CorporateTax.Exemptions[t]; !ok {
			return fmt.Errorf("corporate tax: no exemption scheme for %s", t)
		}
	}
	if !s.TDSRLimit.IsPositive() {
		return fmt.Errorf("tdsr limit must be positive")
	}
	return nil
}

// ValidateBrackets checks that brackets ascend strictly, that only the last
// is unbounded and that every rate is a fraction in [0, 1].
func ValidateBrackets(brackets []domain.RateBracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("no brackets")
	}
	prev := decimal.Zero
	for i, b := range brackets {
		last := i == len(brackets)-1
		if b.Unbounded != last {
			if last {
				return fmt.Errorf("last bracket must be unbounded")
			}
			return fmt.Errorf("bracket %d is unbounded but not last", i)
		}
		if !isFraction(b.Rate) {
			return fmt.Errorf("bracket %d rate out of range: %s", i, b.Rate)
		}
		if last {
			break
		}
		if b.UpperBound.LessThanOrEqual(prev) {
			return fmt.Errorf("bracket %d upper bound %s does not exceed %s", i, b.UpperBound, prev)
		}
		prev = b.UpperBound
	}
	return nil
}

func isFraction(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}
