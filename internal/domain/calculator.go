package domain

import "fmt"

// CalculatorID identifies one calculator. The set is closed.
type CalculatorID string

const (
	CalcMortgage      CalculatorID = "mortgage"
	CalcBSD           CalculatorID = "bsd"
	CalcABSD          CalculatorID = "absd"
	CalcSSD           CalculatorID = "ssd"
	CalcTDSR          CalculatorID = "tdsr"
	CalcCPF           CalculatorID = "cpf"
	CalcIncomeTax     CalculatorID = "income-tax"
	CalcCorporateTax  CalculatorID = "corporate-tax"
	CalcInvestment    CalculatorID = "investment"
	CalcHDBUpgrade    CalculatorID = "hdb-upgrade"
	CalcAffordability CalculatorID = "affordability"
)

var calculatorTitles = map[CalculatorID]string{
	CalcMortgage:      "Mortgage Calculator",
	CalcBSD:           "Buyer's Stamp Duty",
	CalcABSD:          "Additional Buyer's Stamp Duty",
	CalcSSD:           "Seller's Stamp Duty",
	CalcTDSR:          "Total Debt Servicing Ratio",
	CalcCPF:           "CPF Contributions",
	CalcIncomeTax:     "Personal Income Tax",
	CalcCorporateTax:  "Corporate Income Tax",
	CalcInvestment:    "Investment ROI",
	CalcHDBUpgrade:    "HDB Upgrader Path",
	CalcAffordability: "Property Affordability",
}

// AllCalculators returns every calculator id in display order.
func AllCalculators() []CalculatorID {
	return []CalculatorID{
		CalcMortgage,
		CalcBSD,
		CalcABSD,
		CalcSSD,
		CalcTDSR,
		CalcCPF,
		CalcIncomeTax,
		CalcCorporateTax,
		CalcInvestment,
		CalcHDBUpgrade,
		CalcAffordability,
	}
}

// ParseCalculatorID converts a string to a known CalculatorID.
func ParseCalculatorID(s string) (CalculatorID, error) {
	id := CalculatorID(s)
	if _, ok := calculatorTitles[id]; !ok {
		return "", fmt.Errorf("unknown calculator %q", s)
	}
	return id, nil
}

// Valid reports whether id is one of the known calculators.
func (id CalculatorID) Valid() bool {
	_, ok := calculatorTitles[id]
	return ok
}

// Title returns the human readable calculator name.
func (id CalculatorID) Title() string {
	if t, ok := calculatorTitles[id]; ok {
		return t
	}
	return string(id)
}

func (id CalculatorID) String() string { return string(id) }

// Input is implemented by every calculator input struct.
type Input interface {
	Calculator() CalculatorID
}

// Result is implemented by every calculator result struct. Fields returns the
// presentation schema of the result in display order.
type Result interface {
	Calculator() CalculatorID
	Fields() []Field
}

// BracketedResult is implemented by results that carry a progressive bracket
// breakdown.
type BracketedResult interface {
	Result
	Lines() []BracketLine
}
