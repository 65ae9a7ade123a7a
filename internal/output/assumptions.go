package output

import (
	"strings"

	"github.com/rgehrsitz/sgfin/internal/domain"
)

// DefaultAssumptions lists the rate basis rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Stamp duty, CPF and tax rates: Singapore schedules effective 2025",
	"CPF contributions capped at the $7,400 monthly Ordinary Wage ceiling",
	"Mortgage and affordability figures assume monthly compounding at a fixed rate",
	"TDSR limit: 55% of gross monthly income",
	"Investment projections assume a constant annual return compounded monthly",
}

// DisclaimerTitle heads the disclaimer block of every report.
const DisclaimerTitle = "PROFESSIONAL DISCLAIMER"

// Disclaimer returns the disclaimer lines for a report. The first line names
// the preparer when one is known.
func Disclaimer(p domain.Preparer) []string {
	var b strings.Builder
	b.WriteString("This report is prepared by a licensed property salesperson")
	if p.Name != "" {
		b.WriteString(" " + p.Name)
	}
	if p.CEANumber != "" {
		b.WriteString(" (CEA: " + p.CEANumber + ")")
	}
	if p.Mobile != "" {
		b.WriteString(", Contact: " + p.Mobile)
	}
	if p.Email != "" {
		b.WriteString(", Email: " + p.Email)
	}
	b.WriteString(" for informational purposes only.")

	return []string{
		b.String(),
		"All calculations are estimates based on current Singapore regulations and should be verified with the relevant authorities.",
		"This report does not constitute financial advice. Clients should consult qualified professionals before acting on it.",
	}
}
