package components

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/output"
	"github.com/rgehrsitz/sgfin/internal/tui/tuistyles"
)

// BracketTable renders a progressive bracket breakdown as aligned columns.
func BracketTable(lines []domain.BracketLine) string {
	if len(lines) == 0 {
		return ""
	}
	const row = "%-14s %-14s %8s %14s"

	var b strings.Builder
	b.WriteString(tuistyles.TableHeaderStyle.Render(fmt.Sprintf(row, "From", "To", "Rate", "Tax")))
	for _, l := range lines {
		b.WriteString("\n")
		b.WriteString(tuistyles.TableCellStyle.Render(fmt.Sprintf(row,
			output.FormatCurrency(l.From),
			output.FormatCurrency(l.To),
			output.FormatPercentage(l.Rate),
			output.FormatCurrencyCents(l.Tax),
		)))
	}
	return b.String()
}
