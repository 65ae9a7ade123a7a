package output

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount as whole Singapore dollars with thousands
// separators, e.g. "$1,234,568" or "-$500".
func FormatCurrency(amount decimal.Decimal) string {
	amount = amount.Round(0)
	if amount.IsNegative() {
		return "-$" + group(amount.Neg(), 0)
	}
	return "$" + group(amount, 0)
}

// FormatCurrencyCents is FormatCurrency with two decimal places.
func FormatCurrencyCents(amount decimal.Decimal) string {
	amount = amount.Round(2)
	if amount.IsNegative() {
		return "-$" + group(amount.Neg(), 2)
	}
	return "$" + group(amount, 2)
}

// FormatPercentage renders a value already expressed in percent.
func FormatPercentage(pct decimal.Decimal) string {
	return pct.StringFixed(2) + "%"
}

// FormatNumber renders a plain number with thousands separators and two
// decimal places.
func FormatNumber(n decimal.Decimal) string {
	n = n.Round(2)
	if n.IsNegative() {
		return "-" + group(n.Neg(), 2)
	}
	return group(n, 2)
}

// FormatField renders a field according to its kind.
func FormatField(f domain.Field) string {
	switch f.Kind {
	case domain.KindCurrency:
		return FormatCurrency(f.Value)
	case domain.KindPercentage:
		return FormatPercentage(f.Value)
	case domain.KindNumber:
		return FormatNumber(f.Value)
	case domain.KindCount:
		return humanize.BigComma(f.Value.BigInt())
	case domain.KindFlag:
		if f.Flag {
			return "Yes"
		}
		return "No"
	default:
		return f.Text
	}
}

// group formats a non-negative amount rounded to places.
func group(d decimal.Decimal, places int32) string {
	d = d.Round(places)
	s := humanize.BigComma(d.BigInt())
	if places > 0 {
		fixed := d.StringFixed(places)
		s += fixed[strings.IndexByte(fixed, '.'):]
	}
	return s
}

// headlineKeys names the one result field that summarises each calculator.
var headlineKeys = map[domain.CalculatorID]string{
	domain.CalcMortgage:      "monthlyPayment",
	domain.CalcBSD:           "bsd",
	domain.CalcABSD:          "absd",
	domain.CalcSSD:           "ssd",
	domain.CalcTDSR:          "tdsrPercentage",
	domain.CalcCPF:           "totalContribution",
	domain.CalcIncomeTax:     "taxPayable",
	domain.CalcCorporateTax:  "taxPayable",
	domain.CalcInvestment:    "totalValue",
	domain.CalcHDBUpgrade:    "availableForUpgrade",
	domain.CalcAffordability: "maxPropertyValue",
}

// Headline returns the summary field of a result.
func Headline(r domain.Result) (domain.Field, bool) {
	key, ok := headlineKeys[r.Calculator()]
	if !ok {
		return domain.Field{}, false
	}
	return domain.FieldByKey(r, key)
}

func entryTitle(e domain.ReportEntry) string {
	title := e.Calculator().Title()
	if e.Label != "" {
		title += " - " + e.Label
	}
	return title
}

func lines(r domain.Result) []domain.BracketLine {
	if br, ok := r.(domain.BracketedResult); ok {
		return br.Lines()
	}
	return nil
}
