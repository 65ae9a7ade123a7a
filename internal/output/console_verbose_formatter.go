package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/sgfin/internal/domain"
)

const ruleWidth = 80

// ConsoleVerboseFormatter renders every input, result and bracket line of a
// report as plain text.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(&buf, "SINGAPORE FINANCIAL CALCULATION REPORT")
	fmt.Fprintln(&buf, strings.Repeat("=", ruleWidth))
	writeReportHeader(&buf, report)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, e := range report.Entries {
		fmt.Fprintf(&buf, "%d. %s\n", i+1, strings.ToUpper(entryTitle(e)))
		fmt.Fprintln(&buf, strings.Repeat("-", ruleWidth))

		if inputs := domain.InputFields(e.Input); len(inputs) > 0 {
			fmt.Fprintln(&buf, "INPUTS:")
			writeFields(&buf, inputs)
		}
		fmt.Fprintln(&buf, "RESULTS:")
		writeFields(&buf, e.Result.Fields())

		if ls := lines(e.Result); len(ls) > 0 {
			fmt.Fprintln(&buf, "BREAKDOWN:")
			writeBracketLines(&buf, ls)
		}
		fmt.Fprintln(&buf)
	}

	if summary, ok := stampDutyTotal(report); ok {
		fmt.Fprintln(&buf, "TOTAL STAMP DUTY")
		fmt.Fprintln(&buf, strings.Repeat("-", ruleWidth))
		fmt.Fprintf(&buf, "  %-44s %20s\n", "Buyer's Stamp Duty", FormatCurrency(summary.BSD))
		fmt.Fprintf(&buf, "  %-44s %20s\n", "Additional Buyer's Stamp Duty", FormatCurrency(summary.ABSD))
		fmt.Fprintf(&buf, "  %-44s %20s\n", "Seller's Stamp Duty", FormatCurrency(summary.SSD))
		fmt.Fprintf(&buf, "  %-44s %20s\n", "Total", FormatCurrency(summary.Total))
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, DisclaimerTitle)
	for _, line := range Disclaimer(report.Preparer) {
		fmt.Fprintf(&buf, "• %s\n", line)
	}
	return buf.Bytes(), nil
}

func writeReportHeader(buf *bytes.Buffer, report *domain.Report) {
	fmt.Fprintf(buf, "Report ID:    %s\n", report.ID)
	fmt.Fprintf(buf, "Generated:    %s\n", report.GeneratedAt.Format("02 Jan 2006 15:04"))
	if p := report.Preparer; !p.IsZero() {
		prepared := p.Name
		if p.CEANumber != "" {
			prepared += fmt.Sprintf(" (CEA %s)", p.CEANumber)
		}
		fmt.Fprintf(buf, "Prepared by:  %s\n", strings.TrimSpace(prepared))
		var contact []string
		for _, c := range []string{p.Mobile, p.Email} {
			if c != "" {
				contact = append(contact, c)
			}
		}
		if len(contact) > 0 {
			fmt.Fprintf(buf, "Contact:      %s\n", strings.Join(contact, " | "))
		}
	}
	if report.Client.Name != "" {
		fmt.Fprintf(buf, "Client:       %s\n", report.Client.Name)
	}
}

func writeFields(buf *bytes.Buffer, fields []domain.Field) {
	for _, f := range fields {
		if f.Kind == domain.KindText && len(f.Text) > 20 {
			fmt.Fprintf(buf, "  %s: %s\n", f.Label, f.Text)
			continue
		}
		fmt.Fprintf(buf, "  %-44s %20s\n", f.Label, FormatField(f))
	}
}

func writeBracketLines(buf *bytes.Buffer, ls []domain.BracketLine) {
	fmt.Fprintf(buf, "  %-16s %-16s %10s %16s\n", "From", "To", "Rate", "Tax")
	for _, l := range ls {
		fmt.Fprintf(buf, "  %-16s %-16s %10s %16s\n",
			FormatCurrency(l.From), FormatCurrency(l.To), FormatPercentage(l.Rate), FormatCurrencyCents(l.Tax))
	}
}

// stampDutyTotal sums the stamp duties of a report when it holds at least
// two of them.
func stampDutyTotal(report *domain.Report) (domain.StampDutySummary, bool) {
	var s domain.StampDutySummary
	n := 0
	for _, e := range report.Entries {
		switch r := e.Result.(type) {
		case domain.BSDResult:
			s.BSD = s.BSD.Add(r.BSD)
			n++
		case domain.ABSDResult:
			s.ABSD = s.ABSD.Add(r.ABSD)
			n++
		case domain.SSDResult:
			s.SSD = s.SSD.Add(r.SSD)
			n++
		}
	}
	s.Total = s.BSD.Add(s.ABSD).Add(s.SSD)
	return s, n > 1
}
