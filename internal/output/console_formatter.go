package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/sgfin/internal/domain"
)

// ConsoleFormatter prints one headline figure per calculation.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "CALCULATION SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("=", 19))
	if report.Client.Name != "" {
		fmt.Fprintf(&buf, "Client: %s\n", report.Client.Name)
	}
	if len(report.Entries) == 0 {
		fmt.Fprintln(&buf, "No calculations.")
		return buf.Bytes(), nil
	}
	for _, e := range report.Entries {
		h, ok := Headline(e.Result)
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, "%-48s %s: %s\n", entryTitle(e), h.Label, FormatField(h))
	}
	if s, ok := stampDutyTotal(report); ok {
		fmt.Fprintf(&buf, "%-48s %s\n", "Total Stamp Duty", FormatCurrency(s.Total))
	}
	return buf.Bytes(), nil
}
