package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"time"

	"github.com/rgehrsitz/sgfin/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"cents": FormatCurrencyCents,
	"pct":   FormatPercentage,
	"date":  func(t time.Time) string { return t.Format("02 Jan 2006") },
}).Parse(htmlTemplateSource))

type htmlEntry struct {
	Title     string
	Inputs    []FormattedField
	Results   []FormattedField
	Breakdown []domain.BracketLine
}

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	entries := make([]htmlEntry, 0, len(report.Entries))
	for _, e := range report.Entries {
		entries = append(entries, htmlEntry{
			Title:     entryTitle(e),
			Inputs:    FormatFields(domain.InputFields(e.Input)),
			Results:   FormatFields(e.Result.Fields()),
			Breakdown: lines(e.Result),
		})
	}
	var stampDuty *domain.StampDutySummary
	if s, ok := stampDutyTotal(report); ok {
		stampDuty = &s
	}
	data := struct {
		*domain.Report
		Items           []htmlEntry
		StampDuty       *domain.StampDutySummary
		Assumptions     []string
		DisclaimerTitle string
		Disclaimer      []string
	}{report, entries, stampDuty, DefaultAssumptions, DisclaimerTitle, Disclaimer(report.Preparer)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
