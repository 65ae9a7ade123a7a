package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/sgfin/internal/domain"
)

// CSVSummarizer writes one row per input and result field.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Calculator", "Label", "Section", "Key", "Field", "Kind", "Value", "Formatted"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, e := range report.Entries {
		sections := []struct {
			name   string
			fields []domain.Field
		}{
			{"input", domain.InputFields(e.Input)},
			{"result", e.Result.Fields()},
		}
		for _, s := range sections {
			for _, f := range s.fields {
				row := []string{
					string(e.Calculator()),
					e.Label,
					s.name,
					f.Key,
					f.Label,
					string(f.Kind),
					rawValue(f),
					FormatField(f),
				}
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// DetailedCSVFormatter writes the progressive bracket lines of every
// bracketed result.
type DetailedCSVFormatter struct{}

func (d DetailedCSVFormatter) Name() string { return "detailed-csv" }

func (d DetailedCSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Calculator", "Label", "Bracket", "From", "To", "Amount", "RatePercent", "Tax"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, e := range report.Entries {
		for i, l := range lines(e.Result) {
			row := []string{
				string(e.Calculator()),
				e.Label,
				strconv.Itoa(i + 1),
				l.From.StringFixed(2),
				l.To.StringFixed(2),
				l.Amount.StringFixed(2),
				l.Rate.StringFixed(2),
				l.Tax.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func rawValue(f domain.Field) string {
	switch f.Kind {
	case domain.KindFlag:
		return strconv.FormatBool(f.Flag)
	case domain.KindText, domain.KindChoice:
		return f.Text
	case domain.KindCount:
		return f.Value.String()
	}
	return f.Value.StringFixed(2)
}
