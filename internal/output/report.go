package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport renders the report with the named formatter and writes it
// to a timestamped file in dir.
func GenerateReport(report *domain.Report, format, dir string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("unsupported format: %s", format)
	}
	return WriteFormattedIn(dir, f, report, Extension(f))
}

// JSONFormatter writes the report with raw values and their formatted text.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

// FormattedField is a field together with its display text.
type FormattedField struct {
	domain.Field
	Formatted string `json:"formatted"`
}

type jsonEntry struct {
	Calculator domain.CalculatorID  `json:"calculator"`
	Title      string               `json:"title"`
	Label      string               `json:"label,omitempty"`
	Input      domain.Input         `json:"input"`
	Result     domain.Result        `json:"result"`
	Fields     []FormattedField     `json:"fields"`
	Breakdown  []domain.BracketLine `json:"breakdown,omitempty"`
}

type jsonReport struct {
	ID          string                   `json:"id"`
	GeneratedAt time.Time                `json:"generatedAt"`
	Preparer    domain.Preparer          `json:"preparer"`
	Client      domain.Client            `json:"client"`
	Entries     []jsonEntry              `json:"entries"`
	StampDuty   *domain.StampDutySummary `json:"stampDuty,omitempty"`
	Disclaimer  []string                 `json:"disclaimer"`
}

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	out := jsonReport{
		ID:          report.ID,
		GeneratedAt: report.GeneratedAt,
		Preparer:    report.Preparer,
		Client:      report.Client,
		Entries:     make([]jsonEntry, 0, len(report.Entries)),
		Disclaimer:  Disclaimer(report.Preparer),
	}
	for _, e := range report.Entries {
		out.Entries = append(out.Entries, jsonEntry{
			Calculator: e.Calculator(),
			Title:      e.Calculator().Title(),
			Label:      e.Label,
			Input:      e.Input,
			Result:     e.Result,
			Fields:     FormatFields(e.Result.Fields()),
			Breakdown:  lines(e.Result),
		})
	}
	if s, ok := stampDutyTotal(report); ok {
		out.StampDuty = &s
	}
	return json.MarshalIndent(out, "", "  ")
}

// FormatFields pairs each field with its formatted text.
func FormatFields(fields []domain.Field) []FormattedField {
	out := make([]FormattedField, 0, len(fields))
	for _, f := range fields {
		out = append(out, FormattedField{Field: f, Formatted: FormatField(f)})
	}
	return out
}

// SaveScenario writes a scenario to a YAML file that the input parser can
// load again.
func SaveScenario(scenario *domain.Scenario, filename string) error {
	data, err := yaml.Marshal(scenario)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
