package compare

import (
	"strings"
	"testing"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/shopspring/decimal"
)

func sampleSet() *ComparisonSet {
	return &ComparisonSet{
		BaseScenarioName: "Base",
		BaseResult: &ComparisonResult{
			ScenarioName:   "Base",
			Report:         &domain.Report{ID: "SG-FIN-AAAA0001"},
			StampDuty:      decimal.NewFromInt(224600),
			DownPayment:    decimal.NewFromInt(250000),
			UpfrontCost:    decimal.NewFromInt(474600),
			MonthlyPayment: decimal.NewFromInt(3755),
			TDSR:           decimal.NewFromInt(60),
			HasTDSR:        true,
		},
		AlternativeResults: []ComparisonResult{
			{
				ScenarioName:            "Smaller unit",
				Description:             "Two-bedroom instead of three",
				Report:                  &domain.Report{ID: "SG-FIN-AAAA0002"},
				StampDuty:               decimal.NewFromInt(178600),
				DownPayment:             decimal.NewFromInt(50000),
				UpfrontCost:             decimal.NewFromInt(228600),
				MonthlyPayment:          decimal.NewFromInt(3755),
				StampDutyDiffFromBase:   decimal.NewFromInt(-46000),
				UpfrontCostDiffFromBase: decimal.NewFromInt(-246000),
			},
		},
		Recommendations: []string{
			"Lowest Upfront Cost: Smaller unit needs $246,000 less cash upfront than the base scenario",
		},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{}
	result := formatter.Format(sampleSet())

	for _, want := range []string{
		"PROPERTY SCENARIO COMPARISON",
		"Base Scenario: Base",
		"Base (base)",
		"Smaller unit",
		"Two-bedroom instead of three",
		"$224,600",
		"60.00%",
		"Stamp Duty:       -$46,000",
		"Upfront Cost:     -$246,000",
		"RECOMMENDATIONS",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected %q in output:\n%s", want, result)
		}
	}
	if strings.Contains(result, "Monthly Payment:") {
		t.Error("Unchanged monthly payment should not be listed")
	}
}

func TestTableFormatter_Format_EmptyAlternatives(t *testing.T) {
	formatter := &TableFormatter{}
	set := sampleSet()
	set.AlternativeResults = nil
	set.Recommendations = nil

	result := formatter.Format(set)
	if strings.Contains(result, "COMPARISON TO BASE") {
		t.Error("Should not show comparison section without alternatives")
	}
	if strings.Contains(result, "RECOMMENDATIONS") {
		t.Error("Should not show recommendations section when empty")
	}
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	formatter := &TableFormatter{}
	result := formatter.FormatCompact(sampleSet())
	if result != "Base: Base | Smaller unit: -$246,000" {
		t.Errorf("Unexpected compact output: %q", result)
	}
}

func TestTableFormatter_Truncate(t *testing.T) {
	formatter := &TableFormatter{}
	if got := formatter.truncate("short", 10); got != "short" {
		t.Errorf("Expected 'short', got %q", got)
	}
	if got := formatter.truncate("a very long scenario name", 10); got != "a very ..." {
		t.Errorf("Expected 'a very ...', got %q", got)
	}
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := &CSVFormatter{}
	result, err := formatter.Format(sampleSet())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(result), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header and 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Scenario,Type,Stamp Duty") {
		t.Errorf("Unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Base,base,224600.00,250000.00,474600.00,3755.00,0.00,60.00,") {
		t.Errorf("Unexpected base row: %s", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Smaller unit,alternative,178600.00") {
		t.Errorf("Unexpected alternative row: %s", lines[2])
	}
	if !strings.Contains(lines[2], ",-246000.00,") {
		t.Errorf("Expected upfront cost difference in row: %s", lines[2])
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		formatter := &JSONFormatter{Pretty: pretty}
		result, err := formatter.Format(sampleSet())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		for _, want := range []string{`"baseScenarioName"`, `"SG-FIN-AAAA0002"`, `"upfrontCostDiffFromBase"`} {
			if !strings.Contains(result, want) {
				t.Errorf("Expected %s in JSON output (pretty=%v)", want, pretty)
			}
		}
		if pretty != strings.Contains(result, "\n  ") {
			t.Errorf("Indentation should follow Pretty=%v", pretty)
		}
	}
}
