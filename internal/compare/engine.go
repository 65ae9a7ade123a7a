package compare

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/sgfin/internal/domain"
)

// ReportBuilder runs every calculation of a scenario.
type ReportBuilder interface {
	Build(scenario *domain.Scenario, preparer domain.Preparer) (*domain.Report, error)
}

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	Builder           ReportBuilder
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(builder ReportBuilder) *CompareEngine {
	return &CompareEngine{
		Builder:           builder,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// Variation is a what-if change applied to a copy of the base scenario. Each
// value replaces the input of that key in every calculation whose calculator
// accepts it.
type Variation struct {
	Name        string
	Description string
	Set         map[string]string
}

// ParseVariation reads "key=value[,key=value...]" into a variation named
// after its changes.
func ParseVariation(s string) (Variation, error) {
	v := Variation{Set: map[string]string{}}
	for _, part := range strings.Split(s, ",") {
		k, val, ok := strings.Cut(part, "=")
		k, val = strings.TrimSpace(k), strings.TrimSpace(val)
		if !ok || k == "" || val == "" {
			return Variation{}, fmt.Errorf("invalid variation %q: expected key=value", s)
		}
		v.Set[k] = val
	}
	keys := make([]string, 0, len(v.Set))
	for k := range v.Set {
		keys = append(keys, k+"="+v.Set[k])
	}
	sort.Strings(keys)
	v.Name = strings.Join(keys, ", ")
	return v, nil
}

// Apply returns a copy of the scenario with the variation's values set. It
// fails when no calculation accepts one of the keys.
func (v Variation) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	s := base.DeepCopy()
	s.ID = ""
	s.Name = base.Name + " (" + v.Name + ")"

	for key, value := range v.Set {
		applied := false
		for i := range s.Calculations {
			if !accepts(s.Calculations[i].Calculator, key) {
				continue
			}
			if s.Calculations[i].Inputs == nil {
				s.Calculations[i].Inputs = map[string]string{}
			}
			s.Calculations[i].Inputs[key] = value
			applied = true
		}
		if !applied {
			return nil, fmt.Errorf("variation %s: no calculation takes %q", v.Name, key)
		}
	}
	return s, nil
}

func accepts(id domain.CalculatorID, key string) bool {
	for _, f := range domain.Schema(id) {
		if f.Key == key {
			return true
		}
	}
	return false
}

// Compare runs the base scenario, each alternative scenario and each
// variation of the base, and compares them against the base.
func (ce *CompareEngine) Compare(
	ctx context.Context,
	base *domain.Scenario,
	alternatives []*domain.Scenario,
	variations []Variation,
	preparer domain.Preparer,
) (*ComparisonSet, error) {
	if base == nil {
		return nil, fmt.Errorf("base scenario is required")
	}

	baseReport, err := ce.Builder.Build(base, preparer)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(base.Name, baseReport)

	scenarios := make([]*domain.Scenario, 0, len(alternatives)+len(variations))
	descriptions := make([]string, len(alternatives), len(alternatives)+len(variations))
	scenarios = append(scenarios, alternatives...)
	for _, v := range variations {
		s, err := v.Apply(base)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
		descriptions = append(descriptions, v.Description)
	}

	results := []ComparisonResult{}
	for i, s := range scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s == nil {
			return nil, fmt.Errorf("alternative scenario %d is empty", i+1)
		}
		r, err := ce.Builder.Build(s, preparer)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", s.Name, err)
		}
		alt := ce.MetricsCalculator.CalculateMetrics(s.Name, r)
		alt.Description = descriptions[i]
		results = append(results, ce.MetricsCalculator.CalculateComparison(alt, baseResult))
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   base.Name,
		BaseResult:         &baseResult,
		AlternativeResults: results,
	}
	compSet.Recommendations = ce.MetricsCalculator.GenerateRecommendations(compSet)
	return compSet, nil
}
