package compare

import (
	"fmt"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/output"
	"github.com/shopspring/decimal"
)

// ComparisonResult holds the key metrics of one scenario's report
type ComparisonResult struct {
	ScenarioName string         `json:"scenarioName"`
	Description  string         `json:"description,omitempty"`
	Report       *domain.Report `json:"-"`

	// Key Metrics
	StampDuty      decimal.Decimal `json:"stampDuty"`
	DownPayment    decimal.Decimal `json:"downPayment"`
	UpfrontCost    decimal.Decimal `json:"upfrontCost"` // stamp duty plus down payment
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	TotalInterest  decimal.Decimal `json:"totalInterest"`
	TDSR           decimal.Decimal `json:"tdsr"` // highest TDSR percentage in the scenario
	HasTDSR        bool            `json:"hasTdsr"`
	TaxPayable     decimal.Decimal `json:"taxPayable"`

	// Comparison to Base
	StampDutyDiffFromBase      decimal.Decimal `json:"stampDutyDiffFromBase"`
	UpfrontCostDiffFromBase    decimal.Decimal `json:"upfrontCostDiffFromBase"`
	MonthlyPaymentDiffFromBase decimal.Decimal `json:"monthlyPaymentDiffFromBase"`
	MonthlyPaymentPctFromBase  decimal.Decimal `json:"monthlyPaymentPctFromBase"`
	InterestDiffFromBase       decimal.Decimal `json:"interestDiffFromBase"`
	TaxDiffFromBase            decimal.Decimal `json:"taxDiffFromBase"`
}

// ComparisonSet represents a base scenario and its alternatives
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
}

// MetricsCalculator extracts key metrics from reports
type MetricsCalculator struct {
	// TDSRLimit is the percentage above which a scenario is flagged.
	TDSRLimit decimal.Decimal
}

// NewMetricsCalculator creates a metrics calculator using the 55% TDSR limit
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{TDSRLimit: decimal.NewFromInt(55)}
}

// CalculateMetrics computes the comparison metrics of a report
func (mc *MetricsCalculator) CalculateMetrics(name string, r *domain.Report) ComparisonResult {
	result := ComparisonResult{ScenarioName: name, Report: r}

	for _, e := range r.Entries {
		switch res := e.Result.(type) {
		case domain.BSDResult:
			result.StampDuty = result.StampDuty.Add(res.BSD)
		case domain.ABSDResult:
			result.StampDuty = result.StampDuty.Add(res.ABSD)
		case domain.SSDResult:
			result.StampDuty = result.StampDuty.Add(res.SSD)
		case domain.MortgageResult:
			result.MonthlyPayment = result.MonthlyPayment.Add(res.MonthlyPayment)
			result.TotalInterest = result.TotalInterest.Add(res.TotalInterest)
			if in, ok := e.Input.(domain.MortgageInput); ok && in.PropertyValue != nil && in.PropertyValue.GreaterThan(in.Principal) {
				result.DownPayment = result.DownPayment.Add(in.PropertyValue.Sub(in.Principal))
			}
		case domain.TDSRResult:
			if !result.HasTDSR || res.TDSRPercentage.GreaterThan(result.TDSR) {
				result.TDSR = res.TDSRPercentage
			}
			result.HasTDSR = true
		case domain.IncomeTaxResult:
			result.TaxPayable = result.TaxPayable.Add(res.TaxPayable)
		case domain.CorporateTaxResult:
			result.TaxPayable = result.TaxPayable.Add(res.TaxPayable)
		}
	}
	result.UpfrontCost = result.StampDuty.Add(result.DownPayment)
	return result
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.StampDutyDiffFromBase = scenario.StampDuty.Sub(base.StampDuty)
	scenario.UpfrontCostDiffFromBase = scenario.UpfrontCost.Sub(base.UpfrontCost)
	scenario.MonthlyPaymentDiffFromBase = scenario.MonthlyPayment.Sub(base.MonthlyPayment)
	if !base.MonthlyPayment.IsZero() {
		scenario.MonthlyPaymentPctFromBase = scenario.MonthlyPaymentDiffFromBase.
			Div(base.MonthlyPayment).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	scenario.InterestDiffFromBase = scenario.TotalInterest.Sub(base.TotalInterest)
	scenario.TaxDiffFromBase = scenario.TaxPayable.Sub(base.TaxPayable)
	return scenario
}

// lowest returns the alternative with the smallest metric when it beats the
// base, or nil.
func lowest(compSet *ComparisonSet, metric func(*ComparisonResult) decimal.Decimal) *ComparisonResult {
	best := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if metric(alt).LessThan(metric(best)) {
			best = alt
		}
	}
	if best == compSet.BaseResult {
		return nil
	}
	return best
}

// GenerateRecommendations creates recommendations based on comparison results
func (mc *MetricsCalculator) GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}
	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	if best := lowest(compSet, func(r *ComparisonResult) decimal.Decimal { return r.UpfrontCost }); best != nil {
		recommendations = append(recommendations, fmt.Sprintf(
			"Lowest Upfront Cost: %s needs %s less cash upfront than the base scenario",
			best.ScenarioName, output.FormatCurrency(base.UpfrontCost.Sub(best.UpfrontCost))))
	}

	if best := lowest(compSet, func(r *ComparisonResult) decimal.Decimal { return r.MonthlyPayment }); best != nil && best.MonthlyPayment.IsPositive() {
		recommendations = append(recommendations, fmt.Sprintf(
			"Lowest Monthly Payment: %s is %s per month less than the base scenario",
			best.ScenarioName, output.FormatCurrency(base.MonthlyPayment.Sub(best.MonthlyPayment))))
	}

	if best := lowest(compSet, func(r *ComparisonResult) decimal.Decimal { return r.TotalInterest }); best != nil && best.TotalInterest.IsPositive() {
		recommendations = append(recommendations, fmt.Sprintf(
			"Lowest Interest: %s saves %s in total interest",
			best.ScenarioName, output.FormatCurrency(base.TotalInterest.Sub(best.TotalInterest))))
	}

	if best := lowest(compSet, func(r *ComparisonResult) decimal.Decimal { return r.TaxPayable }); best != nil {
		recommendations = append(recommendations, fmt.Sprintf(
			"Lowest Taxes: %s saves %s in tax",
			best.ScenarioName, output.FormatCurrency(base.TaxPayable.Sub(best.TaxPayable))))
	}

	all := append([]ComparisonResult{*base}, compSet.AlternativeResults...)
	for _, r := range all {
		if r.HasTDSR && r.TDSR.GreaterThan(mc.TDSRLimit) {
			recommendations = append(recommendations, fmt.Sprintf(
				"TDSR Limit: %s has a TDSR of %s, above the %s limit",
				r.ScenarioName, output.FormatPercentage(r.TDSR), output.FormatPercentage(mc.TDSRLimit)))
		}
	}

	return recommendations
}
