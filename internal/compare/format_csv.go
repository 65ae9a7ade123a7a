package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Stamp Duty",
		"Down Payment",
		"Upfront Cost",
		"Monthly Payment",
		"Total Interest",
		"TDSR %",
		"Tax Payable",
		"Stamp Duty Diff from Base",
		"Upfront Cost Diff from Base",
		"Monthly Payment Diff from Base",
		"Monthly Payment % Change",
		"Interest Diff from Base",
		"Tax Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	tdsr := ""
	if result.HasTDSR {
		tdsr = result.TDSR.StringFixed(2)
	}
	return []string{
		result.ScenarioName,
		scenarioType,
		result.StampDuty.StringFixed(2),
		result.DownPayment.StringFixed(2),
		result.UpfrontCost.StringFixed(2),
		result.MonthlyPayment.StringFixed(2),
		result.TotalInterest.StringFixed(2),
		tdsr,
		result.TaxPayable.StringFixed(2),
		result.StampDutyDiffFromBase.StringFixed(2),
		result.UpfrontCostDiffFromBase.StringFixed(2),
		result.MonthlyPaymentDiffFromBase.StringFixed(2),
		result.MonthlyPaymentPctFromBase.StringFixed(2),
		result.InterestDiffFromBase.StringFixed(2),
		result.TaxDiffFromBase.StringFixed(2),
	}
}
