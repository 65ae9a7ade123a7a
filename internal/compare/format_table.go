package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/sgfin/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("PROPERTY SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 90) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	sb.WriteString("\n")

	nameWidth := 30
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Stamp Duty",
		numWidth, "Upfront Cost",
		numWidth, "Monthly",
		numWidth, "TDSR"))
	sb.WriteString(strings.Repeat("-", 90) + "\n")

	if base := compSet.BaseResult; base != nil {
		sb.WriteString(tf.formatRow(base, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 90) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 90) + "\n")

	// Comparison details (deltas from base)
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 90) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
			}
			sb.WriteString(fmt.Sprintf("  Stamp Duty:       %s\n", tf.formatDelta(alt.StampDutyDiffFromBase)))
			sb.WriteString(fmt.Sprintf("  Upfront Cost:     %s\n", tf.formatDelta(alt.UpfrontCostDiffFromBase)))
			if !alt.MonthlyPaymentDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Monthly Payment:  %s (%s%%)\n",
					tf.formatDelta(alt.MonthlyPaymentDiffFromBase),
					alt.MonthlyPaymentPctFromBase.StringFixed(1)))
			}
			if !alt.InterestDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Total Interest:   %s\n", tf.formatDelta(alt.InterestDiffFromBase)))
			}
			if !alt.TaxDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Tax Impact:       %s\n", tf.formatDelta(alt.TaxDiffFromBase)))
			}
		}
		sb.WriteString("\n")
	}

	// Recommendations
	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 90) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	tdsr := "-"
	if result.HasTDSR {
		tdsr = output.FormatPercentage(result.TDSR)
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, output.FormatCurrency(result.StampDuty),
		numWidth, output.FormatCurrency(result.UpfrontCost),
		numWidth, output.FormatCurrency(result.MonthlyPayment),
		numWidth, tdsr)
}

// formatDelta renders a signed currency difference; lower costs are shown
// with a minus sign.
func (tf *TableFormatter) formatDelta(delta decimal.Decimal) string {
	switch {
	case delta.IsPositive():
		return "+" + output.FormatCurrency(delta)
	case delta.IsNegative():
		return "-" + output.FormatCurrency(delta.Abs())
	}
	return "no change"
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		upfront := "="
		if !alt.UpfrontCostDiffFromBase.IsZero() {
			upfront = tf.formatDelta(alt.UpfrontCostDiffFromBase)
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, upfront))
	}

	return sb.String()
}
