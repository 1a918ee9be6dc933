package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 96) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 25
	numWidth := 16

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Final Value",
		numWidth, "Total Invested",
		numWidth, "Total Gain",
		numWidth, "Lifetime Tax"))
	sb.WriteString(strings.Repeat("-", 96) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 96) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 96) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 96) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			sb.WriteString(fmt.Sprintf("  Final Value:   %s%s (%s%%)\n",
				tf.deltaSymbol(alt.ValueDiffFromBase),
				alt.ValueDiffFromBase.Abs().StringFixed(0),
				alt.ValuePctFromBase.StringFixed(1)))
			if !alt.TaxDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Lifetime Tax:  %s%s\n",
					tf.deltaSymbol(alt.TaxDiffFromBase),
					alt.TaxDiffFromBase.Abs().StringFixed(0)))
			}
			if !alt.NetIncomeDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Final Net/Y:   %s%s\n",
					tf.deltaSymbol(alt.NetIncomeDiffFromBase),
					alt.NetIncomeDiffFromBase.Abs().StringFixed(0)))
			}
		}
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 96) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString("  - " + rec + "\n")
		}
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(r *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := r.ScenarioName
	if isBase {
		name += " (base)"
	}
	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, name,
		numWidth, r.FinalPortfolioValue.StringFixed(0),
		numWidth, r.TotalInvested.StringFixed(0),
		numWidth, r.TotalGain.StringFixed(0),
		numWidth, r.LifetimeTax.StringFixed(0))
}

func (tf *TableFormatter) deltaSymbol(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return "+"
}
