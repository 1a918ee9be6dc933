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
		"Final Portfolio Value",
		"Total Invested",
		"Total Gain",
		"Return %",
		"Lifetime Tax",
		"Final Net Income",
		"Value Diff from Base",
		"Value % Change",
		"Tax Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
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

func (cf *CSVFormatter) formatRow(r *ComparisonResult, rowType string) []string {
	return []string{
		r.ScenarioName,
		rowType,
		r.FinalPortfolioValue.StringFixed(2),
		r.TotalInvested.StringFixed(2),
		r.TotalGain.StringFixed(2),
		r.ReturnPct.StringFixed(2),
		r.LifetimeTax.StringFixed(2),
		r.FinalNetIncome.StringFixed(2),
		r.ValueDiffFromBase.StringFixed(2),
		r.ValuePctFromBase.StringFixed(2),
		r.TaxDiffFromBase.StringFixed(2),
	}
}
