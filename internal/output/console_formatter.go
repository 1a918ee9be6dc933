package output

import (
	"bytes"
	"fmt"

	"github.com/avoleti/incomehelper/internal/calculation"
	"github.com/avoleti/incomehelper/internal/domain"
)

// ConsoleFormatter provides a concise terminal summary: final-year
// highlights plus the headline analytics.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "INCOME PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if report.ScenarioName != "" {
		fmt.Fprintf(&buf, "Scenario: %s\n", report.ScenarioName)
	}
	fmt.Fprintf(&buf, "Years projected: %d\n", len(report.Records))
	fmt.Fprintln(&buf)

	if len(report.Records) == 0 {
		fmt.Fprintln(&buf, "No records.")
		return buf.Bytes(), nil
	}

	final := report.FinalRecord()
	fmt.Fprintf(&buf, "Final year (%d):\n", final.Year)
	fmt.Fprintf(&buf, "  Gross=%s Net=%s Tax=%s\n",
		FormatCurrency(final.GrossYearly), FormatCurrency(final.NetYearly), FormatCurrency(final.TaxYearly))
	fmt.Fprintf(&buf, "  Invest/M=%s SalaryLeft/M=%s Invest%%=%s Remarks=%s\n",
		FormatCurrency(final.MonthlyInvestment), FormatCurrency(final.SalaryLeftMonthly),
		FormatPercentage(final.InvestPercentage), final.Remarks)

	analysis, err := calculation.AnalyzeProjection(report.Records)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Total invested: %s\n", FormatCurrency(analysis.TotalInvested))
	fmt.Fprintf(&buf, "Portfolio value: %s (gain %s, return %s)\n",
		FormatCurrency(analysis.FinalValue), FormatCurrency(analysis.TotalGain),
		FormatPercentage(final.ReturnPercentage))
	fmt.Fprintf(&buf, "Total tax paid: %s\n", FormatCurrency(analysis.TotalTaxPaid))
	fmt.Fprintf(&buf, "Investment CAGR: %s  Portfolio CAGR: %s\n",
		FormatPercentage(analysis.InvestmentCAGR), FormatPercentage(analysis.ReturnsCAGR))
	if analysis.BreakEvenYear > 0 {
		fmt.Fprintf(&buf, "First profitable year: %d\n", analysis.BreakEvenYear)
	} else {
		fmt.Fprintln(&buf, "Portfolio never exceeded contributions.")
	}

	return buf.Bytes(), nil
}
