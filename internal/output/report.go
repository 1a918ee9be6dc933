package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/avoleti/incomehelper/internal/domain"
)

// TextReportFormatter renders a fixed-width plain text report: a column
// legend followed by one left-aligned row per projected year.
type TextReportFormatter struct{}

func (TextReportFormatter) Name() string { return "text" }

// reportColumns defines the table: header, width, legend text and the cell
// value for a record.
var reportColumns = []struct {
	header string
	width  int
	legend string
	cell   func(domain.YearlyRecord) string
}{
	{"Year", 5, "", func(r domain.YearlyRecord) string { return fmt.Sprintf("%d", r.Year) }},
	{"Gross/Y", 10, "Total salary earned in the year before deductions.",
		func(r domain.YearlyRecord) string { return FormatCurrency(r.GrossYearly) }},
	{"Gross/M", 10, "Monthly salary before deductions.",
		func(r domain.YearlyRecord) string { return FormatCurrency(r.GrossMonthly) }},
	{"Tax/Y", 8, "Income tax calculated on yearly income.",
		func(r domain.YearlyRecord) string { return FormatCurrency(r.TaxYearly) }},
	{"Tax/M", 8, "Income tax applicable per month.",
		func(r domain.YearlyRecord) string { return FormatCurrency(r.TaxMonthly) }},
	{"Net/Y", 8, "Actual salary received after tax deductions.",
		func(r domain.YearlyRecord) string { return FormatCurrency(r.NetYearly) }},
	{"Net/M", 8, "Monthly take-home after tax deductions.",
		func(r domain.YearlyRecord) string { return FormatCurrency(r.NetMonthly) }},
	{"Common Ded/M", 14, "Statutory contributions plus the fixed charge per month.",
		func(r domain.YearlyRecord) string { return FormatCurrency(r.CommonDeductionsMonthly) }},
	{"Other Ded/M", 13, "Any other deductions you entered (monthly).",
		func(r domain.YearlyRecord) string { return FormatCurrency(r.OtherDeductionsMonthly) }},
	{"Invest/Y", 10, "Total amount invested per year.",
		func(r domain.YearlyRecord) string { return FormatCurrency(r.TotalInvestedYearly) }},
	{"Invest/M", 10, "Monthly investment amount after cap.",
		func(r domain.YearlyRecord) string { return FormatCurrency(r.MonthlyInvestment) }},
	{"Invest %", 10, "Investment percentage of monthly take-home.",
		func(r domain.YearlyRecord) string { return r.InvestPercentage.StringFixed(2) }},
	{"Salary Left/M", 13, "Amount remaining each month after investment and deductions.",
		func(r domain.YearlyRecord) string { return FormatCurrency(r.SalaryLeftMonthly) }},
	{"Remarks", 8, "", func(r domain.YearlyRecord) string { return r.Remarks }},
	{"Running Invest/Y", 16, "Total money invested so far over the years.",
		func(r domain.YearlyRecord) string { return FormatCurrency(r.RunningInvestTotal) }},
	{"Cumulative Return/Y", 19, "Total portfolio value including returns.",
		func(r domain.YearlyRecord) string { return FormatCurrency(r.CumulativeValue) }},
	{"Return %", 12, "Percentage gain made on total invested amount.",
		func(r domain.YearlyRecord) string { return r.ReturnPercentage.StringFixed(2) }},
}

func (TextReportFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer

	if report.ScenarioName != "" {
		fmt.Fprintf(&buf, "Scenario: %s\n", report.ScenarioName)
	}
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	}
	if buf.Len() > 0 {
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "==== Column Descriptions ====")
	for _, col := range reportColumns {
		if col.legend == "" {
			continue
		}
		fmt.Fprintf(&buf, "%-20s: %s\n", col.header, col.legend)
	}
	fmt.Fprintln(&buf)

	cells := make([]string, len(reportColumns))
	for i, col := range reportColumns {
		cells[i] = fmt.Sprintf("%-*s", col.width, col.header)
	}
	header := strings.Join(cells, "|")
	fmt.Fprintln(&buf, header)
	fmt.Fprintln(&buf, strings.Repeat("-", len(header)))

	for _, rec := range report.Records {
		for i, col := range reportColumns {
			cells[i] = fmt.Sprintf("%-*s", col.width, col.cell(rec))
		}
		fmt.Fprintln(&buf, strings.Join(cells, "|"))
	}

	return buf.Bytes(), nil
}
