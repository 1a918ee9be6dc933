package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/avoleti/incomehelper/internal/domain"
)

// CSVDetailedExporter writes one row per projected year with every record
// field, for spreadsheet import.
type CSVDetailedExporter struct{}

func (CSVDetailedExporter) Name() string { return "detailed-csv" }

func (CSVDetailedExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"Scenario", "Year",
		"GrossYearly", "GrossMonthly", "TaxYearly", "TaxMonthly",
		"NetYearly", "NetMonthly",
		"CommonDeductionsMonthly", "OtherDeductionsMonthly",
		"TotalInvestedYearly", "MonthlyInvestment", "SalaryLeftMonthly",
		"InvestPercentage", "Remarks",
		"RunningInvestTotal", "CumulativeValue", "ReturnPercentage",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range report.Records {
		row := []string{
			report.ScenarioName,
			strconv.Itoa(r.Year),
			r.GrossYearly.StringFixed(2),
			r.GrossMonthly.StringFixed(2),
			r.TaxYearly.StringFixed(2),
			r.TaxMonthly.StringFixed(2),
			r.NetYearly.StringFixed(2),
			r.NetMonthly.StringFixed(2),
			r.CommonDeductionsMonthly.StringFixed(2),
			r.OtherDeductionsMonthly.StringFixed(2),
			r.TotalInvestedYearly.StringFixed(2),
			r.MonthlyInvestment.StringFixed(2),
			r.SalaryLeftMonthly.StringFixed(2),
			r.InvestPercentage.StringFixed(2),
			r.Remarks,
			r.RunningInvestTotal.StringFixed(2),
			r.CumulativeValue.StringFixed(2),
			r.ReturnPercentage.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
