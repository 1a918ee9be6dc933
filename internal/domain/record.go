package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// YearlyRecord is one projected year. Currency fields are rounded to whole
// units and percentage fields to two decimals when the record is built; the
// struct itself is plain data.
type YearlyRecord struct {
	Year int `yaml:"year" json:"year"`

	GrossYearly  decimal.Decimal `yaml:"gross_yearly" json:"grossYearly"`
	GrossMonthly decimal.Decimal `yaml:"gross_monthly" json:"grossMonthly"`
	TaxYearly    decimal.Decimal `yaml:"tax_yearly" json:"taxYearly"`
	TaxMonthly   decimal.Decimal `yaml:"tax_monthly" json:"taxMonthly"`
	NetYearly    decimal.Decimal `yaml:"net_yearly" json:"netYearly"`
	NetMonthly   decimal.Decimal `yaml:"net_monthly" json:"netMonthly"`

	CommonDeductionsMonthly decimal.Decimal `yaml:"common_deductions_monthly" json:"commonDeductionsMonthly"`
	OtherDeductionsMonthly  decimal.Decimal `yaml:"other_deductions_monthly" json:"otherDeductionsMonthly"`

	TotalInvestedYearly decimal.Decimal `yaml:"total_invested_yearly" json:"totalInvestedYearly"`
	MonthlyInvestment   decimal.Decimal `yaml:"monthly_investment" json:"monthlyInvestment"`
	SalaryLeftMonthly   decimal.Decimal `yaml:"salary_left_monthly" json:"salaryLeftMonthly"`
	InvestPercentage    decimal.Decimal `yaml:"invest_percentage" json:"investPercentage"`
	Remarks             string          `yaml:"remarks" json:"remarks"`

	RunningInvestTotal decimal.Decimal `yaml:"running_invest_total" json:"runningInvestTotal"`
	CumulativeValue    decimal.Decimal `yaml:"cumulative_value" json:"cumulativeValue"`
	ReturnPercentage   decimal.Decimal `yaml:"return_percentage" json:"returnPercentage"`
}

// Profit is the portfolio gain to date: cumulative value minus the amount
// invested.
func (r YearlyRecord) Profit() decimal.Decimal {
	return r.CumulativeValue.Sub(r.RunningInvestTotal)
}

// ProjectionReport bundles a finished run for the output formatters.
type ProjectionReport struct {
	ScenarioName string         `yaml:"scenario_name" json:"scenarioName"`
	GeneratedAt  time.Time      `yaml:"generated_at" json:"generatedAt"`
	Records      []YearlyRecord `yaml:"records" json:"records"`
}

// FinalRecord returns the last projected year, or a zero record for an
// empty report.
func (r *ProjectionReport) FinalRecord() YearlyRecord {
	if len(r.Records) == 0 {
		return YearlyRecord{}
	}
	return r.Records[len(r.Records)-1]
}
