package calculation

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/avoleti/incomehelper/internal/domain"
)

// MetricStats are descriptive statistics for one numeric column of the
// projection.
type MetricStats struct {
	Count  int             `json:"count"`
	Mean   decimal.Decimal `json:"mean"`
	StdDev decimal.Decimal `json:"stdDev"`
	Min    decimal.Decimal `json:"min"`
	Max    decimal.Decimal `json:"max"`
}

// YearlyDerived are per-year series derived from consecutive records rather
// than carried on the records themselves.
type YearlyDerived struct {
	Year int `json:"year"`
	// YearlyReturn is this year's portfolio gain alone: the change in
	// cumulative value minus this year's contribution.
	YearlyReturn decimal.Decimal `json:"yearlyReturn"`
	// SalaryHikePct and InvestHikePct are year-over-year growth; zero for
	// the first year.
	SalaryHikePct decimal.Decimal `json:"salaryHikePct"`
	InvestHikePct decimal.Decimal `json:"investHikePct"`
	// SavingsRate is salary left per month, annualized, over gross.
	SavingsRate decimal.Decimal `json:"savingsRate"`
	// EffectiveTaxRatePct is tax over gross for the year.
	EffectiveTaxRatePct decimal.Decimal `json:"effectiveTaxRatePct"`
}

// ProjectionAnalysis summarizes a finished projection run.
type ProjectionAnalysis struct {
	Years int `json:"years"`

	// Columns lists the analyzed metric names in display order; Stats is
	// keyed by those names.
	Columns []string               `json:"columns"`
	Stats   map[string]MetricStats `json:"stats"`

	Derived []YearlyDerived `json:"derived"`

	// CAGR of the running invested total and of the portfolio value, first
	// year to last, as percentages.
	InvestmentCAGR decimal.Decimal `json:"investmentCagr"`
	ReturnsCAGR    decimal.Decimal `json:"returnsCagr"`

	// BreakEvenYear is the first year whose portfolio value exceeds the
	// amount invested; zero if never reached.
	BreakEvenYear    int `json:"breakEvenYear"`
	MaxNetSalaryYear int `json:"maxNetSalaryYear"`
	MinNetSalaryYear int `json:"minNetSalaryYear"`

	TotalTaxPaid  decimal.Decimal `json:"totalTaxPaid"`
	TotalInvested decimal.Decimal `json:"totalInvested"`
	FinalValue    decimal.Decimal `json:"finalValue"`
	TotalGain     decimal.Decimal `json:"totalGain"`
}

// metricColumns maps analyzed column names to record accessors, in display
// order.
var metricColumns = []struct {
	name string
	get  func(domain.YearlyRecord) decimal.Decimal
}{
	{"gross_yearly", func(r domain.YearlyRecord) decimal.Decimal { return r.GrossYearly }},
	{"tax_yearly", func(r domain.YearlyRecord) decimal.Decimal { return r.TaxYearly }},
	{"net_yearly", func(r domain.YearlyRecord) decimal.Decimal { return r.NetYearly }},
	{"total_invested_yearly", func(r domain.YearlyRecord) decimal.Decimal { return r.TotalInvestedYearly }},
	{"salary_left_monthly", func(r domain.YearlyRecord) decimal.Decimal { return r.SalaryLeftMonthly }},
	{"invest_percentage", func(r domain.YearlyRecord) decimal.Decimal { return r.InvestPercentage }},
	{"running_invest_total", func(r domain.YearlyRecord) decimal.Decimal { return r.RunningInvestTotal }},
	{"cumulative_value", func(r domain.YearlyRecord) decimal.Decimal { return r.CumulativeValue }},
	{"return_percentage", func(r domain.YearlyRecord) decimal.Decimal { return r.ReturnPercentage }},
}

// AnalyzeProjection computes summary statistics, derived series, CAGR and
// milestones for an ordered sequence of yearly records. The records are
// read-only input and are never mutated.
func AnalyzeProjection(records []domain.YearlyRecord) (*ProjectionAnalysis, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no projection records to analyze")
	}

	a := &ProjectionAnalysis{
		Years: len(records),
		Stats: make(map[string]MetricStats, len(metricColumns)),
	}

	for _, col := range metricColumns {
		a.Columns = append(a.Columns, col.name)
		values := make([]decimal.Decimal, len(records))
		for i, r := range records {
			values[i] = col.get(r)
		}
		a.Stats[col.name] = describe(values)
	}

	a.Derived = deriveSeries(records)

	first, last := records[0], records[len(records)-1]
	a.InvestmentCAGR = CAGR(first.RunningInvestTotal, last.RunningInvestTotal, len(records))
	a.ReturnsCAGR = CAGR(first.CumulativeValue, last.CumulativeValue, len(records))

	maxNet, minNet := first, first
	for _, r := range records {
		a.TotalTaxPaid = a.TotalTaxPaid.Add(r.TaxYearly)
		if a.BreakEvenYear == 0 && r.Profit().GreaterThan(decimal.Zero) {
			a.BreakEvenYear = r.Year
		}
		if r.NetYearly.GreaterThan(maxNet.NetYearly) {
			maxNet = r
		}
		if r.NetYearly.LessThan(minNet.NetYearly) {
			minNet = r
		}
	}
	a.MaxNetSalaryYear = maxNet.Year
	a.MinNetSalaryYear = minNet.Year
	a.TotalInvested = last.RunningInvestTotal
	a.FinalValue = last.CumulativeValue
	a.TotalGain = last.Profit()

	return a, nil
}

// CAGR returns the compound annual growth rate from start to end over the
// given number of years, as a percentage rounded to 2 decimals. Zero when
// either endpoint is non-positive.
func CAGR(start, end decimal.Decimal, years int) decimal.Decimal {
	if years < 1 {
		years = 1
	}
	if start.LessThanOrEqual(decimal.Zero) || end.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	ratio := end.Div(start).InexactFloat64()
	rate := (math.Pow(ratio, 1.0/float64(years)) - 1.0) * 100.0
	return decimal.NewFromFloat(rate).Round(2)
}

// describe computes count, mean, sample standard deviation, min and max.
func describe(values []decimal.Decimal) MetricStats {
	stats := MetricStats{Count: len(values)}
	if len(values) == 0 {
		return stats
	}

	sum := decimal.Zero
	stats.Min, stats.Max = values[0], values[0]
	for _, v := range values {
		sum = sum.Add(v)
		if v.LessThan(stats.Min) {
			stats.Min = v
		}
		if v.GreaterThan(stats.Max) {
			stats.Max = v
		}
	}
	stats.Mean = sum.Div(decimal.NewFromInt(int64(len(values)))).Round(2)

	if len(values) > 1 {
		mean := stats.Mean.InexactFloat64()
		var ss float64
		for _, v := range values {
			d := v.InexactFloat64() - mean
			ss += d * d
		}
		stats.StdDev = decimal.NewFromFloat(math.Sqrt(ss / float64(len(values)-1))).Round(2)
	}

	return stats
}

// deriveSeries computes the year-over-year series.
func deriveSeries(records []domain.YearlyRecord) []YearlyDerived {
	derived := make([]YearlyDerived, len(records))
	for i, r := range records {
		d := YearlyDerived{Year: r.Year}

		prevValue := decimal.Zero
		if i > 0 {
			prevValue = records[i-1].CumulativeValue
		}
		d.YearlyReturn = r.CumulativeValue.Sub(prevValue).Sub(r.TotalInvestedYearly).Round(0)

		if i > 0 {
			d.SalaryHikePct = pctChange(records[i-1].GrossYearly, r.GrossYearly)
			d.InvestHikePct = pctChange(records[i-1].TotalInvestedYearly, r.TotalInvestedYearly)
		}

		if r.GrossYearly.GreaterThan(decimal.Zero) {
			d.SavingsRate = r.SalaryLeftMonthly.Mul(decimal.NewFromInt(12)).Div(r.GrossYearly).Round(4)
			d.EffectiveTaxRatePct = r.TaxYearly.Div(r.GrossYearly).Mul(decimal.NewFromInt(100)).Round(2)
		}

		derived[i] = d
	}
	return derived
}

func pctChange(prev, cur decimal.Decimal) decimal.Decimal {
	if prev.IsZero() {
		return decimal.Zero
	}
	return cur.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(2)
}
