package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoleti/incomehelper/internal/domain"
)

// TestAnalyzeProjectionTwoYears checks totals, milestones, CAGR and the
// derived series against a hand-computed two-year run.
func TestAnalyzeProjectionTwoYears(t *testing.T) {
	engine := newDefaultEngine(t)

	records, err := engine.RunProjection(domain.ProjectionInput{
		StartGross:             decimal.NewFromInt(1200000),
		Years:                  2,
		StartMonthlyInvestment: decimal.NewFromInt(20000),
		InvestmentHikePercent:  decimal.NewFromInt(10),
		ExpectedReturnRate:     decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	analysis, err := AnalyzeProjection(records)
	require.NoError(t, err)

	assert.Equal(t, 2, analysis.Years)

	// Year 1: tax 57200, invested 240000, value 268800.
	// Year 2: gross 1260000, tax 63960, invested 264000,
	// value (268800+264000)*1.12 = 596736.
	assert.True(t, analysis.TotalTaxPaid.Equal(decimal.NewFromInt(121160)),
		"total tax: got %s", analysis.TotalTaxPaid)
	assert.True(t, analysis.TotalInvested.Equal(decimal.NewFromInt(504000)))
	assert.True(t, analysis.FinalValue.Equal(decimal.NewFromInt(596736)))
	assert.True(t, analysis.TotalGain.Equal(decimal.NewFromInt(92736)))

	// Year 1 already ends above its contributions.
	assert.Equal(t, 1, analysis.BreakEvenYear)
	assert.Equal(t, 2, analysis.MaxNetSalaryYear)
	assert.Equal(t, 1, analysis.MinNetSalaryYear)

	// (504000/240000)^(1/2)-1 = 44.91%; (596736/268800)^(1/2)-1 = 49.00%.
	assert.True(t, analysis.InvestmentCAGR.Equal(decimal.NewFromFloat(44.91)),
		"investment CAGR: got %s", analysis.InvestmentCAGR)
	assert.True(t, analysis.ReturnsCAGR.Equal(decimal.NewFromInt(49)),
		"returns CAGR: got %s", analysis.ReturnsCAGR)

	require.Len(t, analysis.Derived, 2)
	first, second := analysis.Derived[0], analysis.Derived[1]

	assert.Equal(t, 1, first.Year)
	assert.True(t, first.YearlyReturn.Equal(decimal.NewFromInt(28800)))
	assert.True(t, first.SalaryHikePct.IsZero(), "no hike before year two")
	assert.True(t, first.InvestHikePct.IsZero())
	// 57200 / 1200000 = 4.77% after rounding.
	assert.True(t, first.EffectiveTaxRatePct.Equal(decimal.NewFromFloat(4.77)))
	// 65433 * 12 / 1200000 = 0.6543.
	assert.True(t, first.SavingsRate.Equal(decimal.NewFromFloat(0.6543)),
		"savings rate: got %s", first.SavingsRate)

	assert.Equal(t, 2, second.Year)
	// 596736 - 268800 - 264000.
	assert.True(t, second.YearlyReturn.Equal(decimal.NewFromInt(63936)),
		"year 2 return: got %s", second.YearlyReturn)
	assert.True(t, second.SalaryHikePct.Equal(decimal.NewFromInt(5)))
	assert.True(t, second.InvestHikePct.Equal(decimal.NewFromInt(10)))
	assert.True(t, second.EffectiveTaxRatePct.Equal(decimal.NewFromFloat(5.08)))
}

// TestAnalyzeProjectionStats checks the descriptive statistics columns.
func TestAnalyzeProjectionStats(t *testing.T) {
	engine := newDefaultEngine(t)

	records, err := engine.RunProjection(domain.ProjectionInput{
		StartGross:             decimal.NewFromInt(1200000),
		Years:                  2,
		StartMonthlyInvestment: decimal.NewFromInt(20000),
		InvestmentHikePercent:  decimal.NewFromInt(10),
		ExpectedReturnRate:     decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	analysis, err := AnalyzeProjection(records)
	require.NoError(t, err)

	require.Contains(t, analysis.Columns, "gross_yearly")
	assert.Len(t, analysis.Stats, len(analysis.Columns))

	gross := analysis.Stats["gross_yearly"]
	assert.Equal(t, 2, gross.Count)
	assert.True(t, gross.Mean.Equal(decimal.NewFromInt(1230000)))
	assert.True(t, gross.Min.Equal(decimal.NewFromInt(1200000)))
	assert.True(t, gross.Max.Equal(decimal.NewFromInt(1260000)))
	// Sample stddev of {1200000, 1260000} is sqrt(2*30000^2/1).
	assert.True(t, gross.StdDev.Equal(decimal.NewFromFloat(42426.41)),
		"stddev: got %s", gross.StdDev)
}

// TestAnalyzeProjectionSingleYear: a one-record run still analyzes, with
// zero spread and no hikes.
func TestAnalyzeProjectionSingleYear(t *testing.T) {
	engine := newDefaultEngine(t)

	records, err := engine.RunProjection(domain.ProjectionInput{
		StartGross:             decimal.NewFromInt(1000000),
		Years:                  1,
		StartMonthlyInvestment: decimal.NewFromInt(10000),
		ExpectedReturnRate:     decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	analysis, err := AnalyzeProjection(records)
	require.NoError(t, err)

	assert.Equal(t, 1, analysis.Years)
	net := analysis.Stats["net_yearly"]
	assert.Equal(t, 1, net.Count)
	assert.True(t, net.StdDev.IsZero())
	assert.True(t, net.Min.Equal(net.Max))
}

// TestAnalyzeProjectionNoBreakEven: at zero return the portfolio never
// exceeds contributions.
func TestAnalyzeProjectionNoBreakEven(t *testing.T) {
	engine := newDefaultEngine(t)

	records, err := engine.RunProjection(domain.ProjectionInput{
		StartGross:             decimal.NewFromInt(1000000),
		Years:                  3,
		StartMonthlyInvestment: decimal.NewFromInt(10000),
		ExpectedReturnRate:     decimal.Zero,
	})
	require.NoError(t, err)

	analysis, err := AnalyzeProjection(records)
	require.NoError(t, err)
	assert.Equal(t, 0, analysis.BreakEvenYear)
	assert.True(t, analysis.TotalGain.IsZero())
}

// TestAnalyzeProjectionEmpty rejects an empty record set.
func TestAnalyzeProjectionEmpty(t *testing.T) {
	_, err := AnalyzeProjection(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no projection records")
}

// TestCAGR tests the growth-rate helper directly.
func TestCAGR(t *testing.T) {
	tests := []struct {
		name     string
		start    decimal.Decimal
		end      decimal.Decimal
		years    int
		expected decimal.Decimal
	}{
		{
			name:     "Doubling in one year",
			start:    decimal.NewFromInt(100),
			end:      decimal.NewFromInt(200),
			years:    1,
			expected: decimal.NewFromInt(100),
		},
		{
			name:     "Ten percent over two years",
			start:    decimal.NewFromInt(100),
			end:      decimal.NewFromInt(121),
			years:    2,
			expected: decimal.NewFromInt(10),
		},
		{
			name:     "Zero start yields zero",
			start:    decimal.Zero,
			end:      decimal.NewFromInt(500),
			years:    5,
			expected: decimal.Zero,
		},
		{
			name:     "Flat value yields zero",
			start:    decimal.NewFromInt(100),
			end:      decimal.NewFromInt(100),
			years:    4,
			expected: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CAGR(tt.start, tt.end, tt.years)
			assert.True(t, got.Equal(tt.expected),
				"expected %s, got %s", tt.expected, got)
		})
	}
}
