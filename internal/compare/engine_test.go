package compare

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoleti/incomehelper/internal/calculation"
	"github.com/avoleti/incomehelper/internal/domain"
)

func testConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name: "base",
				ProjectionInput: domain.ProjectionInput{
					StartGross:             decimal.NewFromInt(1200000),
					Years:                  2,
					StartMonthlyInvestment: decimal.NewFromInt(20000),
					InvestmentHikePercent:  decimal.NewFromInt(10),
					ExpectedReturnRate:     decimal.NewFromInt(12),
				},
			},
			{
				Name: "lean",
				ProjectionInput: domain.ProjectionInput{
					StartGross:             decimal.NewFromInt(1200000),
					Years:                  2,
					StartMonthlyInvestment: decimal.NewFromInt(10000),
					ExpectedReturnRate:     decimal.NewFromInt(12),
				},
			},
			{
				Name: "aggressive",
				ProjectionInput: domain.ProjectionInput{
					StartGross:             decimal.NewFromInt(1200000),
					Years:                  2,
					StartMonthlyInvestment: decimal.NewFromInt(40000),
					InvestmentHikePercent:  decimal.NewFromInt(10),
					ExpectedReturnRate:     decimal.NewFromInt(12),
				},
			},
		},
	}
}

func newCompareEngine(t *testing.T) *CompareEngine {
	t.Helper()
	engine, err := calculation.NewProjectionEngine(
		calculation.MustNewTaxCalculator(domain.DefaultTaxConfig()),
		domain.DefaultProjectionConfig(),
	)
	require.NoError(t, err)
	return NewCompareEngine(engine)
}

func TestCompare(t *testing.T) {
	ce := newCompareEngine(t)

	compSet, err := ce.Compare(context.Background(), testConfiguration(), CompareOptions{
		BaseScenarioName: "base",
		Alternatives:     []string{"lean", "aggressive"},
	})
	require.NoError(t, err)

	assert.Equal(t, "base", compSet.BaseScenarioName)
	require.NotNil(t, compSet.BaseResult)

	// Base: two years at 20k/month with a 10% investment hike and 12%
	// return ends at 596736 on 504000 invested.
	base := compSet.BaseResult
	assert.True(t, base.FinalPortfolioValue.Equal(decimal.NewFromInt(596736)),
		"base final value: got %s", base.FinalPortfolioValue)
	assert.True(t, base.TotalInvested.Equal(decimal.NewFromInt(504000)))
	assert.True(t, base.TotalGain.Equal(decimal.NewFromInt(92736)))
	assert.True(t, base.LifetimeTax.Equal(decimal.NewFromInt(121160)))
	assert.True(t, base.ValueDiffFromBase.IsZero(), "base carries no deltas")

	require.Len(t, compSet.AlternativeResults, 2)
	lean := compSet.AlternativeResults[0]
	aggressive := compSet.AlternativeResults[1]
	assert.Equal(t, "lean", lean.ScenarioName, "alternatives keep request order")
	assert.Equal(t, "aggressive", aggressive.ScenarioName)

	// Lean: flat 10k/month invests 240000 and ends at 284928.
	assert.True(t, lean.FinalPortfolioValue.Equal(decimal.NewFromInt(284928)),
		"lean final value: got %s", lean.FinalPortfolioValue)
	assert.True(t, lean.ValueDiffFromBase.Equal(decimal.NewFromInt(-311808)))

	// Taxes depend only on salary, which is identical across scenarios.
	assert.True(t, lean.TaxDiffFromBase.IsZero())
	assert.True(t, aggressive.TaxDiffFromBase.IsZero())

	assert.True(t, aggressive.ValueDiffFromBase.IsPositive())
	require.NotEmpty(t, compSet.Recommendations)
	assert.Contains(t, compSet.Recommendations[0], "aggressive")
}

func TestCompareUnknownScenarios(t *testing.T) {
	ce := newCompareEngine(t)
	cfg := testConfiguration()

	_, err := ce.Compare(context.Background(), cfg, CompareOptions{
		BaseScenarioName: "missing",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base scenario")

	_, err = ce.Compare(context.Background(), cfg, CompareOptions{
		BaseScenarioName: "base",
		Alternatives:     []string{"nope"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alternative scenario")
}

func TestCompareCancelledContext(t *testing.T) {
	ce := newCompareEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ce.Compare(ctx, testConfiguration(), CompareOptions{
		BaseScenarioName: "base",
		Alternatives:     []string{"lean"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompareNoAlternatives(t *testing.T) {
	ce := newCompareEngine(t)

	compSet, err := ce.Compare(context.Background(), testConfiguration(), CompareOptions{
		BaseScenarioName: "base",
	})
	require.NoError(t, err)
	assert.Empty(t, compSet.AlternativeResults)
	assert.Empty(t, compSet.Recommendations)
}
