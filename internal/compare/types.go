package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/avoleti/incomehelper/internal/domain"
)

// ComparisonResult represents a single scenario comparison with calculated metrics
type ComparisonResult struct {
	ScenarioName string                `json:"scenarioName"`
	Records      []domain.YearlyRecord `json:"-"`

	// Key Metrics
	FinalPortfolioValue decimal.Decimal `json:"finalPortfolioValue"`
	TotalInvested       decimal.Decimal `json:"totalInvested"`
	TotalGain           decimal.Decimal `json:"totalGain"`
	ReturnPct           decimal.Decimal `json:"returnPct"`
	LifetimeTax         decimal.Decimal `json:"lifetimeTax"`
	FinalNetIncome      decimal.Decimal `json:"finalNetIncome"`

	// Comparison to Base
	ValueDiffFromBase     decimal.Decimal `json:"valueDiffFromBase"`
	ValuePctFromBase      decimal.Decimal `json:"valuePctFromBase"`
	GainDiffFromBase      decimal.Decimal `json:"gainDiffFromBase"`
	TaxDiffFromBase       decimal.Decimal `json:"taxDiffFromBase"`
	NetIncomeDiffFromBase decimal.Decimal `json:"netIncomeDiffFromBase"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath,omitempty"`
}

// MetricsCalculator extracts key metrics from projection runs
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for a finished run
func (mc *MetricsCalculator) CalculateMetrics(name string, records []domain.YearlyRecord) ComparisonResult {
	result := ComparisonResult{
		ScenarioName: name,
		Records:      records,
	}
	if len(records) == 0 {
		return result
	}

	final := records[len(records)-1]
	result.FinalPortfolioValue = final.CumulativeValue
	result.TotalInvested = final.RunningInvestTotal
	result.TotalGain = final.Profit()
	result.ReturnPct = final.ReturnPercentage
	result.FinalNetIncome = final.NetYearly

	for _, r := range records {
		result.LifetimeTax = result.LifetimeTax.Add(r.TaxYearly)
	}
	return result
}

// CalculateComparison computes delta metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.ValueDiffFromBase = scenario.FinalPortfolioValue.Sub(base.FinalPortfolioValue)
	if !base.FinalPortfolioValue.IsZero() {
		scenario.ValuePctFromBase = scenario.ValueDiffFromBase.
			Div(base.FinalPortfolioValue).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	scenario.GainDiffFromBase = scenario.TotalGain.Sub(base.TotalGain)
	scenario.TaxDiffFromBase = scenario.LifetimeTax.Sub(base.LifetimeTax)
	scenario.NetIncomeDiffFromBase = scenario.FinalNetIncome.Sub(base.FinalNetIncome)
	return scenario
}

// GenerateRecommendations produces human-readable takeaways from a comparison set
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	// Find best scenario by final portfolio value
	bestValue := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.FinalPortfolioValue.GreaterThan(bestValue.FinalPortfolioValue) {
			bestValue = alt
		}
	}

	if bestValue != compSet.BaseResult {
		valueDiff := bestValue.FinalPortfolioValue.Sub(compSet.BaseResult.FinalPortfolioValue)
		recommendations = append(recommendations,
			"Best Value: "+bestValue.ScenarioName+" ends "+valueDiff.StringFixed(0)+
				" higher than the base scenario")
	}

	// Find best gain on invested money
	bestGain := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TotalGain.GreaterThan(bestGain.TotalGain) {
			bestGain = alt
		}
	}

	if bestGain != compSet.BaseResult && bestGain != bestValue {
		recommendations = append(recommendations,
			"Best Gain: "+bestGain.ScenarioName+" earns "+bestGain.TotalGain.StringFixed(0)+
				" on invested money")
	}

	// Find lowest lifetime tax burden
	lowestTax := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.LifetimeTax.LessThan(lowestTax.LifetimeTax) {
			lowestTax = alt
		}
	}

	if lowestTax != compSet.BaseResult {
		taxSavings := compSet.BaseResult.LifetimeTax.Sub(lowestTax.LifetimeTax)
		recommendations = append(recommendations,
			"Lowest Taxes: "+lowestTax.ScenarioName+" saves "+taxSavings.StringFixed(0)+
				" in lifetime taxes")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Base scenario %s leads on every tracked metric", compSet.BaseScenarioName))
	}

	return recommendations
}
