// Package compare runs a base scenario against named alternatives and
// reduces each run to headline metrics with deltas from the base.
package compare

import (
	"context"
	"fmt"
	"sync"

	"github.com/avoleti/incomehelper/internal/calculation"
	"github.com/avoleti/incomehelper/internal/domain"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	Engine            *calculation.ProjectionEngine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(engine *calculation.ProjectionEngine) *CompareEngine {
	return &CompareEngine{
		Engine:            engine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string   // Name of the base scenario to compare against
	Alternatives     []string // Names of the alternative scenarios to run
}

// Compare runs the base scenario and each alternative and assembles the
// comparison set. Alternatives run concurrently; the engine and
// configuration are immutable, so runs never share mutable state.
func (ce *CompareEngine) Compare(
	ctx context.Context,
	config *domain.Configuration,
	options CompareOptions,
) (*ComparisonSet, error) {

	baseScenario, err := config.FindScenario(options.BaseScenarioName)
	if err != nil {
		return nil, fmt.Errorf("base scenario: %w", err)
	}

	baseRecords, err := ce.Engine.RunProjection(baseScenario.ProjectionInput)
	if err != nil {
		return nil, fmt.Errorf("failed to run base scenario %s: %w", baseScenario.Name, err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseScenario.Name, baseRecords)

	// Resolve all alternatives up front so a bad name fails before any work.
	altScenarios := make([]*domain.Scenario, len(options.Alternatives))
	for i, name := range options.Alternatives {
		sc, err := config.FindScenario(name)
		if err != nil {
			return nil, fmt.Errorf("alternative scenario: %w", err)
		}
		altScenarios[i] = sc
	}

	alternatives := make([]ComparisonResult, len(altScenarios))
	errs := make([]error, len(altScenarios))

	var wg sync.WaitGroup
	for i, sc := range altScenarios {
		wg.Add(1)
		go func(i int, sc *domain.Scenario) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			records, err := ce.Engine.RunProjection(sc.ProjectionInput)
			if err != nil {
				errs[i] = fmt.Errorf("failed to run scenario %s: %w", sc.Name, err)
				return
			}
			result := ce.MetricsCalculator.CalculateMetrics(sc.Name, records)
			alternatives[i] = ce.MetricsCalculator.CalculateComparison(result, baseResult)
		}(i, sc)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   options.BaseScenarioName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}
