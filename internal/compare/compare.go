// Package compare runs the configured loan scenarios through the simulator
// and derives the cross-scenario comparison metrics.
package compare

import (
	"fmt"

	"github.com/loansim/loan-compare/internal/config"
	"github.com/loansim/loan-compare/pkg/constants"
	"github.com/loansim/loan-compare/pkg/loans"
	"go.uber.org/zap"
)

// ScenarioResult pairs a scenario name with its simulated schedule and
// summary metrics.
type ScenarioResult struct {
	Name    string
	Result  loans.SimulationResult
	Summary Summary
}

// Summary holds the per-scenario aggregate metrics shown to the user.
type Summary struct {
	MonthsToPayoff int
	PayoffDuration string
	TotalInterest  float64
	TotalPaid      float64
	Capped         bool

	// ApproxEffectiveRatePercent is a heuristic annual rate derived from the
	// total interest, the average outstanding principal, and the elapsed
	// years. It is not an internal-rate-of-return solve.
	ApproxEffectiveRatePercent float64
}

// Delta describes how a scenario compares against the baseline (first
// active) scenario. Negative values favor the compared scenario.
type Delta struct {
	Name               string
	InterestDelta      float64
	TotalPaidDelta     float64
	PayoffMonthsDelta  int
	EffectiveRateDelta float64
}

// Comparison holds the baseline name and the deltas of every other scenario
// against it.
type Comparison struct {
	Baseline string
	Deltas   []Delta
}

// RunScenarios simulates every active scenario in order.
func RunScenarios(logger *zap.Logger, conf config.Configuration) []ScenarioResult {
	if logger == nil {
		logger = zap.NewNop()
	}

	simulator := loans.NewSimulator(logger)

	var results []ScenarioResult
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "compare.RunScenarios"),
			)
			continue
		}

		result := simulator.Simulate(scenario.ToLoanConfig())
		results = append(results, ScenarioResult{
			Name:    scenario.Name,
			Result:  result,
			Summary: Summarize(result),
		})
	}

	return results
}

// Summarize derives the summary metrics for one simulated schedule.
func Summarize(result loans.SimulationResult) Summary {
	return Summary{
		MonthsToPayoff:             result.MonthsToPayoff,
		PayoffDuration:             result.PayoffDuration,
		TotalInterest:              result.TotalInterest,
		TotalPaid:                  result.TotalPaid,
		Capped:                     result.Capped,
		ApproxEffectiveRatePercent: ApproxEffectiveRate(result),
	}
}

// ApproxEffectiveRate estimates an annual interest rate from the aggregate
// interest, the average outstanding principal across the schedule, and the
// elapsed years. This is explicitly an approximation: the simulator's
// schedule is exact, this figure is not.
func ApproxEffectiveRate(result loans.SimulationResult) float64 {
	if len(result.Records) == 0 {
		return 0
	}

	outstanding := 0.00
	for _, record := range result.Records {
		outstanding += record.OpeningPrincipal
	}
	average := outstanding / float64(len(result.Records))
	years := float64(len(result.Records)) / constants.MonthsPerYear

	if average <= 0 || years <= 0 {
		return 0
	}
	return result.TotalInterest / (average * years) * constants.PercentageMultiplier
}

// BuildComparison computes deltas of every scenario against the first one.
// Returns nil when fewer than two scenarios were simulated.
func BuildComparison(results []ScenarioResult) *Comparison {
	if len(results) < 2 {
		return nil
	}

	baseline := results[0]
	comparison := &Comparison{Baseline: baseline.Name}
	for _, other := range results[1:] {
		comparison.Deltas = append(comparison.Deltas, Delta{
			Name:               other.Name,
			InterestDelta:      other.Summary.TotalInterest - baseline.Summary.TotalInterest,
			TotalPaidDelta:     other.Summary.TotalPaid - baseline.Summary.TotalPaid,
			PayoffMonthsDelta:  other.Summary.MonthsToPayoff - baseline.Summary.MonthsToPayoff,
			EffectiveRateDelta: other.Summary.ApproxEffectiveRatePercent - baseline.Summary.ApproxEffectiveRatePercent,
		})
	}

	return comparison
}
