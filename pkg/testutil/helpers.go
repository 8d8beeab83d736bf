// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/loansim/loan-compare/internal/compare"
)

// FindScenario finds a scenario result by name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindScenario(results []compare.ScenarioResult, name string) *compare.ScenarioResult {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
