// Package output provides utilities for formatting and displaying scenario
// comparison results.
package output

import (
	"fmt"
	"strings"

	"github.com/loansim/loan-compare/internal/compare"
	"github.com/loansim/loan-compare/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable summary,
// optionally followed by the full per-month schedule of each scenario.
func PrettyFormat(results []compare.ScenarioResult, comparison *compare.Comparison, showSchedule bool) {
	p := message.NewPrinter(language.English)
	for _, result := range results {
		fmt.Printf("--- Results for scenario %s ---\n", result.Name)
		_, _ = p.Printf("Payoff time         | %s", result.Summary.PayoffDuration)
		if result.Summary.Capped {
			fmt.Printf(" (schedule capped before payoff)")
		}
		fmt.Printf("\n")
		fmt.Printf("Total interest      | %s\n", format.Currency(result.Summary.TotalInterest))
		fmt.Printf("Total paid          | %s\n", format.Currency(result.Summary.TotalPaid))
		fmt.Printf("Approx. eff. rate   | %.2f%% (heuristic)\n", result.Summary.ApproxEffectiveRatePercent)

		if showSchedule {
			fmt.Printf("\nMonth | Year | Opening       | Interest    | Payment     | Prepayment  | Closing\n")
			fmt.Printf("_____ | ____ | _____________ | ___________ | ___________ | ___________ | _____________\n")
			for _, record := range result.Result.Records {
				_, _ = p.Printf("%5d | %4d | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f\n",
					record.MonthIndex, record.YearNumber, record.OpeningPrincipal,
					record.Interest, record.DuePayment, record.PrepaymentApplied,
					record.ClosingPrincipal)
			}
		}
		fmt.Printf("\n")
	}

	if comparison != nil {
		fmt.Printf("--- Comparison against %s ---\n", comparison.Baseline)
		for _, delta := range comparison.Deltas {
			_, _ = p.Printf("%s: interest %+.2f, total paid %+.2f, payoff %+d months, eff. rate %+.2f%%\n",
				delta.Name, delta.InterestDelta, delta.TotalPaidDelta,
				delta.PayoffMonthsDelta, delta.EffectiveRateDelta)
		}
	}
}

// CsvFormat outputs the schedules in comma-separated value format, one row
// per month with a column group per scenario.
func CsvFormat(results []compare.ScenarioResult) {
	if len(results) == 0 {
		return
	}

	months := 0
	for _, result := range results {
		if len(result.Result.Records) > months {
			months = len(result.Result.Records)
		}
	}

	fmt.Printf(`"month"`)
	for _, result := range results {
		for _, column := range []string{"opening", "savings", "interest", "payment", "prepayment", "closing"} {
			fmt.Printf(`,"%s (%s)"`, column, result.Name)
		}
	}
	fmt.Printf("\n")

	for month := 0; month < months; month++ {
		fmt.Printf(`"%d"`, month)
		for _, result := range results {
			if month >= len(result.Result.Records) {
				fmt.Print(strings.Repeat(`,""`, 6))
				continue
			}
			record := result.Result.Records[month]
			fmt.Printf(`,"%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
				record.OpeningPrincipal, record.SavingsBalance, record.Interest,
				record.DuePayment, record.PrepaymentApplied, record.ClosingPrincipal)
		}
		fmt.Printf("\n")
	}
}
