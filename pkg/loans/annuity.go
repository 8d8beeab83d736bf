// Package loans implements the month-by-month loan amortization simulator:
// annuity payment calculation, payment step-up policies, one-time and
// recurring prepayments, and an optional overdraft-linked savings offset.
package loans

import "math"

// MonthlyPayment calculates the fixed periodic payment that fully amortizes
// principal over termMonths at the given monthly rate, using the standard
// annuity formula. All arithmetic is double precision; no currency rounding
// happens inside the simulator (rounding is a presentation concern).
func MonthlyPayment(principal, monthlyRate float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	power := math.Pow(1.00+monthlyRate, float64(termMonths))
	return principal * monthlyRate * power / (power - 1.00)
}

// InterestOn calculates one month of interest on the given principal.
func InterestOn(principal, monthlyRate float64) float64 {
	if principal <= 0 || monthlyRate <= 0 {
		return 0
	}
	return principal * monthlyRate
}
