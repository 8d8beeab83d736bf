package loans

import "github.com/loansim/loan-compare/pkg/mathutil"

// SavingsOffset links a savings balance to the loan. The balance reduces the
// interest-bearing principal ("interest on balance minus savings") without
// counting as repayment; optionally a portion is periodically transferred out
// of savings into a genuine prepayment. A nil *SavingsOffset disables the
// offset entirely.
type SavingsOffset struct {
	StartBalance     float64
	MonthlyIncrement float64 // may be negative; the balance never goes below 0

	// Every TransferEveryYears years, up to TransferAmount is moved out of
	// savings and applied as extra principal. Zero years disables transfers.
	TransferEveryYears int
	TransferAmount     float64
}

// accrue applies the monthly increment to the savings balance, clamped to a
// floor of zero.
func (o *SavingsOffset) accrue(savings float64) float64 {
	return mathutil.ClampNonNegative(savings + o.MonthlyIncrement)
}

// effectivePrincipal returns the interest-bearing principal after the offset.
func (o *SavingsOffset) effectivePrincipal(openingPrincipal, savings float64) float64 {
	return mathutil.ClampNonNegative(openingPrincipal - savings)
}

// transferDue returns the amount moved from savings into this month's
// prepayment, or 0 when no transfer is scheduled. Unlike the running offset,
// a transfer permanently depletes savings.
func (o *SavingsOffset) transferDue(monthIndex int, savings float64) float64 {
	if o.TransferEveryYears <= 0 || o.TransferAmount <= 0 {
		return 0
	}
	if monthIndex <= 0 || monthIndex%(o.TransferEveryYears*12) != 0 {
		return 0
	}
	return mathutil.Min(o.TransferAmount, savings)
}
