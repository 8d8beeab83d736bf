package loans

// Prepayment configures extra principal payments on top of the scheduled
// payment. The one-time and recurring rules are independent and additive;
// both may fire in the same month.
type Prepayment struct {
	// OneTimeAmount is paid exactly once, in the month whose index equals
	// OneTimeMonth.
	OneTimeAmount float64
	OneTimeMonth  int

	// RecurringAnnualAmount is paid at the end of every 12-month block
	// (months 12, 24, ..., never month 0).
	RecurringAnnualAmount float64
}

// amountDue returns the total extra principal due in the given month.
func (p Prepayment) amountDue(monthIndex int) float64 {
	amount := 0.00
	if p.OneTimeAmount > 0 && monthIndex == p.OneTimeMonth {
		amount += p.OneTimeAmount
	}
	if p.RecurringAnnualAmount > 0 && monthIndex > 0 && monthIndex%12 == 0 {
		amount += p.RecurringAnnualAmount
	}
	return amount
}
