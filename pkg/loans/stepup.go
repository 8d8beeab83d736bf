package loans

// StepUpPolicy determines the scheduled payment for a given month. The policy
// is consulted with the persisted scheduled payment and returns both the
// amount due this month and the value to persist for the next month, so the
// simulator can thread the state explicitly instead of closing over it.
type StepUpPolicy interface {
	// resolve returns (due this month, persisted payment going forward).
	resolve(monthIndex int, current float64) (float64, float64)
}

type stepUpNone struct{}

type stepUpMonthlyAdd struct {
	amount float64
}

type stepUpYearlyPercent struct {
	percent float64
}

// StepUpNone keeps the scheduled payment constant for the life of the loan.
func StepUpNone() StepUpPolicy {
	return stepUpNone{}
}

// StepUpMonthlyAdd adds a flat amount on top of the scheduled payment every
// month. The persisted payment is never mutated; the add-on does not compound.
func StepUpMonthlyAdd(amount float64) StepUpPolicy {
	return stepUpMonthlyAdd{amount: amount}
}

// StepUpYearlyPercent raises the persisted scheduled payment by a percentage
// at every 12-month boundary after the first year, so the escalation
// compounds year over year.
func StepUpYearlyPercent(percent float64) StepUpPolicy {
	return stepUpYearlyPercent{percent: percent}
}

func (stepUpNone) resolve(_ int, current float64) (float64, float64) {
	return current, current
}

func (s stepUpMonthlyAdd) resolve(_ int, current float64) (float64, float64) {
	return current + s.amount, current
}

func (s stepUpYearlyPercent) resolve(monthIndex int, current float64) (float64, float64) {
	if monthIndex > 0 && monthIndex%12 == 0 {
		current = current * (1 + s.percent/100.0)
	}
	return current, current
}
