package loans

import (
	"fmt"

	"github.com/loansim/loan-compare/pkg/constants"
	"github.com/loansim/loan-compare/pkg/mathutil"
	"go.uber.org/zap"
)

// LoanConfig holds the parameters for one loan simulation. It is immutable
// for the duration of a simulation run.
type LoanConfig struct {
	Name              string
	Principal         float64
	TenureMonths      int
	AnnualRatePercent float64
	StepUp            StepUpPolicy // nil means no step-up
	Prepay            Prepayment
	Offset            *SavingsOffset // nil means no offset
}

// MonthRecord captures the state of one simulated month. All currency fields
// are non-negative.
type MonthRecord struct {
	MonthIndex         int // 0-based
	YearNumber         int // floor(MonthIndex/12) + 1
	OpeningPrincipal   float64
	SavingsBalance     float64 // after the monthly increment, before transfer
	EffectivePrincipal float64 // interest-bearing principal after the offset
	MonthlyRate        float64
	Interest           float64
	DuePayment         float64
	PrincipalPaid      float64
	PrepaymentApplied  float64
	ClosingPrincipal   float64
	ClosingSavings     float64
}

// SimulationResult is the ordered schedule plus aggregates for one run.
type SimulationResult struct {
	Records        []MonthRecord
	TotalInterest  float64
	TotalPaid      float64
	MonthsToPayoff int
	PayoffDuration string

	// Capped is true when the schedule hit MaxScheduleMonths without the
	// principal reaching zero; the last record then carries a positive
	// ClosingPrincipal. This is a safety bound, not an error.
	Capped bool
}

// Simulator runs loan amortization simulations. Each call to Simulate is
// pure: identical input yields an identical output sequence, and no state
// survives across calls.
type Simulator struct {
	logger *zap.Logger
}

// NewSimulator creates a new simulator instance.
func NewSimulator(logger *zap.Logger) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{logger: logger}
}

// Simulate produces the full month-by-month schedule for the given loan.
// The simulator never raises: negative inputs are clamped and degenerate
// configurations (zero principal or tenure) yield an empty schedule with
// zero aggregates.
func (s *Simulator) Simulate(cfg LoanConfig) SimulationResult {
	principal := mathutil.ClampNonNegative(cfg.Principal)
	term := cfg.TenureMonths
	monthlyRate := mathutil.ClampNonNegative(cfg.AnnualRatePercent) /
		(constants.PercentageMultiplier * constants.MonthsPerYear)

	stepUp := cfg.StepUp
	if stepUp == nil {
		stepUp = StepUpNone()
	}

	var result SimulationResult
	if principal <= 0 || term <= 0 {
		result.PayoffDuration = payoffDuration(0)
		return result
	}

	scheduled := MonthlyPayment(principal, monthlyRate, term)
	s.logger.Debug(fmt.Sprintf("scheduled payment %.2f for loan %s", scheduled, cfg.Name),
		zap.String("op", "loans.Simulate"),
	)

	balance := principal
	savings := 0.00
	if cfg.Offset != nil {
		savings = mathutil.ClampNonNegative(cfg.Offset.StartBalance)
	}

	for month := 0; balance > 0 && month < constants.MaxScheduleMonths; month++ {
		due, persisted := stepUp.resolve(month, scheduled)
		scheduled = persisted

		opening := balance
		effective := opening
		if cfg.Offset != nil {
			savings = cfg.Offset.accrue(savings)
			effective = cfg.Offset.effectivePrincipal(opening, savings)
		}
		savingsAfterAccrual := savings
		interest := InterestOn(effective, monthlyRate)

		extra := cfg.Prepay.amountDue(month)
		if cfg.Offset != nil {
			if transfer := cfg.Offset.transferDue(month, savings); transfer > 0 {
				s.logger.Debug(fmt.Sprintf("month %d: transferring %.2f from savings into principal for loan %s",
					month, transfer, cfg.Name),
					zap.String("op", "loans.Simulate"),
				)
				savings -= transfer
				extra += transfer
			}
		}
		if extra > 0 {
			s.logger.Debug(fmt.Sprintf("month %d: applying extra principal payment %.2f for loan %s",
				month, extra, cfg.Name),
				zap.String("op", "loans.Simulate"),
			)
		}

		// Never pay more than what remains, so the closing month cannot go
		// negative.
		due = mathutil.Min(due, opening+interest)
		principalPaid := mathutil.ClampNonNegative(due - interest)
		extra = mathutil.Min(extra, mathutil.ClampNonNegative(opening-principalPaid))

		closing := mathutil.ClampNonNegative(opening - principalPaid - extra)
		if mathutil.Round(closing) == 0 {
			// We will get machine error otherwise so just set to 0.
			closing = 0
		}

		result.Records = append(result.Records, MonthRecord{
			MonthIndex:         month,
			YearNumber:         month/constants.MonthsPerYear + 1,
			OpeningPrincipal:   opening,
			SavingsBalance:     savingsAfterAccrual,
			EffectivePrincipal: effective,
			MonthlyRate:        monthlyRate,
			Interest:           interest,
			DuePayment:         due,
			PrincipalPaid:      principalPaid,
			PrepaymentApplied:  extra,
			ClosingPrincipal:   closing,
			ClosingSavings:     savings,
		})
		result.TotalInterest += interest
		result.TotalPaid += due + extra

		balance = closing
	}

	result.MonthsToPayoff = len(result.Records)
	result.Capped = balance > 0
	result.PayoffDuration = payoffDuration(result.MonthsToPayoff)

	if result.Capped {
		s.logger.Debug(fmt.Sprintf("loan %s did not amortize within %d months, capping schedule",
			cfg.Name, constants.MaxScheduleMonths),
			zap.String("op", "loans.Simulate"),
		)
	}

	return result
}

// payoffDuration renders a month count as a human-readable duration.
func payoffDuration(months int) string {
	return fmt.Sprintf("%d years %d months",
		months/constants.MonthsPerYear, months%constants.MonthsPerYear)
}
