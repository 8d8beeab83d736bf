package config

import (
	"github.com/loansim/loan-compare/pkg/loans"
)

// ToLoanConfig converts a configured scenario loan into the simulator's
// input type. Unknown step-up modes degrade to no step-up; a disabled
// savings offset converts to nil so the simulator never sees its fields.
func (scenario *Scenario) ToLoanConfig() loans.LoanConfig {
	loan := scenario.Loan

	cfg := loans.LoanConfig{
		Name:              scenario.Name,
		Principal:         loan.Principal,
		TenureMonths:      loan.TenureMonths(),
		AnnualRatePercent: loan.AnnualRatePercent,
		StepUp:            loan.StepUp.toPolicy(),
		Prepay: loans.Prepayment{
			OneTimeAmount:         loan.Prepayment.OneTimeAmount,
			OneTimeMonth:          loan.Prepayment.OneTimeMonth,
			RecurringAnnualAmount: loan.Prepayment.RecurringAnnualAmount,
		},
	}

	if loan.SavingsOffset.Enabled {
		cfg.Offset = &loans.SavingsOffset{
			StartBalance:       loan.SavingsOffset.StartBalance,
			MonthlyIncrement:   loan.SavingsOffset.MonthlyIncrement,
			TransferEveryYears: loan.SavingsOffset.TransferEveryYears,
			TransferAmount:     loan.SavingsOffset.TransferAmount,
		}
	}

	return cfg
}

func (s StepUpConfig) toPolicy() loans.StepUpPolicy {
	switch s.Mode {
	case StepUpModeMonthlyAdd:
		if s.Amount > 0 {
			return loans.StepUpMonthlyAdd(s.Amount)
		}
	case StepUpModeYearlyPercent:
		if s.Percent > 0 {
			return loans.StepUpYearlyPercent(s.Percent)
		}
	}
	return loans.StepUpNone()
}
