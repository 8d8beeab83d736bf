package config

import (
	"testing"

	"github.com/loansim/loan-compare/pkg/loans"
)

func TestToLoanConfig(t *testing.T) {
	scenario := Scenario{
		Name:   "Full policy",
		Active: true,
		Loan: Loan{
			Principal:         1000000,
			TenureYears:       10,
			TenureExtraMonths: 3,
			AnnualRatePercent: 9.5,
			StepUp:            StepUpConfig{Mode: StepUpModeMonthlyAdd, Amount: 500},
			Prepayment: PrepaymentConfig{
				OneTimeAmount:         50000,
				OneTimeMonth:          6,
				RecurringAnnualAmount: 25000,
			},
			SavingsOffset: SavingsOffsetConfig{
				Enabled:            true,
				StartBalance:       150000,
				MonthlyIncrement:   -2000,
				TransferEveryYears: 3,
				TransferAmount:     75000,
			},
		},
	}

	cfg := scenario.ToLoanConfig()

	if cfg.Name != "Full policy" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.TenureMonths != 123 {
		t.Errorf("TenureMonths = %d, expected 123", cfg.TenureMonths)
	}
	if cfg.Prepay.OneTimeAmount != 50000 || cfg.Prepay.OneTimeMonth != 6 || cfg.Prepay.RecurringAnnualAmount != 25000 {
		t.Errorf("unexpected prepayment: %+v", cfg.Prepay)
	}
	if cfg.Offset == nil {
		t.Fatal("Offset should be set when the savings offset is enabled")
	}
	if cfg.Offset.StartBalance != 150000 || cfg.Offset.MonthlyIncrement != -2000 ||
		cfg.Offset.TransferEveryYears != 3 || cfg.Offset.TransferAmount != 75000 {
		t.Errorf("unexpected offset: %+v", cfg.Offset)
	}
}

func TestToLoanConfigDisabledOffset(t *testing.T) {
	scenario := Scenario{
		Name: "Plain",
		Loan: Loan{
			Principal:   500000,
			TenureYears: 15,
			// Populated fields must not leak through when disabled.
			SavingsOffset: SavingsOffsetConfig{StartBalance: 99999, TransferAmount: 99999},
		},
	}

	cfg := scenario.ToLoanConfig()
	if cfg.Offset != nil {
		t.Errorf("Offset = %+v, expected nil for disabled offset", cfg.Offset)
	}
}

func TestStepUpConfigToPolicy(t *testing.T) {
	sim := loans.NewSimulator(nil)
	base := Loan{Principal: 1000000, TenureYears: 10, AnnualRatePercent: 10}

	none := Scenario{Name: "none", Loan: base}
	noneResult := sim.Simulate(none.ToLoanConfig())

	stepped := Scenario{Name: "stepped", Loan: base}
	stepped.Loan.StepUp = StepUpConfig{Mode: StepUpModeYearlyPercent, Percent: 10}
	steppedResult := sim.Simulate(stepped.ToLoanConfig())

	if steppedResult.MonthsToPayoff >= noneResult.MonthsToPayoff {
		t.Error("yearlyPercent step-up should shorten the payoff")
	}

	// Unknown and under-specified modes degrade to no step-up.
	unknown := Scenario{Name: "unknown", Loan: base}
	unknown.Loan.StepUp = StepUpConfig{Mode: "bogus", Amount: 500}
	unknownResult := sim.Simulate(unknown.ToLoanConfig())
	if unknownResult.MonthsToPayoff != noneResult.MonthsToPayoff {
		t.Error("unknown stepUp mode should behave like none")
	}

	zeroAmount := Scenario{Name: "zero", Loan: base}
	zeroAmount.Loan.StepUp = StepUpConfig{Mode: StepUpModeMonthlyAdd}
	zeroResult := sim.Simulate(zeroAmount.ToLoanConfig())
	if zeroResult.MonthsToPayoff != noneResult.MonthsToPayoff {
		t.Error("monthlyAdd without an amount should behave like none")
	}
}
