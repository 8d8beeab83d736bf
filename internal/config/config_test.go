package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleConfig = `
logging:
  level: debug
  format: console
output:
  format: pretty
  schedule: true
scenarios:
  - name: Baseline
    active: true
    loan:
      principal: 5000000
      tenureYears: 20
      annualRatePercent: 8.5
  - name: With offset
    active: true
    loan:
      principal: 5000000
      tenureYears: 20
      tenureExtraMonths: 6
      annualRatePercent: 8.5
      stepUp:
        mode: yearlyPercent
        percent: 5
      prepayment:
        oneTimeAmount: 100000
        oneTimeMonth: 12
        recurringAnnualAmount: 50000
      savingsOffset:
        enabled: true
        startBalance: 200000
        monthlyIncrement: 5000
        transferEveryYears: 2
        transferAmount: 100000
  - name: Disabled
    active: false
    loan:
      principal: 1
      tenureYears: 1
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration() error: %v", err)
	}

	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("unexpected logging config: %+v", conf.Logging)
	}
	if conf.Output.Format != "pretty" || !conf.Output.Schedule {
		t.Errorf("unexpected output config: %+v", conf.Output)
	}
	if len(conf.Scenarios) != 3 {
		t.Fatalf("scenarios = %d, expected 3", len(conf.Scenarios))
	}

	baseline := conf.Scenarios[0]
	if baseline.Name != "Baseline" || !baseline.Active {
		t.Errorf("unexpected baseline scenario: %+v", baseline)
	}
	if baseline.Loan.Principal != 5000000 || baseline.Loan.TenureMonths() != 240 {
		t.Errorf("unexpected baseline loan: %+v", baseline.Loan)
	}

	offset := conf.Scenarios[1]
	if offset.Loan.TenureMonths() != 246 {
		t.Errorf("TenureMonths() = %d, expected 246", offset.Loan.TenureMonths())
	}
	if offset.Loan.StepUp.Mode != StepUpModeYearlyPercent || offset.Loan.StepUp.Percent != 5 {
		t.Errorf("unexpected stepUp config: %+v", offset.Loan.StepUp)
	}
	if offset.Loan.Prepayment.OneTimeMonth != 12 {
		t.Errorf("OneTimeMonth = %d, expected 12", offset.Loan.Prepayment.OneTimeMonth)
	}
	if !offset.Loan.SavingsOffset.Enabled || offset.Loan.SavingsOffset.StartBalance != 200000 {
		t.Errorf("unexpected savingsOffset config: %+v", offset.Loan.SavingsOffset)
	}

	if conf.Scenarios[2].Active {
		t.Error("third scenario should be inactive")
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name             string
		conf             Configuration
		expectedFragment string
	}{
		{
			name:             "No active scenarios",
			conf:             Configuration{},
			expectedFragment: "no active scenarios",
		},
		{
			name: "Negative principal",
			conf: Configuration{Scenarios: []Scenario{{
				Name: "A", Active: true,
				Loan: Loan{Principal: -1, TenureYears: 10},
			}}},
			expectedFragment: "negative principal",
		},
		{
			name: "Negative interest rate",
			conf: Configuration{Scenarios: []Scenario{{
				Name: "A", Active: true,
				Loan: Loan{Principal: 1000, TenureYears: 10, AnnualRatePercent: -2},
			}}},
			expectedFragment: "negative interest rate",
		},
		{
			name: "Zero tenure",
			conf: Configuration{Scenarios: []Scenario{{
				Name: "A", Active: true,
				Loan: Loan{Principal: 1000},
			}}},
			expectedFragment: "tenure is zero",
		},
		{
			name: "Unknown stepUp mode",
			conf: Configuration{Scenarios: []Scenario{{
				Name: "A", Active: true,
				Loan: Loan{Principal: 1000, TenureYears: 10, StepUp: StepUpConfig{Mode: "quarterly"}},
			}}},
			expectedFragment: "unknown stepUp mode",
		},
		{
			name: "MonthlyAdd without amount",
			conf: Configuration{Scenarios: []Scenario{{
				Name: "A", Active: true,
				Loan: Loan{Principal: 1000, TenureYears: 10, StepUp: StepUpConfig{Mode: StepUpModeMonthlyAdd}},
			}}},
			expectedFragment: "requires a positive amount",
		},
		{
			name: "Transfers without amount",
			conf: Configuration{Scenarios: []Scenario{{
				Name: "A", Active: true,
				Loan: Loan{Principal: 1000, TenureYears: 10,
					SavingsOffset: SavingsOffsetConfig{Enabled: true, TransferEveryYears: 2}},
			}}},
			expectedFragment: "transfers configured without a positive amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.conf.ValidateConfiguration()

			found := false
			for _, warning := range warnings {
				if strings.Contains(warning, tt.expectedFragment) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("warnings %v do not contain %q", warnings, tt.expectedFragment)
			}
		})
	}
}

func TestValidateConfigurationClean(t *testing.T) {
	conf := Configuration{Scenarios: []Scenario{{
		Name: "A", Active: true,
		Loan: Loan{Principal: 100000, TenureYears: 10, AnnualRatePercent: 8},
	}}}

	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}
