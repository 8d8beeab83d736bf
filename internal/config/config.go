// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Configuration holds all configuration for loan-compare.
type Configuration struct {
	Scenarios []Scenario    `yaml:"scenarios"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format   string `yaml:"format,omitempty"`   // pretty, csv
	Schedule bool   `yaml:"schedule,omitempty"` // include the per-month table in pretty output
}

// Scenario holds one loan configuration to simulate under a given name.
type Scenario struct {
	Name   string `yaml:"name"`
	Active bool   `yaml:"active"`
	Loan   Loan   `yaml:"loan"`
}

// Loan indicates a loan and its policy parameters.
type Loan struct {
	Principal         float64             `yaml:"principal"`
	TenureYears       int                 `yaml:"tenureYears"`
	TenureExtraMonths int                 `yaml:"tenureExtraMonths"`
	AnnualRatePercent float64             `yaml:"annualRatePercent"`
	StepUp            StepUpConfig        `yaml:"stepUp"`
	Prepayment        PrepaymentConfig    `yaml:"prepayment"`
	SavingsOffset     SavingsOffsetConfig `yaml:"savingsOffset"`
}

// StepUpConfig selects a payment escalation mode.
type StepUpConfig struct {
	Mode    string  `yaml:"mode"`    // none, monthlyAdd, yearlyPercent
	Amount  float64 `yaml:"amount"`  // monthlyAdd: flat amount added each month
	Percent float64 `yaml:"percent"` // yearlyPercent: compounding yearly escalation
}

// PrepaymentConfig holds one-time and recurring extra principal payments.
type PrepaymentConfig struct {
	OneTimeAmount         float64 `yaml:"oneTimeAmount"`
	OneTimeMonth          int     `yaml:"oneTimeMonth"`
	RecurringAnnualAmount float64 `yaml:"recurringAnnualAmount"`
}

// SavingsOffsetConfig holds the optional overdraft-linked savings offset.
type SavingsOffsetConfig struct {
	Enabled            bool    `yaml:"enabled"`
	StartBalance       float64 `yaml:"startBalance"`
	MonthlyIncrement   float64 `yaml:"monthlyIncrement"`
	TransferEveryYears int     `yaml:"transferEveryYears"`
	TransferAmount     float64 `yaml:"transferAmount"`
}

// Step-up modes accepted in configuration files.
const (
	StepUpModeNone          = "none"
	StepUpModeMonthlyAdd    = "monthlyAdd"
	StepUpModeYearlyPercent = "yearlyPercent"
)

// TenureMonths returns the total tenure in months.
func (loan *Loan) TenureMonths() int {
	return loan.TenureYears*12 + loan.TenureExtraMonths
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. The simulator clamps defensively, so problems surface
// here as warnings rather than errors.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	activeCount := 0
	for _, scenario := range c.Scenarios {
		if scenario.Active {
			activeCount++
		}
		warnings = append(warnings, scenario.Loan.validate(scenario.Name)...)
	}
	if activeCount == 0 {
		warnings = append(warnings, "no active scenarios configured; nothing will be simulated")
	}

	return warnings
}

func (loan *Loan) validate(scenarioName string) []string {
	var warnings []string

	if loan.Principal < 0 {
		warnings = append(warnings, fmt.Sprintf("scenario %s: negative principal will be clamped to 0", scenarioName))
	}
	if loan.AnnualRatePercent < 0 {
		warnings = append(warnings, fmt.Sprintf("scenario %s: negative interest rate will be clamped to 0", scenarioName))
	}
	if loan.TenureMonths() <= 0 {
		warnings = append(warnings, fmt.Sprintf("scenario %s: tenure is zero; the schedule will be empty", scenarioName))
	}

	switch loan.StepUp.Mode {
	case "", StepUpModeNone:
	case StepUpModeMonthlyAdd:
		if loan.StepUp.Amount <= 0 {
			warnings = append(warnings, fmt.Sprintf("scenario %s: stepUp mode %s requires a positive amount", scenarioName, StepUpModeMonthlyAdd))
		}
	case StepUpModeYearlyPercent:
		if loan.StepUp.Percent <= 0 {
			warnings = append(warnings, fmt.Sprintf("scenario %s: stepUp mode %s requires a positive percent", scenarioName, StepUpModeYearlyPercent))
		}
	default:
		warnings = append(warnings, fmt.Sprintf("scenario %s: unknown stepUp mode %q; treating as %s", scenarioName, loan.StepUp.Mode, StepUpModeNone))
	}

	if loan.Prepayment.OneTimeAmount < 0 || loan.Prepayment.RecurringAnnualAmount < 0 {
		warnings = append(warnings, fmt.Sprintf("scenario %s: negative prepayment amounts are ignored", scenarioName))
	}
	if loan.Prepayment.OneTimeMonth < 0 {
		warnings = append(warnings, fmt.Sprintf("scenario %s: negative one-time prepayment month never matches", scenarioName))
	}

	if loan.SavingsOffset.Enabled {
		if loan.SavingsOffset.StartBalance < 0 {
			warnings = append(warnings, fmt.Sprintf("scenario %s: negative savings start balance will be clamped to 0", scenarioName))
		}
		if loan.SavingsOffset.TransferEveryYears > 0 && loan.SavingsOffset.TransferAmount <= 0 {
			warnings = append(warnings, fmt.Sprintf("scenario %s: savings transfers configured without a positive amount", scenarioName))
		}
	}

	return warnings
}
