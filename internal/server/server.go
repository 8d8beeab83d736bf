// Package server exposes the scenario comparison as a small HTTP JSON API:
// a YAML configuration is posted and the simulated schedules, aggregates,
// and cross-scenario deltas come back.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/loansim/loan-compare/internal/compare"
	"github.com/loansim/loan-compare/internal/config"
	"github.com/loansim/loan-compare/pkg/constants"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the compare API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/compare", h.handleCompare)
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type compareResponse struct {
	Scenarios  []scenarioPayload  `json:"scenarios"`
	Comparison *comparisonPayload `json:"comparison,omitempty"`
	Warnings   []string           `json:"warnings,omitempty"`
	Duration   string             `json:"duration"`
}

type scenarioPayload struct {
	Name                string     `json:"name"`
	MonthsToPayoff      int        `json:"monthsToPayoff"`
	PayoffDuration      string     `json:"payoffDuration"`
	TotalInterest       float64    `json:"totalInterest"`
	TotalPaid           float64    `json:"totalPaid"`
	ApproxEffectiveRate float64    `json:"approxEffectiveRatePercent"`
	Capped              bool       `json:"capped"`
	Records             []monthRow `json:"records"`
}

type monthRow struct {
	MonthIndex         int     `json:"monthIndex"`
	YearNumber         int     `json:"yearNumber"`
	OpeningPrincipal   float64 `json:"openingPrincipal"`
	SavingsBalance     float64 `json:"savingsBalance"`
	EffectivePrincipal float64 `json:"effectivePrincipal"`
	Interest           float64 `json:"interest"`
	DuePayment         float64 `json:"duePayment"`
	PrincipalPaid      float64 `json:"principalPaid"`
	PrepaymentApplied  float64 `json:"prepaymentApplied"`
	ClosingPrincipal   float64 `json:"closingPrincipal"`
	ClosingSavings     float64 `json:"closingSavings"`
}

type comparisonPayload struct {
	Baseline string         `json:"baseline"`
	Deltas   []deltaPayload `json:"deltas"`
}

type deltaPayload struct {
	Name               string  `json:"name"`
	InterestDelta      float64 `json:"interestDelta"`
	TotalPaidDelta     float64 `json:"totalPaidDelta"`
	PayoffMonthsDelta  int     `json:"payoffMonthsDelta"`
	EffectiveRateDelta float64 `json:"effectiveRateDelta"`
}

func (h *handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, h.maxUploadSize+1))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	defer func() {
		_ = r.Body.Close()
	}()
	if int64(len(body)) > h.maxUploadSize {
		h.writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("configuration exceeds the %d byte limit", h.maxUploadSize))
		return
	}

	var conf config.Configuration
	if err := yaml.Unmarshal(body, &conf); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse configuration: %v", err))
		return
	}

	warnings := conf.ValidateConfiguration()

	start := time.Now()
	results := compare.RunScenarios(h.logger, conf)
	comparison := compare.BuildComparison(results)
	elapsed := time.Since(start)

	h.logger.Info("processed compare request",
		zap.String("op", "server.handleCompare"),
		zap.Int("scenarios", len(results)),
		zap.Duration("duration", elapsed),
	)

	response := compareResponse{
		Warnings: warnings,
		Duration: elapsed.String(),
	}
	for _, result := range results {
		response.Scenarios = append(response.Scenarios, toScenarioPayload(result))
	}
	if comparison != nil {
		payload := comparisonPayload{Baseline: comparison.Baseline}
		for _, delta := range comparison.Deltas {
			payload.Deltas = append(payload.Deltas, deltaPayload{
				Name:               delta.Name,
				InterestDelta:      delta.InterestDelta,
				TotalPaidDelta:     delta.TotalPaidDelta,
				PayoffMonthsDelta:  delta.PayoffMonthsDelta,
				EffectiveRateDelta: delta.EffectiveRateDelta,
			})
		}
		response.Comparison = &payload
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func toScenarioPayload(result compare.ScenarioResult) scenarioPayload {
	payload := scenarioPayload{
		Name:                result.Name,
		MonthsToPayoff:      result.Summary.MonthsToPayoff,
		PayoffDuration:      result.Summary.PayoffDuration,
		TotalInterest:       result.Summary.TotalInterest,
		TotalPaid:           result.Summary.TotalPaid,
		ApproxEffectiveRate: result.Summary.ApproxEffectiveRatePercent,
		Capped:              result.Summary.Capped,
	}
	for _, record := range result.Result.Records {
		payload.Records = append(payload.Records, monthRow{
			MonthIndex:         record.MonthIndex,
			YearNumber:         record.YearNumber,
			OpeningPrincipal:   record.OpeningPrincipal,
			SavingsBalance:     record.SavingsBalance,
			EffectivePrincipal: record.EffectivePrincipal,
			Interest:           record.Interest,
			DuePayment:         record.DuePayment,
			PrincipalPaid:      record.PrincipalPaid,
			PrepaymentApplied:  record.PrepaymentApplied,
			ClosingPrincipal:   record.ClosingPrincipal,
			ClosingSavings:     record.ClosingSavings,
		})
	}
	return payload
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
