package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mentcare/application/ports"
	"mentcare/application/queries"
	"mentcare/domain/core/aggregates"
	"go.uber.org/zap"
)

// RiskReportHandler computes the risk census read model
type RiskReportHandler struct {
	patientRepo ports.PatientRepository
	cache       ports.Cache
	logger      *zap.Logger
}

// NewRiskReportHandler creates a new risk report handler
func NewRiskReportHandler(patientRepo ports.PatientRepository, cache ports.Cache, logger *zap.Logger) *RiskReportHandler {
	return &RiskReportHandler{
		patientRepo: patientRepo,
		cache:       cache,
		logger:      logger,
	}
}

const (
	riskCensusCacheKey = "report:risk_census"
	censusCacheTTL     = 30 * time.Second
)

// Handle computes the census over the full patient population. Results are
// cached briefly; the census is a snapshot, not a live counter.
func (h *RiskReportHandler) Handle(ctx context.Context, query queries.RiskReportQuery) (aggregates.RiskCensus, error) {
	if err := query.Validate(); err != nil {
		return aggregates.RiskCensus{}, fmt.Errorf("invalid query: %w", err)
	}

	if h.cache != nil {
		if cached, found := h.cache.Get(ctx, riskCensusCacheKey); found {
			if census, ok := censusFromCache(cached); ok {
				return census, nil
			}
		}
	}

	patients, err := h.patientRepo.All(ctx)
	if err != nil {
		return aggregates.RiskCensus{}, fmt.Errorf("failed to list patients: %w", err)
	}

	census := aggregates.ComputeRiskCensus(patients)

	if h.cache != nil {
		if err := h.cache.Set(ctx, riskCensusCacheKey, census, censusCacheTTL); err != nil {
			h.logger.Debug("Failed to cache risk census", zap.Error(err))
		}
	}

	return census, nil
}

// censusFromCache recovers a census from a cached value. In-process caches
// hand back the typed value; the Redis adapter decodes its stored JSON into
// an untyped map, so anything else goes through a JSON round trip.
func censusFromCache(v interface{}) (aggregates.RiskCensus, bool) {
	if census, ok := v.(aggregates.RiskCensus); ok {
		return census, true
	}

	data, err := json.Marshal(v)
	if err != nil {
		return aggregates.RiskCensus{}, false
	}
	var census aggregates.RiskCensus
	if err := json.Unmarshal(data, &census); err != nil {
		return aggregates.RiskCensus{}, false
	}
	return census, true
}
