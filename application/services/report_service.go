package services

import (
	"context"
	"fmt"

	"mentcare/application/ports"
	"mentcare/application/queries"
	qhandlers "mentcare/application/queries/handlers"
	"mentcare/domain/core/aggregates"
	"go.uber.org/zap"
)

// ReportService produces the risk census and emits it through a report
// writer. Which writer (CSV file, JSON, console) is a wiring decision.
type ReportService struct {
	reportHandler *qhandlers.RiskReportHandler
	writer        ports.ReportWriter
	logger        *zap.Logger
}

// NewReportService creates a new report service
func NewReportService(reportHandler *qhandlers.RiskReportHandler, writer ports.ReportWriter, logger *zap.Logger) *ReportService {
	return &ReportService{
		reportHandler: reportHandler,
		writer:        writer,
		logger:        logger,
	}
}

// ProduceReport computes the census and writes it out. The census is
// returned as well so callers can render it without a second pass.
func (s *ReportService) ProduceReport(ctx context.Context) (aggregates.RiskCensus, error) {
	census, err := s.reportHandler.Handle(ctx, queries.RiskReportQuery{})
	if err != nil {
		return aggregates.RiskCensus{}, err
	}

	if err := s.writer.Write(ctx, census); err != nil {
		return aggregates.RiskCensus{}, fmt.Errorf("failed to write report: %w", err)
	}

	s.logger.Info("Risk report produced",
		zap.Int("count", census.Count),
		zap.Int("high", census.High),
		zap.Int("medium", census.Medium),
		zap.Int("low", census.Low),
	)

	return census, nil
}
