package report

import (
	"context"

	"mentcare/application/ports"
	"mentcare/domain/core/aggregates"
	"go.uber.org/zap"
)

// ConsoleWriter emits the census to the structured log
type ConsoleWriter struct {
	logger *zap.Logger
}

// NewConsoleWriter creates a console report writer
func NewConsoleWriter(logger *zap.Logger) *ConsoleWriter {
	return &ConsoleWriter{logger: logger}
}

var _ ports.ReportWriter = (*ConsoleWriter)(nil)

// Write emits the census
func (w *ConsoleWriter) Write(ctx context.Context, census aggregates.RiskCensus) error {
	w.logger.Info("Risk census",
		zap.Int("count", census.Count),
		zap.Int("high", census.High),
		zap.Int("medium", census.Medium),
		zap.Int("low", census.Low),
	)
	return nil
}
