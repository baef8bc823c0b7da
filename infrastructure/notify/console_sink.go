package notify

import (
	"context"

	"mentcare/application/ports"
	"go.uber.org/zap"
)

// ConsoleAlertSink writes alerts to the structured log. Useful for local
// development and as a dead-simple fallback sink.
type ConsoleAlertSink struct {
	logger *zap.Logger
}

// NewConsoleAlertSink creates a console sink
func NewConsoleAlertSink(logger *zap.Logger) *ConsoleAlertSink {
	return &ConsoleAlertSink{logger: logger}
}

var _ ports.AlertSink = (*ConsoleAlertSink)(nil)

// Notify logs one alert
func (s *ConsoleAlertSink) Notify(ctx context.Context, subject, message string) error {
	s.logger.Info("ALERT",
		zap.String("subject", subject),
		zap.String("message", message),
	)
	return nil
}
