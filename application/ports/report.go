package ports

import (
	"context"

	"mentcare/domain/core/aggregates"
)

// ReportWriter is the outbound port for emitting the risk census in some
// output format
type ReportWriter interface {
	Write(ctx context.Context, census aggregates.RiskCensus) error
}
