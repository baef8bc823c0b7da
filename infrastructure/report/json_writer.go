package report

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"mentcare/application/ports"
	"mentcare/domain/core/aggregates"
	pkgerrors "mentcare/pkg/errors"
)

// JSONWriter emits the census as a single JSON object
type JSONWriter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewJSONWriter creates a JSON report writer
func NewJSONWriter(out io.Writer) *JSONWriter {
	return &JSONWriter{out: out}
}

var _ ports.ReportWriter = (*JSONWriter)(nil)

// Write emits the census
func (w *JSONWriter) Write(ctx context.Context, census aggregates.RiskCensus) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	enc := json.NewEncoder(w.out)
	if err := enc.Encode(census); err != nil {
		return pkgerrors.NewDeliveryError("json-report", err)
	}
	return nil
}
