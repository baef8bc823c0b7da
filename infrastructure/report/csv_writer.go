// Package report provides report writer adapters. All of them emit the same
// census; only the output format differs.
package report

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"sync"

	"mentcare/application/ports"
	"mentcare/domain/core/aggregates"
	pkgerrors "mentcare/pkg/errors"
)

// CSVWriter emits the census as a two-line CSV document: a header row
// followed by one value row.
//
//	count,high,medium,low
//	2,1,0,1
type CSVWriter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewCSVWriter creates a CSV report writer
func NewCSVWriter(out io.Writer) *CSVWriter {
	return &CSVWriter{out: out}
}

var _ ports.ReportWriter = (*CSVWriter)(nil)

// Write emits the census
func (w *CSVWriter) Write(ctx context.Context, census aggregates.RiskCensus) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	cw := csv.NewWriter(w.out)
	rows := [][]string{
		{"count", "high", "medium", "low"},
		{
			strconv.Itoa(census.Count),
			strconv.Itoa(census.High),
			strconv.Itoa(census.Medium),
			strconv.Itoa(census.Low),
		},
	}
	if err := cw.WriteAll(rows); err != nil {
		return pkgerrors.NewDeliveryError("csv-report", err)
	}
	return nil
}
