package di

import (
	"testing"

	"mentcare/infrastructure/config"
	"mentcare/infrastructure/report"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestProvideReportWriter_SelectsFormat(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		format string
		want   interface{}
	}{
		{config.ReportConsole, &report.ConsoleWriter{}},
		{config.ReportCSV, &report.CSVWriter{}},
		{config.ReportJSON, &report.JSONWriter{}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cfg := &config.Config{ReportFormat: tt.format}
			assert.IsType(t, tt.want, ProvideReportWriter(cfg, logger))
		})
	}
}

func TestProvideReportWriter_DefaultsToConsole(t *testing.T) {
	cfg := &config.Config{}
	assert.IsType(t, &report.ConsoleWriter{}, ProvideReportWriter(cfg, zap.NewNop()))
}
