package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		StoreBackend: StoreMemory,
		ReportFormat: ReportConsole,
	}
}

func TestValidate_ReportFormat(t *testing.T) {
	for _, format := range []string{ReportConsole, ReportCSV, ReportJSON} {
		cfg := validConfig()
		cfg.ReportFormat = format
		assert.NoError(t, cfg.Validate(), format)
	}

	cfg := validConfig()
	cfg.ReportFormat = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REPORT_FORMAT")
}

func TestValidate_StoreBackend(t *testing.T) {
	cfg := validConfig()
	cfg.StoreBackend = "postgres"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.StoreBackend = StoreMySQL
	assert.Error(t, cfg.Validate(), "mysql without a DSN must be rejected")

	cfg.MySQLDSN = "user:pass@tcp(localhost:3306)/mentcare"
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_ReadsReportFormat(t *testing.T) {
	t.Setenv("REPORT_FORMAT", ReportJSON)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ReportJSON, cfg.ReportFormat)
}
