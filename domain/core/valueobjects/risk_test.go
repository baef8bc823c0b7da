package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRiskLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    RiskLevel
		wantErr bool
	}{
		{"low", RiskLow, false},
		{"medium", RiskMedium, false},
		{"high", RiskHigh, false},
		{"HIGH", RiskHigh, false},
		{"  High  ", RiskHigh, false},
		{"", "", true},
		{"critical", "", true},
		{"hig", "", true},
	}

	for _, tt := range tests {
		got, err := NewRiskLevel(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestParseRiskLevel_DefaultsToLow(t *testing.T) {
	assert.Equal(t, RiskLow, ParseRiskLevel("unknown"))
	assert.Equal(t, RiskLow, ParseRiskLevel(""))
	assert.Equal(t, RiskHigh, ParseRiskLevel("high"))
	assert.Equal(t, RiskHigh, ParseRiskLevel("HIGH"))
}

func TestRiskLevel_IsHigh(t *testing.T) {
	assert.True(t, RiskHigh.IsHigh())
	assert.False(t, RiskMedium.IsHigh())
	assert.False(t, RiskLow.IsHigh())
}

func TestRiskLevels_ClosedEnumeration(t *testing.T) {
	assert.Equal(t, []RiskLevel{RiskLow, RiskMedium, RiskHigh}, RiskLevels())
}
