package valueobjects

import (
	"strings"

	pkgerrors "mentcare/pkg/errors"
)

// RiskLevel represents a patient's risk classification
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskLevels lists the closed enumeration of valid risk levels
func RiskLevels() []RiskLevel {
	return []RiskLevel{RiskLow, RiskMedium, RiskHigh}
}

// NewRiskLevel creates a RiskLevel from raw input, rejecting anything outside
// the enumeration. Used on the write path so bad input fails before any side
// effect.
func NewRiskLevel(raw string) (RiskLevel, error) {
	level := RiskLevel(strings.ToLower(strings.TrimSpace(raw)))
	switch level {
	case RiskLow, RiskMedium, RiskHigh:
		return level, nil
	default:
		return "", pkgerrors.NewValidationError("risk must be one of: low, medium, high")
	}
}

// ParseRiskLevel is the lenient variant used on the read path: unknown values
// degrade to RiskLow instead of failing, so a single malformed row cannot
// break classification of the rest of the data set.
func ParseRiskLevel(raw string) RiskLevel {
	level, err := NewRiskLevel(raw)
	if err != nil {
		return RiskLow
	}
	return level
}

// IsHigh reports whether this level is the high-risk classification
func (r RiskLevel) IsHigh() bool {
	return r == RiskHigh
}

// String returns the string representation of the RiskLevel
func (r RiskLevel) String() string {
	return string(r)
}
