package validators

import (
	"strings"
	"time"

	"mentcare/domain/config"
	pkgerrors "mentcare/pkg/errors"
)

// PatientValidator enforces domain rules on patient input before an entity
// is constructed
type PatientValidator struct {
	config *config.DomainConfig
}

// NewPatientValidator creates a validator with the given domain configuration
func NewPatientValidator(cfg *config.DomainConfig) *PatientValidator {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &PatientValidator{config: cfg}
}

// ValidateName checks the patient name against domain rules
func (v *PatientValidator) ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return pkgerrors.NewValidationError("patient name cannot be empty")
	}
	if len(trimmed) > v.config.MaxNameLength {
		return pkgerrors.NewValidationError("patient name exceeds maximum length")
	}
	return nil
}

// ValidateBirthDate checks the birth date against domain rules
func (v *PatientValidator) ValidateBirthDate(birthDate time.Time, now time.Time) error {
	if birthDate.IsZero() {
		return pkgerrors.NewValidationError("birth date is required")
	}
	if !v.config.AllowFutureBirthDates && birthDate.After(now) {
		return pkgerrors.NewValidationError("birth date cannot be in the future")
	}
	return nil
}

// ValidateReason checks an appointment reason against domain rules
func (v *PatientValidator) ValidateReason(reason string) error {
	if len(reason) > v.config.MaxReasonLength {
		return pkgerrors.NewValidationError("appointment reason exceeds maximum length")
	}
	return nil
}
