package entities

import (
	"time"

	"mentcare/domain/core/valueobjects"
	"mentcare/domain/events"
	pkgerrors "mentcare/pkg/errors"
)

// Patient is the core entity of the care domain. It is immutable: operations
// that change state return a new Patient value instead of mutating the
// receiver.
type Patient struct {
	id           valueobjects.PatientID
	name         string
	birthDate    time.Time
	risk         valueobjects.RiskLevel
	registeredAt time.Time

	// Domain events raised by this instance, pending publication
	uncommittedEvents []events.DomainEvent
}

// NewPatient creates a new patient and raises a PatientRegistered event.
// All invariants are checked here so an invalid Patient cannot exist.
func NewPatient(id valueobjects.PatientID, name string, birthDate time.Time, risk valueobjects.RiskLevel) (*Patient, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("patient ID cannot be empty")
	}
	if name == "" {
		return nil, pkgerrors.NewValidationError("patient name cannot be empty")
	}
	if _, err := valueobjects.NewRiskLevel(risk.String()); err != nil {
		return nil, err
	}

	now := time.Now()
	patient := &Patient{
		id:           id,
		name:         name,
		birthDate:    birthDate,
		risk:         risk,
		registeredAt: now,
	}

	patient.uncommittedEvents = append(patient.uncommittedEvents,
		events.NewPatientRegistered(id, name, risk, now))

	return patient, nil
}

// ReconstructPatient rebuilds a patient from persisted state without raising
// events or re-running registration checks. Risk is parsed leniently so one
// bad stored value cannot make the whole record unloadable.
func ReconstructPatient(id valueobjects.PatientID, name string, birthDate time.Time, risk string, registeredAt time.Time) *Patient {
	return &Patient{
		id:           id,
		name:         name,
		birthDate:    birthDate,
		risk:         valueobjects.ParseRiskLevel(risk),
		registeredAt: registeredAt,
	}
}

// WithRisk returns a copy of the patient carrying the new risk level and a
// RiskChanged event. The receiver is left untouched.
func (p *Patient) WithRisk(newRisk valueobjects.RiskLevel) (*Patient, error) {
	if _, err := valueobjects.NewRiskLevel(newRisk.String()); err != nil {
		return nil, err
	}

	changed := &Patient{
		id:           p.id,
		name:         p.name,
		birthDate:    p.birthDate,
		risk:         newRisk,
		registeredAt: p.registeredAt,
	}

	if newRisk != p.risk {
		changed.uncommittedEvents = append(changed.uncommittedEvents,
			events.NewRiskChanged(p.id, p.risk, newRisk, time.Now()))
	}

	return changed, nil
}

// ID returns the patient's identifier
func (p *Patient) ID() valueobjects.PatientID {
	return p.id
}

// Name returns the patient's name
func (p *Patient) Name() string {
	return p.name
}

// BirthDate returns the patient's date of birth
func (p *Patient) BirthDate() time.Time {
	return p.birthDate
}

// Risk returns the patient's risk classification
func (p *Patient) Risk() valueobjects.RiskLevel {
	return p.risk
}

// RegisteredAt returns when the patient was registered
func (p *Patient) RegisteredAt() time.Time {
	return p.registeredAt
}

// IsHighRisk reports whether the patient carries the high-risk classification
func (p *Patient) IsHighRisk() bool {
	return p.risk.IsHigh()
}

// GetUncommittedEvents returns events pending publication
func (p *Patient) GetUncommittedEvents() []events.DomainEvent {
	return p.uncommittedEvents
}

// MarkEventsAsCommitted clears pending events after publication
func (p *Patient) MarkEventsAsCommitted() {
	p.uncommittedEvents = nil
}
