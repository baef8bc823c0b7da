package entities

import (
	"time"

	"mentcare/domain/core/valueobjects"
	"mentcare/domain/events"
	pkgerrors "mentcare/pkg/errors"
)

// Appointment represents a scheduled consultation for a patient
type Appointment struct {
	id        string
	patientID valueobjects.PatientID
	when      time.Time
	reason    string

	uncommittedEvents []events.DomainEvent
}

// NewAppointment schedules an appointment and raises an AppointmentScheduled
// event
func NewAppointment(id string, patientID valueobjects.PatientID, when time.Time, reason string) (*Appointment, error) {
	if patientID.IsZero() {
		return nil, pkgerrors.NewValidationError("appointment requires a patient ID")
	}
	if when.IsZero() {
		return nil, pkgerrors.NewValidationError("appointment time cannot be zero")
	}

	appt := &Appointment{
		id:        id,
		patientID: patientID,
		when:      when,
		reason:    reason,
	}

	appt.uncommittedEvents = append(appt.uncommittedEvents,
		events.NewAppointmentScheduled(patientID, when, reason, time.Now()))

	return appt, nil
}

// ReconstructAppointment rebuilds an appointment from persisted state
func ReconstructAppointment(id string, patientID valueobjects.PatientID, when time.Time, reason string) *Appointment {
	return &Appointment{
		id:        id,
		patientID: patientID,
		when:      when,
		reason:    reason,
	}
}

// ID returns the appointment identifier
func (a *Appointment) ID() string {
	return a.id
}

// PatientID returns the patient this appointment belongs to
func (a *Appointment) PatientID() valueobjects.PatientID {
	return a.patientID
}

// When returns the scheduled time
func (a *Appointment) When() time.Time {
	return a.when
}

// Reason returns the appointment reason
func (a *Appointment) Reason() string {
	return a.reason
}

// IsImminentAt reports whether the appointment falls inside the reminder
// window starting at now. Appointments in the past are never imminent; one
// exactly at now or exactly at the window edge is.
func (a *Appointment) IsImminentAt(now time.Time, window time.Duration) bool {
	delta := a.when.Sub(now)
	return delta >= 0 && delta <= window
}

// GetUncommittedEvents returns events pending publication
func (a *Appointment) GetUncommittedEvents() []events.DomainEvent {
	return a.uncommittedEvents
}

// MarkEventsAsCommitted clears pending events after publication
func (a *Appointment) MarkEventsAsCommitted() {
	a.uncommittedEvents = nil
}
