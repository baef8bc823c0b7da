package events

import (
	"time"

	"mentcare/domain/core/valueobjects"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// Patient Events

// PatientRegistered is raised when a new patient is registered
type PatientRegistered struct {
	BaseEvent
	PatientID valueobjects.PatientID `json:"patient_id"`
	Name      string                 `json:"name"`
	Risk      valueobjects.RiskLevel `json:"risk"`
}

// NewPatientRegistered creates a PatientRegistered event
func NewPatientRegistered(patientID valueobjects.PatientID, name string, risk valueobjects.RiskLevel, timestamp time.Time) PatientRegistered {
	return PatientRegistered{
		BaseEvent: BaseEvent{
			AggregateID: patientID.String(),
			EventType:   "patient.registered",
			Timestamp:   timestamp,
			Version:     1,
		},
		PatientID: patientID,
		Name:      name,
		Risk:      risk,
	}
}

// RiskChanged is raised when a patient's risk classification changes
type RiskChanged struct {
	BaseEvent
	PatientID valueobjects.PatientID `json:"patient_id"`
	OldRisk   valueobjects.RiskLevel `json:"old_risk"`
	NewRisk   valueobjects.RiskLevel `json:"new_risk"`
}

// NewRiskChanged creates a RiskChanged event
func NewRiskChanged(patientID valueobjects.PatientID, oldRisk, newRisk valueobjects.RiskLevel, timestamp time.Time) RiskChanged {
	return RiskChanged{
		BaseEvent: BaseEvent{
			AggregateID: patientID.String(),
			EventType:   "patient.risk_changed",
			Timestamp:   timestamp,
			Version:     1,
		},
		PatientID: patientID,
		OldRisk:   oldRisk,
		NewRisk:   newRisk,
	}
}

// Appointment Events

// AppointmentScheduled is raised when an appointment is scheduled
type AppointmentScheduled struct {
	BaseEvent
	PatientID valueobjects.PatientID `json:"patient_id"`
	When      time.Time              `json:"when"`
	Reason    string                 `json:"reason"`
}

// NewAppointmentScheduled creates an AppointmentScheduled event
func NewAppointmentScheduled(patientID valueobjects.PatientID, when time.Time, reason string, timestamp time.Time) AppointmentScheduled {
	return AppointmentScheduled{
		BaseEvent: BaseEvent{
			AggregateID: patientID.String(),
			EventType:   "appointment.scheduled",
			Timestamp:   timestamp,
			Version:     1,
		},
		PatientID: patientID,
		When:      when,
		Reason:    reason,
	}
}

// ReminderSent is raised after a reminder notification for an imminent
// appointment has been dispatched
type ReminderSent struct {
	BaseEvent
	PatientID valueobjects.PatientID `json:"patient_id"`
	When      time.Time              `json:"when"`
}

// NewReminderSent creates a ReminderSent event
func NewReminderSent(patientID valueobjects.PatientID, when time.Time, timestamp time.Time) ReminderSent {
	return ReminderSent{
		BaseEvent: BaseEvent{
			AggregateID: patientID.String(),
			EventType:   "appointment.reminder_sent",
			Timestamp:   timestamp,
			Version:     1,
		},
		PatientID: patientID,
		When:      when,
	}
}
