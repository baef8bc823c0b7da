// Package ports defines the interfaces the application core depends on.
// Adapters in infrastructure/ implement them; the core never imports an
// adapter package.
package ports

import (
	"context"

	"mentcare/domain/core/entities"
	"mentcare/domain/core/valueobjects"
)

// PatientRepository is the outbound port for patient persistence.
//
// All never returns nil for an empty store; callers may range over the
// result without a nil check. Implementations must honor this so they stay
// substitutable for one another.
type PatientRepository interface {
	// Save persists a patient. Saving an existing ID overwrites the record.
	Save(ctx context.Context, patient *entities.Patient) error

	// FindByID returns the patient with the given ID, or a not-found error
	FindByID(ctx context.Context, id valueobjects.PatientID) (*entities.Patient, error)

	// All returns every stored patient. Empty store yields an empty,
	// non-nil slice.
	All(ctx context.Context) ([]*entities.Patient, error)
}

// AppointmentRepository is the outbound port for appointment persistence
type AppointmentRepository interface {
	// Add persists an appointment
	Add(ctx context.Context, appointment *entities.Appointment) error

	// All returns every stored appointment. Empty store yields an empty,
	// non-nil slice.
	All(ctx context.Context) ([]*entities.Appointment, error)

	// ByPatient returns the appointments for one patient
	ByPatient(ctx context.Context, id valueobjects.PatientID) ([]*entities.Appointment, error)
}
