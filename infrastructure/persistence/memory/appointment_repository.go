package memory

import (
	"context"
	"sync"

	"mentcare/application/ports"
	"mentcare/domain/core/entities"
	"mentcare/domain/core/valueobjects"
	pkgerrors "mentcare/pkg/errors"
)

// AppointmentRepository is a thread-safe in-memory appointment store
type AppointmentRepository struct {
	mu           sync.RWMutex
	appointments []*entities.Appointment
}

// NewAppointmentRepository creates an empty in-memory appointment repository
func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{
		appointments: make([]*entities.Appointment, 0),
	}
}

var _ ports.AppointmentRepository = (*AppointmentRepository)(nil)

// Add stores a snapshot of the appointment
func (r *AppointmentRepository) Add(ctx context.Context, appointment *entities.Appointment) error {
	if appointment == nil || appointment.PatientID().IsZero() {
		return pkgerrors.NewValidationError("cannot save appointment without patient ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments = append(r.appointments, snapshotAppointment(appointment))
	return nil
}

// All returns every stored appointment in insertion order. Never nil.
func (r *AppointmentRepository) All(ctx context.Context) ([]*entities.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		result = append(result, snapshotAppointment(a))
	}
	return result, nil
}

// ByPatient returns the appointments for one patient. Never nil.
func (r *AppointmentRepository) ByPatient(ctx context.Context, id valueobjects.PatientID) ([]*entities.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Appointment, 0)
	for _, a := range r.appointments {
		if a.PatientID().Equals(id) {
			result = append(result, snapshotAppointment(a))
		}
	}
	return result, nil
}

func snapshotAppointment(a *entities.Appointment) *entities.Appointment {
	return entities.ReconstructAppointment(a.ID(), a.PatientID(), a.When(), a.Reason())
}
