// Package memory provides in-process store adapters. They are the reference
// implementations for the persistence ports and back the test suites.
package memory

import (
	"context"
	"sort"
	"sync"

	"mentcare/application/ports"
	"mentcare/domain/core/entities"
	"mentcare/domain/core/valueobjects"
	pkgerrors "mentcare/pkg/errors"
)

// PatientRepository is a thread-safe in-memory patient store
type PatientRepository struct {
	mu       sync.RWMutex
	patients map[string]*entities.Patient
}

// NewPatientRepository creates an empty in-memory patient repository
func NewPatientRepository() *PatientRepository {
	return &PatientRepository{
		patients: make(map[string]*entities.Patient),
	}
}

var _ ports.PatientRepository = (*PatientRepository)(nil)

// Save stores a snapshot of the patient. Saving an existing ID overwrites
// the previous record.
func (r *PatientRepository) Save(ctx context.Context, patient *entities.Patient) error {
	if patient == nil || patient.ID().IsZero() {
		return pkgerrors.NewValidationError("cannot save patient without ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.patients[patient.ID().String()] = snapshot(patient)
	return nil
}

// FindByID returns the patient with the given ID
func (r *PatientRepository) FindByID(ctx context.Context, id valueobjects.PatientID) (*entities.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patient, ok := r.patients[id.String()]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("patient", id.String())
	}
	return snapshot(patient), nil
}

// All returns every stored patient ordered by ID. The result is never nil.
func (r *PatientRepository) All(ctx context.Context) ([]*entities.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		result = append(result, snapshot(p))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID().String() < result[j].ID().String()
	})
	return result, nil
}

// snapshot copies a patient so callers cannot alias stored state
func snapshot(p *entities.Patient) *entities.Patient {
	return entities.ReconstructPatient(p.ID(), p.Name(), p.BirthDate(), p.Risk().String(), p.RegisteredAt())
}
