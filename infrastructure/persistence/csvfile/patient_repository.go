// Package csvfile persists patients as comma-separated rows, one patient per
// line: id,name,birthdate,risk. Birth dates use the YYYY-MM-DD layout.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"mentcare/application/ports"
	"mentcare/domain/core/entities"
	"mentcare/domain/core/valueobjects"
	pkgerrors "mentcare/pkg/errors"
)

const birthDateLayout = "2006-01-02"

// PatientRepository stores patients in a CSV file. Writes rewrite the whole
// file through a temp-and-rename so a crash never leaves a half-written
// store behind.
type PatientRepository struct {
	mu   sync.Mutex
	path string
}

// NewPatientRepository creates a CSV-backed patient repository at path. The
// file is created lazily on first save; a missing file reads as an empty
// store.
func NewPatientRepository(path string) *PatientRepository {
	return &PatientRepository{path: path}
}

var _ ports.PatientRepository = (*PatientRepository)(nil)

// Save upserts one patient row and rewrites the file
func (r *PatientRepository) Save(ctx context.Context, patient *entities.Patient) error {
	if patient == nil || patient.ID().IsZero() {
		return pkgerrors.NewValidationError("cannot save patient without ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	patients, err := r.load()
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range patients {
		if existing.ID().Equals(patient.ID()) {
			patients[i] = patient
			replaced = true
			break
		}
	}
	if !replaced {
		patients = append(patients, patient)
	}

	return r.store(patients)
}

// FindByID returns the patient with the given ID
func (r *PatientRepository) FindByID(ctx context.Context, id valueobjects.PatientID) (*entities.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	patients, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, p := range patients {
		if p.ID().Equals(id) {
			return p, nil
		}
	}
	return nil, pkgerrors.NewNotFoundError("patient", id.String())
}

// All returns every stored patient in file order. Never nil.
func (r *PatientRepository) All(ctx context.Context) ([]*entities.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// load reads and parses the whole file. Rows with an unknown risk level are
// kept with the low classification rather than dropped.
func (r *PatientRepository) load() ([]*entities.Patient, error) {
	file, err := os.Open(r.path)
	if os.IsNotExist(err) {
		return make([]*entities.Patient, 0), nil
	}
	if err != nil {
		return nil, pkgerrors.NewStorageError("open", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 4

	records, err := reader.ReadAll()
	if err != nil {
		return nil, pkgerrors.NewStorageError("read", err)
	}

	patients := make([]*entities.Patient, 0, len(records))
	for _, row := range records {
		id, err := valueobjects.NewPatientID(row[0])
		if err != nil {
			return nil, pkgerrors.NewStorageError("parse", fmt.Errorf("bad patient ID in row %v: %w", row, err))
		}
		birthDate, err := time.Parse(birthDateLayout, row[2])
		if err != nil {
			return nil, pkgerrors.NewStorageError("parse", fmt.Errorf("bad birth date in row %v: %w", row, err))
		}
		patients = append(patients, entities.ReconstructPatient(id, row[1], birthDate, row[3], time.Time{}))
	}
	return patients, nil
}

// store writes all rows to a temp file, then renames it over the store
func (r *PatientRepository) store(patients []*entities.Patient) error {
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, "patients-*.csv")
	if err != nil {
		return pkgerrors.NewStorageError("write", err)
	}
	tmpPath := tmp.Name()

	writer := csv.NewWriter(tmp)
	for _, p := range patients {
		row := []string{
			p.ID().String(),
			p.Name(),
			p.BirthDate().Format(birthDateLayout),
			p.Risk().String(),
		}
		if err := writer.Write(row); err != nil {
			tmp.Close()
			os.Remove(tmpPath)
			return pkgerrors.NewStorageError("write", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return pkgerrors.NewStorageError("write", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return pkgerrors.NewStorageError("write", err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return pkgerrors.NewStorageError("write", err)
	}
	return nil
}
