// Package mysql persists patients in a relational table. Schema:
//
//	CREATE TABLE patients (
//	    id            VARCHAR(64)  PRIMARY KEY,
//	    name          VARCHAR(255) NOT NULL,
//	    birth_date    DATE         NOT NULL,
//	    risk          VARCHAR(16)  NOT NULL,
//	    registered_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mentcare/application/ports"
	"mentcare/domain/core/entities"
	"mentcare/domain/core/valueobjects"
	pkgerrors "mentcare/pkg/errors"

	_ "github.com/go-sql-driver/mysql"
)

const dateLayout = "2006-01-02"

// PatientRepository implements the patient store on MySQL
type PatientRepository struct {
	db *sql.DB
}

// NewPatientRepository creates a MySQL-backed patient repository
func NewPatientRepository(db *sql.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

var _ ports.PatientRepository = (*PatientRepository)(nil)

// Save upserts a patient row
func (r *PatientRepository) Save(ctx context.Context, patient *entities.Patient) error {
	if patient == nil || patient.ID().IsZero() {
		return pkgerrors.NewValidationError("cannot save patient without ID")
	}

	query := `INSERT INTO patients (id, name, birth_date, risk, registered_at)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE name = VALUES(name), birth_date = VALUES(birth_date), risk = VALUES(risk)`

	_, err := r.db.ExecContext(ctx, query,
		patient.ID().String(),
		patient.Name(),
		patient.BirthDate().Format(dateLayout),
		patient.Risk().String(),
		patient.RegisteredAt(),
	)
	if err != nil {
		return pkgerrors.NewStorageError("save", err)
	}
	return nil
}

// FindByID returns the patient with the given ID
func (r *PatientRepository) FindByID(ctx context.Context, id valueobjects.PatientID) (*entities.Patient, error) {
	query := `SELECT id, name, birth_date, risk, registered_at FROM patients WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, id.String())
	patient, err := scanPatient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkgerrors.NewNotFoundError("patient", id.String())
	}
	if err != nil {
		return nil, pkgerrors.NewStorageError("find", err)
	}
	return patient, nil
}

// All returns every stored patient ordered by ID. Never nil.
func (r *PatientRepository) All(ctx context.Context) ([]*entities.Patient, error) {
	query := `SELECT id, name, birth_date, risk, registered_at FROM patients ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, pkgerrors.NewStorageError("list", err)
	}
	defer rows.Close()

	patients := make([]*entities.Patient, 0)
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, pkgerrors.NewStorageError("list", err)
		}
		patients = append(patients, patient)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.NewStorageError("list", err)
	}
	return patients, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPatient(row rowScanner) (*entities.Patient, error) {
	var (
		idRaw        string
		name         string
		birthDateRaw string
		risk         string
		registeredAt time.Time
	)
	if err := row.Scan(&idRaw, &name, &birthDateRaw, &risk, &registeredAt); err != nil {
		return nil, err
	}

	id, err := valueobjects.NewPatientID(idRaw)
	if err != nil {
		return nil, err
	}
	birthDate, err := time.Parse(dateLayout, birthDateRaw)
	if err != nil {
		return nil, err
	}
	return entities.ReconstructPatient(id, name, birthDate, risk, registeredAt), nil
}
