package mysql

import (
	"context"
	"testing"
	"time"

	"mentcare/domain/core/entities"
	"mentcare/domain/core/valueobjects"
	pkgerrors "mentcare/pkg/errors"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var patientColumns = []string{"id", "name", "birth_date", "risk", "registered_at"}

func newMockRepo(t *testing.T) (*PatientRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPatientRepository(db), mock
}

func TestPatientRepository_Save(t *testing.T) {
	repo, mock := newMockRepo(t)

	pid, err := valueobjects.NewPatientID("p001")
	require.NoError(t, err)
	registeredAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	patient := entities.ReconstructPatient(pid, "Max Mustermann",
		time.Date(1980, 1, 12, 0, 0, 0, 0, time.UTC), "high", registeredAt)

	mock.ExpectExec("INSERT INTO patients").
		WithArgs("p001", "Max Mustermann", "1980-01-12", "high", registeredAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), patient))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientRepository_FindByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	registeredAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, name, birth_date, risk, registered_at FROM patients WHERE").
		WithArgs("p001").
		WillReturnRows(sqlmock.NewRows(patientColumns).
			AddRow("p001", "Max Mustermann", "1980-01-12", "high", registeredAt))

	pid, err := valueobjects.NewPatientID("p001")
	require.NoError(t, err)
	patient, err := repo.FindByID(context.Background(), pid)
	require.NoError(t, err)

	assert.Equal(t, "Max Mustermann", patient.Name())
	assert.Equal(t, valueobjects.RiskHigh, patient.Risk())
	assert.Equal(t, time.Date(1980, 1, 12, 0, 0, 0, 0, time.UTC), patient.BirthDate())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, name, birth_date, risk, registered_at FROM patients WHERE").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(patientColumns))

	pid, err := valueobjects.NewPatientID("missing")
	require.NoError(t, err)
	_, err = repo.FindByID(context.Background(), pid)

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestPatientRepository_All(t *testing.T) {
	repo, mock := newMockRepo(t)

	registeredAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, name, birth_date, risk, registered_at FROM patients ORDER BY id").
		WillReturnRows(sqlmock.NewRows(patientColumns).
			AddRow("p001", "Max Mustermann", "1980-01-12", "high", registeredAt).
			AddRow("p002", "Erika Musterfrau", "1972-05-03", "low", registeredAt))

	all, err := repo.All(context.Background())
	require.NoError(t, err)

	require.Len(t, all, 2)
	assert.Equal(t, "p001", all[0].ID().String())
	assert.Equal(t, valueobjects.RiskLow, all[1].Risk())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientRepository_All_EmptyNeverNil(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, name, birth_date, risk, registered_at FROM patients ORDER BY id").
		WillReturnRows(sqlmock.NewRows(patientColumns))

	all, err := repo.All(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, all)
	assert.Empty(t, all)
}
