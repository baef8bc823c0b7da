package handlers

import (
	"context"
	"testing"
	"time"

	"mentcare/application/queries"
	"mentcare/domain/core/entities"
	"mentcare/domain/core/valueobjects"
	pkgerrors "mentcare/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPatientRepo struct {
	patients []*entities.Patient
	allCalls int
}

func (r *stubPatientRepo) Save(ctx context.Context, patient *entities.Patient) error {
	r.patients = append(r.patients, patient)
	return nil
}

func (r *stubPatientRepo) FindByID(ctx context.Context, id valueobjects.PatientID) (*entities.Patient, error) {
	for _, p := range r.patients {
		if p.ID().Equals(id) {
			return p, nil
		}
	}
	return nil, pkgerrors.NewNotFoundError("patient", id.String())
}

func (r *stubPatientRepo) All(ctx context.Context) ([]*entities.Patient, error) {
	r.allCalls++
	result := make([]*entities.Patient, 0, len(r.patients))
	result = append(result, r.patients...)
	return result, nil
}

func stubPatient(t *testing.T, id, name, birthDate, risk string) *entities.Patient {
	t.Helper()
	pid, err := valueobjects.NewPatientID(id)
	require.NoError(t, err)
	bd, err := time.Parse("2006-01-02", birthDate)
	require.NoError(t, err)
	return entities.ReconstructPatient(pid, name, bd, risk, time.Now())
}

func seededRepo(t *testing.T) *stubPatientRepo {
	t.Helper()
	return &stubPatientRepo{patients: []*entities.Patient{
		stubPatient(t, "p001", "Max Mustermann", "1980-01-12", "high"),
		stubPatient(t, "p002", "Erika Musterfrau", "1972-05-03", "low"),
	}}
}

func TestPatientQueryHandler_HandleGetPatient(t *testing.T) {
	handler := NewPatientQueryHandler(seededRepo(t), zap.NewNop())

	view, err := handler.HandleGetPatient(context.Background(), queries.GetPatientQuery{PatientID: "p001"})
	require.NoError(t, err)

	assert.Equal(t, "p001", view.ID)
	assert.Equal(t, "Max Mustermann", view.Name)
	assert.Equal(t, "1980-01-12", view.BirthDate)
	assert.Equal(t, "high", view.Risk)
}

func TestPatientQueryHandler_HandleGetPatient_NotFound(t *testing.T) {
	handler := NewPatientQueryHandler(&stubPatientRepo{}, zap.NewNop())

	_, err := handler.HandleGetPatient(context.Background(), queries.GetPatientQuery{PatientID: "missing"})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestPatientQueryHandler_HandleListPatients(t *testing.T) {
	handler := NewPatientQueryHandler(seededRepo(t), zap.NewNop())

	view, err := handler.HandleListPatients(context.Background(), queries.ListPatientsQuery{})
	require.NoError(t, err)

	assert.Equal(t, 2, view.Total)
	require.Len(t, view.Patients, 2)
}

func TestPatientQueryHandler_HandleListPatients_RiskFilter(t *testing.T) {
	handler := NewPatientQueryHandler(seededRepo(t), zap.NewNop())

	view, err := handler.HandleListPatients(context.Background(), queries.ListPatientsQuery{Risk: "high"})
	require.NoError(t, err)

	require.Len(t, view.Patients, 1)
	assert.Equal(t, "p001", view.Patients[0].ID)
	assert.Equal(t, 1, view.Total)
}

func TestPatientQueryHandler_HandleListPatients_EmptyNeverNil(t *testing.T) {
	handler := NewPatientQueryHandler(&stubPatientRepo{}, zap.NewNop())

	view, err := handler.HandleListPatients(context.Background(), queries.ListPatientsQuery{})
	require.NoError(t, err)

	assert.NotNil(t, view.Patients)
	assert.Equal(t, 0, view.Total)
}
