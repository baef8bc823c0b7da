package memory

import (
	"context"
	"testing"
	"time"

	"mentcare/domain/core/entities"
	"mentcare/domain/core/valueobjects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAppointment(t *testing.T, id, patientID string, when time.Time) *entities.Appointment {
	t.Helper()
	pid, err := valueobjects.NewPatientID(patientID)
	require.NoError(t, err)
	return entities.ReconstructAppointment(id, pid, when, "checkup")
}

func TestAppointmentRepository_AddAndAll(t *testing.T) {
	repo := NewAppointmentRepository()
	ctx := context.Background()
	when := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	require.NoError(t, repo.Add(ctx, testAppointment(t, "a1", "p001", when)))
	require.NoError(t, repo.Add(ctx, testAppointment(t, "a2", "p002", when.Add(time.Hour))))

	all, err = repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a1", all[0].ID())
	assert.Equal(t, "a2", all[1].ID())
}

func TestAppointmentRepository_ByPatient(t *testing.T) {
	repo := NewAppointmentRepository()
	ctx := context.Background()
	when := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Add(ctx, testAppointment(t, "a1", "p001", when)))
	require.NoError(t, repo.Add(ctx, testAppointment(t, "a2", "p002", when)))
	require.NoError(t, repo.Add(ctx, testAppointment(t, "a3", "p001", when.Add(time.Hour))))

	pid, err := valueobjects.NewPatientID("p001")
	require.NoError(t, err)
	mine, err := repo.ByPatient(ctx, pid)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "a1", mine[0].ID())
	assert.Equal(t, "a3", mine[1].ID())

	other, err := valueobjects.NewPatientID("p999")
	require.NoError(t, err)
	none, err := repo.ByPatient(ctx, other)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestAppointmentRepository_RejectsNil(t *testing.T) {
	repo := NewAppointmentRepository()

	err := repo.Add(context.Background(), nil)

	assert.Error(t, err)
}
