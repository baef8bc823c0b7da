package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mentcare/application/ports"
	"mentcare/domain/core/entities"
	"mentcare/domain/core/valueobjects"
	"mentcare/infrastructure/persistence/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientRepository_Contract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) ports.PatientRepository {
		return NewPatientRepository(filepath.Join(t.TempDir(), "patients.csv"))
	})
}

func newTestRepo(t *testing.T) (*PatientRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patients.csv")
	return NewPatientRepository(path), path
}

func storedPatient(t *testing.T, id, name, birthDate, risk string) *entities.Patient {
	t.Helper()
	pid, err := valueobjects.NewPatientID(id)
	require.NoError(t, err)
	bd, err := time.Parse(birthDateLayout, birthDate)
	require.NoError(t, err)
	return entities.ReconstructPatient(pid, name, bd, risk, time.Now())
}

func TestPatientRepository_MissingFileIsEmptyStore(t *testing.T) {
	repo, _ := newTestRepo(t)

	all, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestPatientRepository_SaveAndReload(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, storedPatient(t, "p001", "Max Mustermann", "1980-01-12", "high")))
	require.NoError(t, repo.Save(ctx, storedPatient(t, "p002", "Erika Musterfrau", "1972-05-03", "low")))

	// a fresh repository over the same file sees the saved rows
	reopened := NewPatientRepository(path)
	all, err := reopened.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Max Mustermann", all[0].Name())
	assert.Equal(t, valueobjects.RiskHigh, all[0].Risk())
	assert.Equal(t, time.Date(1972, 5, 3, 0, 0, 0, 0, time.UTC), all[1].BirthDate())
}

func TestPatientRepository_SaveUpserts(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, storedPatient(t, "p001", "Max Mustermann", "1980-01-12", "low")))
	require.NoError(t, repo.Save(ctx, storedPatient(t, "p001", "Max Mustermann", "1980-01-12", "high")))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, valueobjects.RiskHigh, all[0].Risk())
}

func TestPatientRepository_RowFormat(t *testing.T) {
	repo, path := newTestRepo(t)

	require.NoError(t, repo.Save(context.Background(), storedPatient(t, "p001", "Max Mustermann", "1980-01-12", "high")))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "p001,Max Mustermann,1980-01-12,high\n", string(raw))
}

func TestPatientRepository_FindByID(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, storedPatient(t, "p001", "Max Mustermann", "1980-01-12", "medium")))

	pid, err := valueobjects.NewPatientID("p001")
	require.NoError(t, err)
	found, err := repo.FindByID(ctx, pid)
	require.NoError(t, err)
	assert.Equal(t, valueobjects.RiskMedium, found.Risk())

	missing, err := valueobjects.NewPatientID("p999")
	require.NoError(t, err)
	_, err = repo.FindByID(ctx, missing)
	assert.Error(t, err)
}

func TestPatientRepository_UnknownRiskRowReadsAsLow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patients.csv")
	require.NoError(t, os.WriteFile(path, []byte("p001,Max Mustermann,1980-01-12,bogus\n"), 0o644))

	repo := NewPatientRepository(path)
	all, err := repo.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, valueobjects.RiskLow, all[0].Risk())
}
