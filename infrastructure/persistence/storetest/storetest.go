// Package storetest is a shared conformance suite for patient store
// adapters. Every adapter of the repository port runs the same suite, so
// swapping one store for another cannot change observable behavior.
package storetest

import (
	"context"
	"testing"
	"time"

	"mentcare/application/ports"
	"mentcare/domain/core/entities"
	"mentcare/domain/core/valueobjects"
	pkgerrors "mentcare/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory builds a fresh, empty patient repository for one subtest
type Factory func(t *testing.T) ports.PatientRepository

// Run exercises the PatientRepository contract against the adapter built by
// factory
func Run(t *testing.T, factory Factory) {
	t.Run("AllOnEmptyStoreIsEmptyNotNil", func(t *testing.T) {
		repo := factory(t)

		all, err := repo.All(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("SaveThenFindByID", func(t *testing.T) {
		repo := factory(t)
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, patient(t, "p001", "Max Mustermann", "high")))

		found, err := repo.FindByID(ctx, id(t, "p001"))
		require.NoError(t, err)
		assert.Equal(t, "p001", found.ID().String())
		assert.Equal(t, "Max Mustermann", found.Name())
		assert.Equal(t, valueobjects.RiskHigh, found.Risk())
		assert.Equal(t, time.Date(1980, 1, 12, 0, 0, 0, 0, time.UTC), found.BirthDate())
	})

	t.Run("SaveOverwritesExistingID", func(t *testing.T) {
		repo := factory(t)
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, patient(t, "p001", "Max Mustermann", "low")))
		require.NoError(t, repo.Save(ctx, patient(t, "p001", "Max Mustermann", "high")))

		all, err := repo.All(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, valueobjects.RiskHigh, all[0].Risk())
	})

	t.Run("FindByIDUnknownIsNotFound", func(t *testing.T) {
		repo := factory(t)

		_, err := repo.FindByID(context.Background(), id(t, "missing"))

		require.Error(t, err)
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("AllReturnsEverySavedPatient", func(t *testing.T) {
		repo := factory(t)
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, patient(t, "p001", "Max Mustermann", "high")))
		require.NoError(t, repo.Save(ctx, patient(t, "p002", "Erika Musterfrau", "low")))

		all, err := repo.All(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)

		byID := make(map[string]valueobjects.RiskLevel, len(all))
		for _, p := range all {
			byID[p.ID().String()] = p.Risk()
		}
		assert.Equal(t, valueobjects.RiskHigh, byID["p001"])
		assert.Equal(t, valueobjects.RiskLow, byID["p002"])
	})

	t.Run("SaveRejectsNilPatient", func(t *testing.T) {
		repo := factory(t)

		assert.Error(t, repo.Save(context.Background(), nil))
	})
}

func id(t *testing.T, raw string) valueobjects.PatientID {
	t.Helper()
	pid, err := valueobjects.NewPatientID(raw)
	require.NoError(t, err)
	return pid
}

func patient(t *testing.T, rawID, name, risk string) *entities.Patient {
	t.Helper()
	birthDate := time.Date(1980, 1, 12, 0, 0, 0, 0, time.UTC)
	return entities.ReconstructPatient(id(t, rawID), name, birthDate, risk, time.Now())
}
