package entities

import (
	"testing"
	"time"

	"mentcare/domain/core/valueobjects"
	"mentcare/domain/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPatient(t *testing.T, risk valueobjects.RiskLevel) *Patient {
	t.Helper()
	id, err := valueobjects.NewPatientID("p001")
	require.NoError(t, err)
	birthDate := time.Date(1980, 1, 12, 0, 0, 0, 0, time.UTC)
	patient, err := NewPatient(id, "Max Mustermann", birthDate, risk)
	require.NoError(t, err)
	return patient
}

func TestNewPatient(t *testing.T) {
	patient := newTestPatient(t, valueobjects.RiskHigh)

	assert.Equal(t, "p001", patient.ID().String())
	assert.Equal(t, "Max Mustermann", patient.Name())
	assert.Equal(t, valueobjects.RiskHigh, patient.Risk())
	assert.True(t, patient.IsHighRisk())
	assert.False(t, patient.RegisteredAt().IsZero())
}

func TestNewPatient_RaisesRegisteredEvent(t *testing.T) {
	patient := newTestPatient(t, valueobjects.RiskLow)

	raised := patient.GetUncommittedEvents()
	require.Len(t, raised, 1)

	registered, ok := raised[0].(events.PatientRegistered)
	require.True(t, ok)
	assert.Equal(t, "p001", registered.GetAggregateID())
	assert.Equal(t, "patient.registered", registered.GetEventType())
	assert.Equal(t, valueobjects.RiskLow, registered.Risk)

	patient.MarkEventsAsCommitted()
	assert.Empty(t, patient.GetUncommittedEvents())
}

func TestNewPatient_Invalid(t *testing.T) {
	birthDate := time.Date(1980, 1, 12, 0, 0, 0, 0, time.UTC)
	id, err := valueobjects.NewPatientID("p001")
	require.NoError(t, err)

	_, err = NewPatient(valueobjects.PatientID{}, "Max", birthDate, valueobjects.RiskLow)
	assert.Error(t, err)

	_, err = NewPatient(id, "", birthDate, valueobjects.RiskLow)
	assert.Error(t, err)

	_, err = NewPatient(id, "Max", birthDate, valueobjects.RiskLevel("critical"))
	assert.Error(t, err)
}

func TestPatient_WithRisk_DoesNotMutateReceiver(t *testing.T) {
	patient := newTestPatient(t, valueobjects.RiskLow)

	updated, err := patient.WithRisk(valueobjects.RiskHigh)
	require.NoError(t, err)

	assert.Equal(t, valueobjects.RiskLow, patient.Risk())
	assert.Equal(t, valueobjects.RiskHigh, updated.Risk())
	assert.True(t, updated.ID().Equals(patient.ID()))
	assert.Equal(t, patient.Name(), updated.Name())
	assert.Equal(t, patient.RegisteredAt(), updated.RegisteredAt())
}

func TestPatient_WithRisk_RaisesChangeEvent(t *testing.T) {
	patient := newTestPatient(t, valueobjects.RiskLow)

	updated, err := patient.WithRisk(valueobjects.RiskHigh)
	require.NoError(t, err)

	raised := updated.GetUncommittedEvents()
	require.Len(t, raised, 1)

	changed, ok := raised[0].(events.RiskChanged)
	require.True(t, ok)
	assert.Equal(t, valueobjects.RiskLow, changed.OldRisk)
	assert.Equal(t, valueobjects.RiskHigh, changed.NewRisk)
}

func TestPatient_WithRisk_SameLevelRaisesNothing(t *testing.T) {
	patient := newTestPatient(t, valueobjects.RiskMedium)

	updated, err := patient.WithRisk(valueobjects.RiskMedium)
	require.NoError(t, err)

	assert.Empty(t, updated.GetUncommittedEvents())
}

func TestPatient_WithRisk_RejectsUnknownLevel(t *testing.T) {
	patient := newTestPatient(t, valueobjects.RiskLow)

	_, err := patient.WithRisk(valueobjects.RiskLevel("severe"))
	assert.Error(t, err)
}

func TestReconstructPatient_LenientRisk(t *testing.T) {
	id, err := valueobjects.NewPatientID("p002")
	require.NoError(t, err)
	birthDate := time.Date(1972, 5, 3, 0, 0, 0, 0, time.UTC)

	patient := ReconstructPatient(id, "Erika Musterfrau", birthDate, "bogus", time.Now())

	assert.Equal(t, valueobjects.RiskLow, patient.Risk())
	assert.Empty(t, patient.GetUncommittedEvents())
}
