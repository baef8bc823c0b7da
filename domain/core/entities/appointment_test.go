package entities

import (
	"testing"
	"time"

	"mentcare/domain/core/valueobjects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppointment(t *testing.T) {
	id, err := valueobjects.NewPatientID("p001")
	require.NoError(t, err)
	when := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	appt, err := NewAppointment("a1", id, when, "checkup")
	require.NoError(t, err)

	assert.Equal(t, "a1", appt.ID())
	assert.Equal(t, when, appt.When())
	assert.Equal(t, "checkup", appt.Reason())
	assert.Len(t, appt.GetUncommittedEvents(), 1)
}

func TestNewAppointment_Invalid(t *testing.T) {
	id, err := valueobjects.NewPatientID("p001")
	require.NoError(t, err)

	_, err = NewAppointment("a1", valueobjects.PatientID{}, time.Now(), "")
	assert.Error(t, err)

	_, err = NewAppointment("a1", id, time.Time{}, "")
	assert.Error(t, err)
}

func TestAppointment_IsImminentAt(t *testing.T) {
	id, err := valueobjects.NewPatientID("p001")
	require.NoError(t, err)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	window := 24 * time.Hour

	tests := []struct {
		name string
		when time.Time
		want bool
	}{
		{"exactly now", now, true},
		{"one hour ahead", now.Add(time.Hour), true},
		{"exactly at window edge", now.Add(window), true},
		{"just past window edge", now.Add(window + time.Second), false},
		{"in the past", now.Add(-time.Second), false},
		{"far future", now.Add(48 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := ReconstructAppointment("a1", id, tt.when, "")
			assert.Equal(t, tt.want, appt.IsImminentAt(now, window))
		})
	}
}
