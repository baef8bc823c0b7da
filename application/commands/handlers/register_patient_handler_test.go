package handlers

import (
	"context"
	"testing"
	"time"

	"mentcare/application/commands"
	"mentcare/domain/core/validators"
	"mentcare/domain/core/valueobjects"
	"mentcare/infrastructure/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func newRegisterFixture(t *testing.T) (*RegisterPatientHandler, *fakePatientRepo, *fakeAlertSink, *fakePublisher, *callLog) {
	t.Helper()
	log := &callLog{}
	repo := newFakePatientRepo(log)
	sink := newFakeAlertSink(log)
	publisher := &fakePublisher{}
	handler := NewRegisterPatientHandler(
		repo,
		sink,
		publisher,
		clock.NewFixedClock(testNow),
		validators.NewPatientValidator(nil),
		zap.NewNop(),
	)
	return handler, repo, sink, publisher, log
}

func TestRegisterPatientHandler_Handle(t *testing.T) {
	handler, repo, sink, publisher, _ := newRegisterFixture(t)

	patient, err := handler.Handle(context.Background(), commands.RegisterPatientCommand{
		PatientID: "p002",
		Name:      "Erika Musterfrau",
		BirthDate: "1972-05-03",
		Risk:      "low",
	})
	require.NoError(t, err)

	assert.Equal(t, "p002", patient.ID().String())
	assert.Equal(t, valueobjects.RiskLow, patient.Risk())
	assert.Contains(t, repo.patients, "p002")
	assert.Empty(t, sink.alerts, "low-risk registration must not alert")
	assert.Len(t, publisher.published, 1)
	assert.Empty(t, patient.GetUncommittedEvents())
}

func TestRegisterPatientHandler_HighRiskAlertsBeforeSave(t *testing.T) {
	handler, repo, sink, _, log := newRegisterFixture(t)

	_, err := handler.Handle(context.Background(), commands.RegisterPatientCommand{
		PatientID: "p001",
		Name:      "Max Mustermann",
		BirthDate: "1980-01-12",
		Risk:      "high",
	})
	require.NoError(t, err)

	require.Len(t, sink.alerts, 1)
	assert.Contains(t, sink.alerts[0].subject, "p001")
	assert.Contains(t, repo.patients, "p001")
	assert.Equal(t, []string{"notify", "save:p001"}, log.calls)
}

func TestRegisterPatientHandler_AlertFailureBlocksSave(t *testing.T) {
	handler, repo, sink, _, _ := newRegisterFixture(t)
	sink.notifyErr = errSinkDown

	_, err := handler.Handle(context.Background(), commands.RegisterPatientCommand{
		PatientID: "p001",
		Name:      "Max Mustermann",
		BirthDate: "1980-01-12",
		Risk:      "high",
	})

	require.Error(t, err)
	assert.NotContains(t, repo.patients, "p001")
}

func TestRegisterPatientHandler_InvalidCommand(t *testing.T) {
	tests := []struct {
		name string
		cmd  commands.RegisterPatientCommand
	}{
		{"empty patient ID", commands.RegisterPatientCommand{Name: "Max", BirthDate: "1980-01-12", Risk: "low"}},
		{"empty name", commands.RegisterPatientCommand{PatientID: "p001", BirthDate: "1980-01-12", Risk: "low"}},
		{"unknown risk", commands.RegisterPatientCommand{PatientID: "p001", Name: "Max", BirthDate: "1980-01-12", Risk: "critical"}},
		{"malformed birth date", commands.RegisterPatientCommand{PatientID: "p001", Name: "Max", BirthDate: "12.01.1980", Risk: "low"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, repo, sink, publisher, _ := newRegisterFixture(t)

			_, err := handler.Handle(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.Empty(t, repo.patients)
			assert.Empty(t, sink.alerts)
			assert.Empty(t, publisher.published)
		})
	}
}
