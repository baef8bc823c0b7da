package handlers

import (
	"context"
	"fmt"

	"mentcare/application/commands"
	"mentcare/application/ports"
	"mentcare/domain/core/entities"
	"mentcare/domain/core/validators"
	"mentcare/domain/core/valueobjects"
	"go.uber.org/zap"
)

// RegisterPatientHandler handles patient registration commands
type RegisterPatientHandler struct {
	patientRepo ports.PatientRepository
	alertSink   ports.AlertSink
	publisher   ports.EventPublisher
	clock       ports.Clock
	validator   *validators.PatientValidator
	logger      *zap.Logger
}

// NewRegisterPatientHandler creates a new register patient handler
func NewRegisterPatientHandler(
	patientRepo ports.PatientRepository,
	alertSink ports.AlertSink,
	publisher ports.EventPublisher,
	clock ports.Clock,
	validator *validators.PatientValidator,
	logger *zap.Logger,
) *RegisterPatientHandler {
	return &RegisterPatientHandler{
		patientRepo: patientRepo,
		alertSink:   alertSink,
		publisher:   publisher,
		clock:       clock,
		validator:   validator,
		logger:      logger,
	}
}

// Handle executes the register patient command. The high-risk alert is
// delivered before the record is saved: a patient the care team was never
// told about must not end up in the store.
func (h *RegisterPatientHandler) Handle(ctx context.Context, cmd commands.RegisterPatientCommand) (*entities.Patient, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command: %w", err)
	}

	patientID, err := valueobjects.NewPatientID(cmd.PatientID)
	if err != nil {
		return nil, fmt.Errorf("invalid patient ID: %w", err)
	}

	risk, err := valueobjects.NewRiskLevel(cmd.Risk)
	if err != nil {
		return nil, err
	}

	if err := h.validator.ValidateName(cmd.Name); err != nil {
		return nil, err
	}
	if err := h.validator.ValidateBirthDate(cmd.ParsedBirthDate(), h.clock.Now()); err != nil {
		return nil, err
	}

	patient, err := entities.NewPatient(patientID, cmd.Name, cmd.ParsedBirthDate(), risk)
	if err != nil {
		return nil, err
	}

	if patient.IsHighRisk() {
		subject := fmt.Sprintf("High-risk patient registered: %s", patientID.String())
		message := fmt.Sprintf("Patient %s (%s) was registered with high risk.", cmd.Name, patientID.String())
		if err := h.alertSink.Notify(ctx, subject, message); err != nil {
			return nil, fmt.Errorf("failed to alert care team: %w", err)
		}
	}

	if err := h.patientRepo.Save(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to save patient: %w", err)
	}

	events := patient.GetUncommittedEvents()
	eventPayloads := make([]interface{}, 0, len(events))
	for _, e := range events {
		eventPayloads = append(eventPayloads, e)
	}
	if err := h.publisher.Publish(ctx, eventPayloads...); err != nil {
		h.logger.Warn("Failed to publish registration events", zap.Error(err))
	}
	patient.MarkEventsAsCommitted()

	h.logger.Info("Patient registered",
		zap.String("patientID", patientID.String()),
		zap.String("risk", risk.String()),
	)

	return patient, nil
}
