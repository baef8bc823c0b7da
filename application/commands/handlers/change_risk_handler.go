package handlers

import (
	"context"
	"fmt"

	"mentcare/application/commands"
	"mentcare/application/ports"
	"mentcare/domain/core/valueobjects"
	"go.uber.org/zap"
)

// ChangeRiskHandler handles risk reclassification commands
type ChangeRiskHandler struct {
	patientRepo ports.PatientRepository
	alertSink   ports.AlertSink
	publisher   ports.EventPublisher
	logger      *zap.Logger
}

// NewChangeRiskHandler creates a new change risk handler
func NewChangeRiskHandler(
	patientRepo ports.PatientRepository,
	alertSink ports.AlertSink,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *ChangeRiskHandler {
	return &ChangeRiskHandler{
		patientRepo: patientRepo,
		alertSink:   alertSink,
		publisher:   publisher,
		logger:      logger,
	}
}

// Handle executes the change risk command. The stored record is replaced,
// never mutated in place; an escalation to high risk alerts the care team.
func (h *ChangeRiskHandler) Handle(ctx context.Context, cmd commands.ChangeRiskCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	patientID, err := valueobjects.NewPatientID(cmd.PatientID)
	if err != nil {
		return fmt.Errorf("invalid patient ID: %w", err)
	}

	newRisk, err := valueobjects.NewRiskLevel(cmd.NewRisk)
	if err != nil {
		return err
	}

	patient, err := h.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		return fmt.Errorf("failed to get patient: %w", err)
	}

	escalated := !patient.IsHighRisk() && newRisk.IsHigh()

	updated, err := patient.WithRisk(newRisk)
	if err != nil {
		return err
	}

	if escalated {
		subject := fmt.Sprintf("Patient escalated to high risk: %s", patientID.String())
		message := fmt.Sprintf("Patient %s (%s) is now classified as high risk.", patient.Name(), patientID.String())
		if err := h.alertSink.Notify(ctx, subject, message); err != nil {
			return fmt.Errorf("failed to alert care team: %w", err)
		}
	}

	if err := h.patientRepo.Save(ctx, updated); err != nil {
		return fmt.Errorf("failed to save patient: %w", err)
	}

	events := updated.GetUncommittedEvents()
	eventPayloads := make([]interface{}, 0, len(events))
	for _, e := range events {
		eventPayloads = append(eventPayloads, e)
	}
	if len(eventPayloads) > 0 {
		if err := h.publisher.Publish(ctx, eventPayloads...); err != nil {
			h.logger.Warn("Failed to publish risk change events", zap.Error(err))
		}
	}
	updated.MarkEventsAsCommitted()

	h.logger.Info("Patient risk changed",
		zap.String("patientID", patientID.String()),
		zap.String("oldRisk", patient.Risk().String()),
		zap.String("newRisk", newRisk.String()),
	)

	return nil
}
