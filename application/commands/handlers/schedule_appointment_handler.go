package handlers

import (
	"context"
	"fmt"

	"mentcare/application/commands"
	"mentcare/application/ports"
	"mentcare/domain/core/entities"
	"mentcare/domain/core/validators"
	"mentcare/domain/core/valueobjects"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScheduleAppointmentHandler handles appointment scheduling commands
type ScheduleAppointmentHandler struct {
	patientRepo     ports.PatientRepository
	appointmentRepo ports.AppointmentRepository
	publisher       ports.EventPublisher
	validator       *validators.PatientValidator
	logger          *zap.Logger
}

// NewScheduleAppointmentHandler creates a new schedule appointment handler
func NewScheduleAppointmentHandler(
	patientRepo ports.PatientRepository,
	appointmentRepo ports.AppointmentRepository,
	publisher ports.EventPublisher,
	validator *validators.PatientValidator,
	logger *zap.Logger,
) *ScheduleAppointmentHandler {
	return &ScheduleAppointmentHandler{
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		publisher:       publisher,
		validator:       validator,
		logger:          logger,
	}
}

// Handle executes the schedule appointment command. The patient must already
// be registered.
func (h *ScheduleAppointmentHandler) Handle(ctx context.Context, cmd commands.ScheduleAppointmentCommand) (*entities.Appointment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command: %w", err)
	}

	patientID, err := valueobjects.NewPatientID(cmd.PatientID)
	if err != nil {
		return nil, fmt.Errorf("invalid patient ID: %w", err)
	}

	if err := h.validator.ValidateReason(cmd.Reason); err != nil {
		return nil, err
	}

	if _, err := h.patientRepo.FindByID(ctx, patientID); err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	appointment, err := entities.NewAppointment(uuid.New().String(), patientID, cmd.When, cmd.Reason)
	if err != nil {
		return nil, err
	}

	if err := h.appointmentRepo.Add(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to save appointment: %w", err)
	}

	events := appointment.GetUncommittedEvents()
	eventPayloads := make([]interface{}, 0, len(events))
	for _, e := range events {
		eventPayloads = append(eventPayloads, e)
	}
	if err := h.publisher.Publish(ctx, eventPayloads...); err != nil {
		h.logger.Warn("Failed to publish scheduling events", zap.Error(err))
	}
	appointment.MarkEventsAsCommitted()

	h.logger.Info("Appointment scheduled",
		zap.String("patientID", patientID.String()),
		zap.Time("when", cmd.When),
	)

	return appointment, nil
}
