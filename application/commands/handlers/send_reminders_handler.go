package handlers

import (
	"context"
	"fmt"
	"time"

	"mentcare/application/commands"
	"mentcare/application/ports"
	"mentcare/domain/events"
	"go.uber.org/zap"
)

// SendRemindersHandler delivers reminders for appointments inside the
// reminder window
type SendRemindersHandler struct {
	appointmentRepo ports.AppointmentRepository
	patientRepo     ports.PatientRepository
	alertSink       ports.AlertSink
	publisher       ports.EventPublisher
	clock           ports.Clock
	window          time.Duration
	logger          *zap.Logger
}

// NewSendRemindersHandler creates a new send reminders handler
func NewSendRemindersHandler(
	appointmentRepo ports.AppointmentRepository,
	patientRepo ports.PatientRepository,
	alertSink ports.AlertSink,
	publisher ports.EventPublisher,
	clock ports.Clock,
	window time.Duration,
	logger *zap.Logger,
) *SendRemindersHandler {
	return &SendRemindersHandler{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		alertSink:       alertSink,
		publisher:       publisher,
		clock:           clock,
		window:          window,
		logger:          logger,
	}
}

// Handle executes the send reminders command. One reminder goes out per
// imminent appointment; a failed delivery stops the run so the scheduler can
// retry the batch.
func (h *SendRemindersHandler) Handle(ctx context.Context, cmd commands.SendRemindersCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	appointments, err := h.appointmentRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list appointments: %w", err)
	}

	now := h.clock.Now()
	sent := 0

	for _, appt := range appointments {
		if !appt.IsImminentAt(now, h.window) {
			continue
		}

		name := appt.PatientID().String()
		if patient, err := h.patientRepo.FindByID(ctx, appt.PatientID()); err == nil {
			name = patient.Name()
		}

		subject := fmt.Sprintf("Appointment reminder: %s", appt.PatientID().String())
		message := fmt.Sprintf("Reminder for %s: appointment at %s.", name, appt.When().Format(time.RFC3339))
		if err := h.alertSink.Notify(ctx, subject, message); err != nil {
			return fmt.Errorf("failed to deliver reminder: %w", err)
		}
		sent++

		event := events.NewReminderSent(appt.PatientID(), appt.When(), now)
		if err := h.publisher.Publish(ctx, event); err != nil {
			h.logger.Warn("Failed to publish reminder event", zap.Error(err))
		}
	}

	h.logger.Info("Reminder run completed",
		zap.Int("appointments", len(appointments)),
		zap.Int("remindersSent", sent),
	)

	return nil
}
