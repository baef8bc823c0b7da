package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"mentcare/application/commands"
	"mentcare/application/commands/bus"
	"mentcare/pkg/common"
	pkgerrors "mentcare/pkg/errors"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AppointmentHandler serves the appointment endpoints
type AppointmentHandler struct {
	commandBus   *bus.CommandBus
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(commandBus *bus.CommandBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		commandBus:   commandBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// ScheduleAppointment handles POST /api/v1/patients/{patientID}/appointments
func (h *AppointmentHandler) ScheduleAppointment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		When   time.Time `json:"when"`
		Reason string    `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("invalid request body"))
		return
	}

	cmd := commands.ScheduleAppointmentCommand{
		PatientID: chi.URLParam(r, "patientID"),
		When:      body.When,
		Reason:    body.Reason,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondMessage(w, http.StatusCreated, "appointment scheduled")
}

// SendReminders handles POST /api/v1/reminders/run, forcing a reminder sweep
// outside the regular schedule
func (h *AppointmentHandler) SendReminders(w http.ResponseWriter, r *http.Request) {
	if err := h.commandBus.Send(r.Context(), commands.SendRemindersCommand{}); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondMessage(w, http.StatusOK, "reminder sweep completed")
}
