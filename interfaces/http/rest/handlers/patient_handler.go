package handlers

import (
	"encoding/json"
	"net/http"

	"mentcare/application/commands"
	"mentcare/application/commands/bus"
	"mentcare/application/queries"
	querybus "mentcare/application/queries/bus"
	"mentcare/pkg/common"
	pkgerrors "mentcare/pkg/errors"
	"mentcare/pkg/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PatientHandler serves the patient endpoints
type PatientHandler struct {
	commandBus   *bus.CommandBus
	queryBus     *querybus.QueryBus
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *PatientHandler {
	return &PatientHandler{
		commandBus:   commandBus,
		queryBus:     queryBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// RegisterPatient handles POST /api/v1/patients
func (h *PatientHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	var cmd commands.RegisterPatientCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("invalid request body"))
		return
	}

	if err := utils.ValidateStruct(cmd); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]string{
		"patient_id": cmd.PatientID,
	})
}

// GetPatient handles GET /api/v1/patients/{patientID}
func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	query := queries.GetPatientQuery{
		PatientID: chi.URLParam(r, "patientID"),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// ListPatients handles GET /api/v1/patients
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	query := queries.ListPatientsQuery{
		Risk: r.URL.Query().Get("risk"),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// ChangeRisk handles PUT /api/v1/patients/{patientID}/risk
func (h *PatientHandler) ChangeRisk(w http.ResponseWriter, r *http.Request) {
	var body struct {
		NewRisk string `json:"new_risk"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("invalid request body"))
		return
	}

	cmd := commands.ChangeRiskCommand{
		PatientID: chi.URLParam(r, "patientID"),
		NewRisk:   body.NewRisk,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondMessage(w, http.StatusOK, "risk updated")
}
