package handlers

import (
	"context"
	"fmt"

	"mentcare/application/commands"
	"mentcare/application/ports"
	"mentcare/application/queries"
	"mentcare/domain/core/entities"
	"mentcare/domain/core/valueobjects"
	"go.uber.org/zap"
)

// PatientQueryHandler serves the patient read models
type PatientQueryHandler struct {
	patientRepo ports.PatientRepository
	logger      *zap.Logger
}

// NewPatientQueryHandler creates a new patient query handler
func NewPatientQueryHandler(patientRepo ports.PatientRepository, logger *zap.Logger) *PatientQueryHandler {
	return &PatientQueryHandler{
		patientRepo: patientRepo,
		logger:      logger,
	}
}

// HandleGetPatient returns one patient by ID
func (h *PatientQueryHandler) HandleGetPatient(ctx context.Context, query queries.GetPatientQuery) (*queries.PatientView, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	patientID, err := valueobjects.NewPatientID(query.PatientID)
	if err != nil {
		return nil, fmt.Errorf("invalid patient ID: %w", err)
	}

	patient, err := h.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	view := toPatientView(patient)
	return &view, nil
}

// HandleListPatients returns all patients, filtered by risk when requested.
// The result list is never nil.
func (h *PatientQueryHandler) HandleListPatients(ctx context.Context, query queries.ListPatientsQuery) (*queries.PatientListView, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	patients, err := h.patientRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	views := make([]queries.PatientView, 0, len(patients))
	for _, p := range patients {
		if query.Risk != "" && p.Risk().String() != query.Risk {
			continue
		}
		views = append(views, toPatientView(p))
	}

	return &queries.PatientListView{
		Patients: views,
		Total:    len(views),
	}, nil
}

func toPatientView(p *entities.Patient) queries.PatientView {
	return queries.PatientView{
		ID:           p.ID().String(),
		Name:         p.Name(),
		BirthDate:    p.BirthDate().Format(commands.BirthDateLayout),
		Risk:         p.Risk().String(),
		RegisteredAt: p.RegisteredAt(),
	}
}
