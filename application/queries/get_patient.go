package queries

import (
	"errors"
	"strings"
	"time"
)

// GetPatientQuery requests a single patient by ID
type GetPatientQuery struct {
	PatientID string `json:"patient_id" validate:"required"`
}

// Validate validates the query
func (q GetPatientQuery) Validate() error {
	if strings.TrimSpace(q.PatientID) == "" {
		return errors.New("patient ID is required")
	}
	return nil
}

// PatientView is the read model returned by patient queries
type PatientView struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BirthDate    string    `json:"birth_date"`
	Risk         string    `json:"risk"`
	RegisteredAt time.Time `json:"registered_at"`
}
