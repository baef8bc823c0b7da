package queries

import "errors"

// ListPatientsQuery requests all patients, optionally filtered by risk level
type ListPatientsQuery struct {
	Risk string `json:"risk,omitempty" validate:"omitempty,oneof=low medium high"`
}

// Validate validates the query
func (q ListPatientsQuery) Validate() error {
	switch q.Risk {
	case "", "low", "medium", "high":
		return nil
	default:
		return errors.New("risk filter must be one of: low, medium, high")
	}
}

// PatientListView is the read model for patient listings
type PatientListView struct {
	Patients []PatientView `json:"patients"`
	Total    int           `json:"total"`
}
