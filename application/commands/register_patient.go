package commands

import (
	"errors"
	"strings"
	"time"
)

// BirthDateLayout is the wire format for dates of birth
const BirthDateLayout = "2006-01-02"

// RegisterPatientCommand represents the command to register a new patient
type RegisterPatientCommand struct {
	PatientID string `json:"patient_id" validate:"required"`
	Name      string `json:"name" validate:"required,min=1,max=255"`
	BirthDate string `json:"birth_date" validate:"required"`
	Risk      string `json:"risk" validate:"required,oneof=low medium high"`
}

// Validate validates the command. It runs before any side effect, so a bad
// command leaves the system untouched.
func (cmd RegisterPatientCommand) Validate() error {
	if strings.TrimSpace(cmd.PatientID) == "" {
		return errors.New("patient ID is required")
	}
	if strings.TrimSpace(cmd.Name) == "" {
		return errors.New("name is required")
	}
	if cmd.BirthDate != "" {
		if _, err := time.Parse(BirthDateLayout, cmd.BirthDate); err != nil {
			return errors.New("birth date must be in YYYY-MM-DD format")
		}
	}
	return nil
}

// ParsedBirthDate returns the birth date as a time value. Callers must
// Validate first.
func (cmd RegisterPatientCommand) ParsedBirthDate() time.Time {
	t, _ := time.Parse(BirthDateLayout, cmd.BirthDate)
	return t
}
