package commands

import (
	"errors"
	"strings"
	"time"
)

// ScheduleAppointmentCommand represents the command to schedule a
// consultation for a patient
type ScheduleAppointmentCommand struct {
	PatientID string    `json:"patient_id" validate:"required"`
	When      time.Time `json:"when" validate:"required"`
	Reason    string    `json:"reason" validate:"max=500"`
}

// Validate validates the command
func (cmd ScheduleAppointmentCommand) Validate() error {
	if strings.TrimSpace(cmd.PatientID) == "" {
		return errors.New("patient ID is required")
	}
	if cmd.When.IsZero() {
		return errors.New("appointment time is required")
	}
	return nil
}
