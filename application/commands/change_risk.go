package commands

import (
	"errors"
	"strings"
)

// ChangeRiskCommand represents the command to reclassify a patient's risk
type ChangeRiskCommand struct {
	PatientID string `json:"patient_id" validate:"required"`
	NewRisk   string `json:"new_risk" validate:"required,oneof=low medium high"`
}

// Validate validates the command
func (cmd ChangeRiskCommand) Validate() error {
	if strings.TrimSpace(cmd.PatientID) == "" {
		return errors.New("patient ID is required")
	}
	if strings.TrimSpace(cmd.NewRisk) == "" {
		return errors.New("new risk level is required")
	}
	return nil
}
