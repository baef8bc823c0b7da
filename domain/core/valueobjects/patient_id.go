package valueobjects

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// PatientID is a value object representing a unique patient identifier
// Value objects are immutable and have no identity beyond their value
type PatientID struct {
	value string
}

// NewPatientID creates a PatientID from an externally assigned identifier
// (e.g. "p001"). The identifier must be non-empty after trimming.
func NewPatientID(id string) (PatientID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return PatientID{}, errors.New("patient ID cannot be empty")
	}
	return PatientID{value: id}, nil
}

// GeneratePatientID creates a new random PatientID
func GeneratePatientID() PatientID {
	return PatientID{value: uuid.New().String()}
}

// String returns the string representation of the PatientID
func (id PatientID) String() string {
	return id.value
}

// Equals checks if two PatientIDs are equal
func (id PatientID) Equals(other PatientID) bool {
	return id.value == other.value
}

// IsZero checks if the PatientID is the zero value
func (id PatientID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id PatientID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *PatientID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("PatientID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}
