// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a person that can book appointments with doctors.
// Like doctors, patients are deactivated rather than deleted.
type Patient struct {
	ID             uuid.UUID // The unique ID for this patient record.
	Name           string    // The patient's full name.
	Email          string    // The patient's contact email, unique in the system.
	Phone          string    // The patient's contact phone number.
	DocumentNumber string    // The patient's national identity document number, unique in the system.
	Active         bool      // Whether the patient can currently book appointments.
	CreatedAt      time.Time // Timestamp of when this patient was registered.
	UpdatedAt      time.Time // Timestamp of the last modification to this record.
}
