// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor represents a physician that can be booked for appointments.
// Doctors are never hard-deleted; deactivation flips the Active flag so
// historical appointments keep a valid reference.
type Doctor struct {
	ID             uuid.UUID // The unique ID for this doctor record.
	Name           string    // The doctor's full name.
	Email          string    // The doctor's contact email, unique in the system.
	Phone          string    // The doctor's contact phone number.
	DocumentNumber string    // The doctor's professional license number, unique in the system.
	Specialty      Specialty // The doctor's medical specialty.
	Active         bool      // Whether the doctor can currently receive bookings.
	CreatedAt      time.Time // Timestamp of when this doctor was registered.
	UpdatedAt      time.Time // Timestamp of the last modification to this record.
}
