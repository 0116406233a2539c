// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment represents a booking between a patient and a doctor at a
// specific time. A cancelled appointment keeps its row; the cancellation
// reason and timestamp record why and when it was called off.
type Appointment struct {
	ID           uuid.UUID  // The unique ID for this appointment record.
	DoctorID     uuid.UUID  // Links the appointment to the booked doctor.
	PatientID    uuid.UUID  // Links the appointment to the booking patient.
	ScheduledAt  time.Time  // The date and time the appointment takes place.
	CancelReason string     // Free-form reason supplied on cancellation, empty while active.
	CancelledAt  *time.Time // When the appointment was cancelled, nil while active.
	CreatedAt    time.Time  // Timestamp of when this appointment was booked.
}

// IsCancelled reports whether the appointment has been cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.CancelledAt != nil
}
