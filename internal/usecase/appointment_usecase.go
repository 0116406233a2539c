package usecase

import (
	"context"
	"time"

	"vollmed/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// BookAppointmentInput defines the data required to book an appointment.
type BookAppointmentInput struct {
	DoctorID    uuid.UUID
	PatientID   uuid.UUID
	ScheduledAt time.Time
}

// CancelAppointmentInput defines the data required to cancel an appointment.
// A reason is mandatory; the record is kept for auditing.
type CancelAppointmentInput struct {
	ID     uuid.UUID
	Reason string
}

// --- Output DTOs ---

// AppointmentOutput returns a single appointment record.
type AppointmentOutput struct {
	Appointment *entity.Appointment
}

// AppointmentUsecase defines the interface for appointment-related business operations.
type AppointmentUsecase interface {
	// Book creates a new appointment between an active doctor and an active patient.
	Book(ctx context.Context, input BookAppointmentInput) (*AppointmentOutput, error)

	// Cancel marks an existing appointment as cancelled, recording the reason.
	Cancel(ctx context.Context, input CancelAppointmentInput) error
}
