// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vollmed/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAppointmentNotFound is a domain-specific error returned when an appointment is not found.
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentRepository defines the standard operations for appointment persistence.
type AppointmentRepository interface {
	// FindByID retrieves a single appointment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)

	// Create persists a new appointment entity to the storage.
	Create(ctx context.Context, appointment *entity.Appointment) error

	// Update modifies an existing appointment entity in the storage.
	Update(ctx context.Context, appointment *entity.Appointment) error
}
