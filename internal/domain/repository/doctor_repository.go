// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vollmed/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDoctorNotFound is a domain-specific error returned when a doctor is not found.
var ErrDoctorNotFound = errors.New("doctor not found")

// DoctorRepository defines the standard operations for doctor persistence.
type DoctorRepository interface {
	// FindByID retrieves a single doctor by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)

	// ListActive retrieves all doctors whose Active flag is set, ordered by name.
	ListActive(ctx context.Context) ([]*entity.Doctor, error)

	// Create persists a new doctor entity to the storage.
	Create(ctx context.Context, doctor *entity.Doctor) error

	// Update modifies an existing doctor entity in the storage.
	Update(ctx context.Context, doctor *entity.Doctor) error
}
