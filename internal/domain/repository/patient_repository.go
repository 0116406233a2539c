// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vollmed/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPatientNotFound is a domain-specific error returned when a patient is not found.
var ErrPatientNotFound = errors.New("patient not found")

// PatientRepository defines the standard operations for patient persistence.
type PatientRepository interface {
	// FindByID retrieves a single patient by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)

	// ListActive retrieves all patients whose Active flag is set, ordered by name.
	ListActive(ctx context.Context) ([]*entity.Patient, error)

	// Create persists a new patient entity to the storage.
	Create(ctx context.Context, patient *entity.Patient) error

	// Update modifies an existing patient entity in the storage.
	Update(ctx context.Context, patient *entity.Patient) error
}
