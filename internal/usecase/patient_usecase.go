package usecase

import (
	"context"

	"vollmed/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterPatientInput defines the data required to register a new patient.
type RegisterPatientInput struct {
	Name           string
	Email          string
	Phone          string
	DocumentNumber string
}

// UpdatePatientInput defines the fields a caller may change on an existing
// patient. Email and document number are immutable after registration.
type UpdatePatientInput struct {
	ID    uuid.UUID
	Name  string
	Phone string
}

// --- Output DTOs ---

// PatientOutput returns a single patient record.
type PatientOutput struct {
	Patient *entity.Patient
}

// PatientListOutput returns the collection of active patients.
type PatientListOutput struct {
	Patients []*entity.Patient
}

// PatientUsecase defines the interface for patient-related business operations.
type PatientUsecase interface {
	// Register creates a new active patient record.
	Register(ctx context.Context, input RegisterPatientInput) (*PatientOutput, error)

	// ListActive returns all patients that have not been deactivated.
	ListActive(ctx context.Context) (*PatientListOutput, error)

	// GetByID returns the full detail of a single patient.
	GetByID(ctx context.Context, id uuid.UUID) (*PatientOutput, error)

	// Update modifies the mutable fields of an existing patient.
	Update(ctx context.Context, input UpdatePatientInput) (*PatientOutput, error)

	// Deactivate performs a logical delete of the patient record.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
