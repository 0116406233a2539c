package usecase

import (
	"context"

	"vollmed/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterDoctorInput defines the data required to register a new doctor.
type RegisterDoctorInput struct {
	Name           string
	Email          string
	Phone          string
	DocumentNumber string
	Specialty      string
}

// UpdateDoctorInput defines the fields a caller may change on an existing
// doctor. Email, document number and specialty are immutable after
// registration; only the fields below are writable.
type UpdateDoctorInput struct {
	ID    uuid.UUID
	Name  string
	Phone string
}

// --- Output DTOs ---

// DoctorOutput returns a single doctor record.
type DoctorOutput struct {
	Doctor *entity.Doctor
}

// DoctorListOutput returns the collection of active doctors.
type DoctorListOutput struct {
	Doctors []*entity.Doctor
}

// DoctorUsecase defines the interface for doctor-related business operations.
type DoctorUsecase interface {
	// Register creates a new active doctor record.
	Register(ctx context.Context, input RegisterDoctorInput) (*DoctorOutput, error)

	// ListActive returns all doctors that have not been deactivated.
	ListActive(ctx context.Context) (*DoctorListOutput, error)

	// GetByID returns the full detail of a single doctor.
	GetByID(ctx context.Context, id uuid.UUID) (*DoctorOutput, error)

	// Update modifies the mutable fields of an existing doctor.
	Update(ctx context.Context, input UpdateDoctorInput) (*DoctorOutput, error)

	// Deactivate performs a logical delete: the doctor stops appearing in
	// listings and can no longer receive appointments, but the record stays.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
