// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"vollmed/internal/domain/entity"
	domainerrors "vollmed/internal/domain/errors"
	"vollmed/internal/domain/repository"
	"vollmed/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// patientRepository implements the repository.PatientRepository interface using GORM.
type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository is the constructor for patientRepository.
func NewPatientRepository(db *gorm.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

// FindByID retrieves a single patient by their unique ID.
func (repo *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var patientM model.PatientModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&patientM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatientNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient by id")
	}

	return toPatientDomain(&patientM), nil
}

// ListActive retrieves all patients whose Active flag is set, ordered by name.
func (repo *patientRepository) ListActive(ctx context.Context) ([]*entity.Patient, error) {
	var patientModels []*model.PatientModel
	err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&patientModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list active patients")
	}

	patients := make([]*entity.Patient, 0, len(patientModels))
	for _, patientM := range patientModels {
		patients = append(patients, toPatientDomain(patientM))
	}

	return patients, nil
}

// Create persists a new patient entity to the database.
func (repo *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	patientM := fromPatientDomain(patient)

	if err := repo.db.WithContext(ctx).Create(patientM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPatientAlreadyExists.WrapMessage("email or document number already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required patient information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create patient")
	}

	patient.ID = patientM.ID
	patient.CreatedAt = patientM.CreatedAt
	patient.UpdatedAt = patientM.UpdatedAt

	return nil
}

// Update modifies an existing patient entity in the database.
func (repo *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	patientM := fromPatientDomain(patient)

	if err := repo.db.WithContext(ctx).Save(patientM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPatientAlreadyExists.WrapMessage("email or document number already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update patient")
	}

	patient.UpdatedAt = patientM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toPatientDomain converts a GORM PatientModel to a domain Patient entity.
func toPatientDomain(data *model.PatientModel) *entity.Patient {
	if data == nil {
		return nil
	}

	return &entity.Patient{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		DocumentNumber: data.DocumentNumber,
		Active:         data.Active,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromPatientDomain converts a domain Patient entity to a GORM PatientModel for persistence.
func fromPatientDomain(data *entity.Patient) *model.PatientModel {
	if data == nil {
		return nil
	}

	return &model.PatientModel{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		DocumentNumber: data.DocumentNumber,
		Active:         data.Active,
		CreatedAt:      data.CreatedAt,
	}
}
