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

// doctorRepository implements the repository.DoctorRepository interface using GORM.
type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository is the constructor for doctorRepository.
func NewDoctorRepository(db *gorm.DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

// FindByID retrieves a single doctor by their unique ID.
func (repo *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	var doctorM model.DoctorModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&doctorM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDoctorNotFound
		}

		return nil, errors.Wrap(err, "failed to find doctor by id")
	}

	return toDoctorDomain(&doctorM), nil
}

// ListActive retrieves all doctors whose Active flag is set, ordered by name.
func (repo *doctorRepository) ListActive(ctx context.Context) ([]*entity.Doctor, error) {
	var doctorModels []*model.DoctorModel
	err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&doctorModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list active doctors")
	}

	doctors := make([]*entity.Doctor, 0, len(doctorModels))
	for _, doctorM := range doctorModels {
		doctors = append(doctors, toDoctorDomain(doctorM))
	}

	return doctors, nil
}

// Create persists a new doctor entity to the database.
func (repo *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	doctorM := fromDoctorDomain(doctor)

	if err := repo.db.WithContext(ctx).Create(doctorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDoctorAlreadyExists.WrapMessage("email or document number already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required doctor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create doctor")
	}

	doctor.ID = doctorM.ID
	doctor.CreatedAt = doctorM.CreatedAt
	doctor.UpdatedAt = doctorM.UpdatedAt

	return nil
}

// Update modifies an existing doctor entity in the database.
func (repo *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	doctorM := fromDoctorDomain(doctor)

	if err := repo.db.WithContext(ctx).Save(doctorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDoctorAlreadyExists.WrapMessage("email or document number already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update doctor")
	}

	doctor.UpdatedAt = doctorM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toDoctorDomain converts a GORM DoctorModel to a domain Doctor entity.
func toDoctorDomain(data *model.DoctorModel) *entity.Doctor {
	if data == nil {
		return nil
	}

	return &entity.Doctor{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		DocumentNumber: data.DocumentNumber,
		Specialty:      entity.Specialty(data.Specialty),
		Active:         data.Active,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromDoctorDomain converts a domain Doctor entity to a GORM DoctorModel for persistence.
func fromDoctorDomain(data *entity.Doctor) *model.DoctorModel {
	if data == nil {
		return nil
	}

	return &model.DoctorModel{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		DocumentNumber: data.DocumentNumber,
		Specialty:      data.Specialty.String(),
		Active:         data.Active,
		CreatedAt:      data.CreatedAt,
	}
}
