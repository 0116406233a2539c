package impl

import (
	"context"
	"log/slog"

	deliverycontext "vollmed/internal/delivery/context"
	"vollmed/internal/domain/entity"
	domainerrors "vollmed/internal/domain/errors"
	"vollmed/internal/domain/repository"
	"vollmed/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// patientService implements the PatientUsecase interface.
type patientService struct {
	txManager   repository.TransactionManager
	patientRepo repository.PatientRepository
	logger      *slog.Logger
}

// PatientServiceParams holds dependencies for PatientService, injected by Fx.
type PatientServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PatientRepo repository.PatientRepository
	Logger      *slog.Logger
}

// NewPatientService is the constructor for patientService.
func NewPatientService(params PatientServiceParams) usecase.PatientUsecase {
	return &patientService{
		txManager:   params.TxManager,
		patientRepo: params.PatientRepo,
		logger:      params.Logger,
	}
}

func (srv *patientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new active patient record.
func (srv *patientService) Register(ctx context.Context, input usecase.RegisterPatientInput) (*usecase.PatientOutput, error) {
	patient := &entity.Patient{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		DocumentNumber: input.DocumentNumber,
		Active:         true,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewPatientRepository().Create(ctx, patient)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Patient registered", slog.String("patientID", patient.ID.String()))

	return &usecase.PatientOutput{Patient: patient}, nil
}

// ListActive returns all patients that have not been deactivated.
func (srv *patientService) ListActive(ctx context.Context) (*usecase.PatientListOutput, error) {
	patients, err := srv.patientRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list patients")
	}

	return &usecase.PatientListOutput{Patients: patients}, nil
}

// GetByID returns the full detail of a single patient.
func (srv *patientService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.PatientOutput, error) {
	patient, err := srv.patientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return nil, domainerrors.ErrPatientNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient")
	}

	return &usecase.PatientOutput{Patient: patient}, nil
}

// Update modifies the mutable fields of an existing patient.
func (srv *patientService) Update(ctx context.Context, input usecase.UpdatePatientInput) (*usecase.PatientOutput, error) {
	var updated *entity.Patient
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		patientRepo := repoFactory.NewPatientRepository()

		patient, err := patientRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrPatientNotFound) {
				return domainerrors.ErrPatientNotFound
			}

			return errors.Wrap(err, "failed to find patient for update")
		}

		if input.Name != "" {
			patient.Name = input.Name
		}
		if input.Phone != "" {
			patient.Phone = input.Phone
		}

		if err := patientRepo.Update(ctx, patient); err != nil {
			return err
		}

		updated = patient

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Patient updated", slog.String("patientID", input.ID.String()))

	return &usecase.PatientOutput{Patient: updated}, nil
}

// Deactivate performs a logical delete of the patient record.
func (srv *patientService) Deactivate(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		patientRepo := repoFactory.NewPatientRepository()

		patient, err := patientRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPatientNotFound) {
				return domainerrors.ErrPatientNotFound
			}

			return errors.Wrap(err, "failed to find patient for deactivation")
		}

		patient.Active = false

		return patientRepo.Update(ctx, patient)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Patient deactivated", slog.String("patientID", id.String()))

	return nil
}
