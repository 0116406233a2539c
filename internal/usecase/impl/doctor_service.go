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

// doctorService implements the DoctorUsecase interface.
type doctorService struct {
	txManager  repository.TransactionManager
	doctorRepo repository.DoctorRepository
	logger     *slog.Logger
}

// DoctorServiceParams holds dependencies for DoctorService, injected by Fx.
type DoctorServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	DoctorRepo repository.DoctorRepository
	Logger     *slog.Logger
}

// NewDoctorService is the constructor for doctorService.
func NewDoctorService(params DoctorServiceParams) usecase.DoctorUsecase {
	return &doctorService{
		txManager:  params.TxManager,
		doctorRepo: params.DoctorRepo,
		logger:     params.Logger,
	}
}

func (srv *doctorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new active doctor record.
func (srv *doctorService) Register(ctx context.Context, input usecase.RegisterDoctorInput) (*usecase.DoctorOutput, error) {
	specialty := entity.Specialty(input.Specialty)
	if !specialty.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown specialty: " + input.Specialty)
	}

	doctor := &entity.Doctor{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		DocumentNumber: input.DocumentNumber,
		Specialty:      specialty,
		Active:         true,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewDoctorRepository().Create(ctx, doctor)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Doctor registered", slog.String("doctorID", doctor.ID.String()))

	return &usecase.DoctorOutput{Doctor: doctor}, nil
}

// ListActive returns all doctors that have not been deactivated.
func (srv *doctorService) ListActive(ctx context.Context) (*usecase.DoctorListOutput, error) {
	doctors, err := srv.doctorRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list doctors")
	}

	return &usecase.DoctorListOutput{Doctors: doctors}, nil
}

// GetByID returns the full detail of a single doctor.
func (srv *doctorService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.DoctorOutput, error) {
	doctor, err := srv.doctorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDoctorNotFound) {
			return nil, domainerrors.ErrDoctorNotFound
		}

		return nil, errors.Wrap(err, "failed to find doctor")
	}

	return &usecase.DoctorOutput{Doctor: doctor}, nil
}

// Update modifies the mutable fields of an existing doctor.
func (srv *doctorService) Update(ctx context.Context, input usecase.UpdateDoctorInput) (*usecase.DoctorOutput, error) {
	var updated *entity.Doctor
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		doctorRepo := repoFactory.NewDoctorRepository()

		doctor, err := doctorRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrDoctorNotFound) {
				return domainerrors.ErrDoctorNotFound
			}

			return errors.Wrap(err, "failed to find doctor for update")
		}

		if input.Name != "" {
			doctor.Name = input.Name
		}
		if input.Phone != "" {
			doctor.Phone = input.Phone
		}

		if err := doctorRepo.Update(ctx, doctor); err != nil {
			return err
		}

		updated = doctor

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Doctor updated", slog.String("doctorID", input.ID.String()))

	return &usecase.DoctorOutput{Doctor: updated}, nil
}

// Deactivate performs a logical delete of the doctor record. The row stays
// so historical appointments keep a valid reference.
func (srv *doctorService) Deactivate(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		doctorRepo := repoFactory.NewDoctorRepository()

		doctor, err := doctorRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrDoctorNotFound) {
				return domainerrors.ErrDoctorNotFound
			}

			return errors.Wrap(err, "failed to find doctor for deactivation")
		}

		doctor.Active = false

		return doctorRepo.Update(ctx, doctor)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Doctor deactivated", slog.String("doctorID", id.String()))

	return nil
}
