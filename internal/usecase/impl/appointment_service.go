package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vollmed/internal/delivery/context"
	"vollmed/internal/domain/entity"
	domainerrors "vollmed/internal/domain/errors"
	"vollmed/internal/domain/repository"
	"vollmed/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// appointmentService implements the AppointmentUsecase interface.
type appointmentService struct {
	txManager repository.TransactionManager
	now       func() time.Time
	logger    *slog.Logger
}

// AppointmentServiceParams holds dependencies for AppointmentService, injected by Fx.
type AppointmentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewAppointmentService is the constructor for appointmentService.
func NewAppointmentService(params AppointmentServiceParams) usecase.AppointmentUsecase {
	return &appointmentService{
		txManager: params.TxManager,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *appointmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Book creates a new appointment. Both parties must exist and be active;
// scheduling conflicts are not checked here.
func (srv *appointmentService) Book(ctx context.Context, input usecase.BookAppointmentInput) (*usecase.AppointmentOutput, error) {
	appointment := &entity.Appointment{
		DoctorID:    input.DoctorID,
		PatientID:   input.PatientID,
		ScheduledAt: input.ScheduledAt,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		doctor, err := repoFactory.NewDoctorRepository().FindByID(ctx, input.DoctorID)
		if err != nil {
			if errors.Is(err, repository.ErrDoctorNotFound) {
				return domainerrors.ErrDoctorNotFound
			}

			return errors.Wrap(err, "failed to find doctor for booking")
		}
		if !doctor.Active {
			return domainerrors.ErrDoctorInactive
		}

		patient, err := repoFactory.NewPatientRepository().FindByID(ctx, input.PatientID)
		if err != nil {
			if errors.Is(err, repository.ErrPatientNotFound) {
				return domainerrors.ErrPatientNotFound
			}

			return errors.Wrap(err, "failed to find patient for booking")
		}
		if !patient.Active {
			return domainerrors.ErrPatientInactive
		}

		return repoFactory.NewAppointmentRepository().Create(ctx, appointment)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Appointment booked",
		slog.String("appointmentID", appointment.ID.String()),
		slog.String("doctorID", input.DoctorID.String()),
		slog.String("patientID", input.PatientID.String()))

	return &usecase.AppointmentOutput{Appointment: appointment}, nil
}

// Cancel marks an appointment as cancelled. Cancelling twice is an error;
// the first reason and timestamp are preserved.
func (srv *appointmentService) Cancel(ctx context.Context, input usecase.CancelAppointmentInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appointmentRepo := repoFactory.NewAppointmentRepository()

		appointment, err := appointmentRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrAppointmentNotFound) {
				return domainerrors.ErrAppointmentNotFound
			}

			return errors.Wrap(err, "failed to find appointment for cancellation")
		}

		if appointment.IsCancelled() {
			return domainerrors.ErrAppointmentAlreadyCancelled
		}

		cancelledAt := srv.now()
		appointment.CancelReason = input.Reason
		appointment.CancelledAt = &cancelledAt

		return appointmentRepo.Update(ctx, appointment)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Appointment cancelled", slog.String("appointmentID", input.ID.String()))

	return nil
}
