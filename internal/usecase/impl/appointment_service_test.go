package impl

import (
	"context"
	"testing"
	"time"

	"vollmed/internal/domain/entity"
	domainerrors "vollmed/internal/domain/errors"
	"vollmed/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointmentServiceForTest(factory *fakeRepoFactory) *appointmentService {
	service := NewAppointmentService(AppointmentServiceParams{
		TxManager: &fakeTxManager{factory: factory},
		Logger:    newTestLogger(),
	})

	return service.(*appointmentService)
}

func seedDoctor(factory *fakeRepoFactory, active bool) uuid.UUID {
	id := uuid.New()
	factory.doctors.byID[id] = &entity.Doctor{
		ID:        id,
		Name:      "Dr. Ana Souza",
		Specialty: entity.SpecialtyCardiology,
		Active:    active,
	}

	return id
}

func seedPatient(factory *fakeRepoFactory, active bool) uuid.UUID {
	id := uuid.New()
	factory.patients.byID[id] = &entity.Patient{
		ID:     id,
		Name:   "Carlos Pereira",
		Active: active,
	}

	return id
}

func TestAppointmentService_Book_Success(t *testing.T) {
	factory := newFakeFactory()
	service := newAppointmentServiceForTest(factory)
	doctorID := seedDoctor(factory, true)
	patientID := seedPatient(factory, true)
	scheduledAt := time.Now().Add(48 * time.Hour)

	output, err := service.Book(context.Background(), usecase.BookAppointmentInput{
		DoctorID:    doctorID,
		PatientID:   patientID,
		ScheduledAt: scheduledAt,
	})
	require.NoError(t, err)
	require.NotNil(t, output.Appointment)
	assert.Equal(t, doctorID, output.Appointment.DoctorID)
	assert.Equal(t, patientID, output.Appointment.PatientID)
	assert.False(t, output.Appointment.IsCancelled())
}

func TestAppointmentService_Book_InactiveDoctor(t *testing.T) {
	factory := newFakeFactory()
	service := newAppointmentServiceForTest(factory)
	doctorID := seedDoctor(factory, false)
	patientID := seedPatient(factory, true)

	_, err := service.Book(context.Background(), usecase.BookAppointmentInput{
		DoctorID:    doctorID,
		PatientID:   patientID,
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDoctorInactive)
}

func TestAppointmentService_Book_UnknownPatient(t *testing.T) {
	factory := newFakeFactory()
	service := newAppointmentServiceForTest(factory)
	doctorID := seedDoctor(factory, true)

	_, err := service.Book(context.Background(), usecase.BookAppointmentInput{
		DoctorID:    doctorID,
		PatientID:   uuid.New(),
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPatientNotFound)
}

func TestAppointmentService_Cancel_Success(t *testing.T) {
	factory := newFakeFactory()
	service := newAppointmentServiceForTest(factory)
	cancelledAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return cancelledAt }

	doctorID := seedDoctor(factory, true)
	patientID := seedPatient(factory, true)
	output, err := service.Book(context.Background(), usecase.BookAppointmentInput{
		DoctorID:    doctorID,
		PatientID:   patientID,
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	err = service.Cancel(context.Background(), usecase.CancelAppointmentInput{
		ID:     output.Appointment.ID,
		Reason: "patient requested",
	})
	require.NoError(t, err)

	stored := factory.appointments.byID[output.Appointment.ID]
	require.NotNil(t, stored.CancelledAt)
	assert.Equal(t, cancelledAt, *stored.CancelledAt)
	assert.Equal(t, "patient requested", stored.CancelReason)
}

func TestAppointmentService_Cancel_AlreadyCancelled(t *testing.T) {
	factory := newFakeFactory()
	service := newAppointmentServiceForTest(factory)

	id := uuid.New()
	cancelledAt := time.Now()
	factory.appointments.byID[id] = &entity.Appointment{
		ID:           id,
		CancelReason: "first reason",
		CancelledAt:  &cancelledAt,
	}

	err := service.Cancel(context.Background(), usecase.CancelAppointmentInput{
		ID:     id,
		Reason: "second reason",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAppointmentAlreadyCancelled)

	// The original cancellation record is untouched.
	assert.Equal(t, "first reason", factory.appointments.byID[id].CancelReason)
}

func TestAppointmentService_Cancel_NotFound(t *testing.T) {
	service := newAppointmentServiceForTest(newFakeFactory())

	err := service.Cancel(context.Background(), usecase.CancelAppointmentInput{
		ID:     uuid.New(),
		Reason: "whatever",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAppointmentNotFound)
}
