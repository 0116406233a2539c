package impl

import (
	"context"
	"testing"

	"vollmed/internal/domain/entity"
	domainerrors "vollmed/internal/domain/errors"
	"vollmed/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoctorServiceForTest(factory *fakeRepoFactory) usecase.DoctorUsecase {
	return NewDoctorService(DoctorServiceParams{
		TxManager:  &fakeTxManager{factory: factory},
		DoctorRepo: factory.doctors,
		Logger:     newTestLogger(),
	})
}

func TestDoctorService_Register_Success(t *testing.T) {
	factory := newFakeFactory()
	service := newDoctorServiceForTest(factory)

	output, err := service.Register(context.Background(), usecase.RegisterDoctorInput{
		Name:           "Dr. Ana Souza",
		Email:          "ana@voll.med",
		Phone:          "11999990000",
		DocumentNumber: "123456",
		Specialty:      "cardiology",
	})
	require.NoError(t, err)
	require.NotNil(t, output.Doctor)
	assert.True(t, output.Doctor.Active)
	assert.Equal(t, entity.SpecialtyCardiology, output.Doctor.Specialty)
	assert.NotEmpty(t, output.Doctor.ID)
}

func TestDoctorService_Register_UnknownSpecialty(t *testing.T) {
	service := newDoctorServiceForTest(newFakeFactory())

	_, err := service.Register(context.Background(), usecase.RegisterDoctorInput{
		Name:      "Dr. Ana Souza",
		Email:     "ana@voll.med",
		Specialty: "astrology",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDoctorService_GetByID_NotFound(t *testing.T) {
	service := newDoctorServiceForTest(newFakeFactory())

	_, err := service.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDoctorNotFound)
}

func TestDoctorService_Update_OnlyMutableFields(t *testing.T) {
	factory := newFakeFactory()
	service := newDoctorServiceForTest(factory)

	registered, err := service.Register(context.Background(), usecase.RegisterDoctorInput{
		Name:           "Dr. Ana Souza",
		Email:          "ana@voll.med",
		Phone:          "11999990000",
		DocumentNumber: "123456",
		Specialty:      "cardiology",
	})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), usecase.UpdateDoctorInput{
		ID:    registered.Doctor.ID,
		Name:  "Dr. Ana Souza Lima",
		Phone: "11888880000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Ana Souza Lima", updated.Doctor.Name)
	assert.Equal(t, "11888880000", updated.Doctor.Phone)
	assert.Equal(t, "ana@voll.med", updated.Doctor.Email)
	assert.Equal(t, entity.SpecialtyCardiology, updated.Doctor.Specialty)
}

func TestDoctorService_Update_NotFound(t *testing.T) {
	service := newDoctorServiceForTest(newFakeFactory())

	_, err := service.Update(context.Background(), usecase.UpdateDoctorInput{
		ID:   uuid.New(),
		Name: "Dr. Nobody",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDoctorNotFound)
}

func TestDoctorService_Deactivate_RemovesFromListing(t *testing.T) {
	factory := newFakeFactory()
	service := newDoctorServiceForTest(factory)

	registered, err := service.Register(context.Background(), usecase.RegisterDoctorInput{
		Name:           "Dr. Ana Souza",
		Email:          "ana@voll.med",
		DocumentNumber: "123456",
		Specialty:      "dermatology",
	})
	require.NoError(t, err)

	require.NoError(t, service.Deactivate(context.Background(), registered.Doctor.ID))

	// The record stays, it just stops showing up in the active listing.
	detail, err := service.GetByID(context.Background(), registered.Doctor.ID)
	require.NoError(t, err)
	assert.False(t, detail.Doctor.Active)

	listing, err := service.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listing.Doctors)
}
