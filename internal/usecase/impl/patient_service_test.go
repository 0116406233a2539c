package impl

import (
	"context"
	"testing"

	domainerrors "vollmed/internal/domain/errors"
	"vollmed/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatientServiceForTest(factory *fakeRepoFactory) usecase.PatientUsecase {
	return NewPatientService(PatientServiceParams{
		TxManager:   &fakeTxManager{factory: factory},
		PatientRepo: factory.patients,
		Logger:      newTestLogger(),
	})
}

func TestPatientService_Register_Success(t *testing.T) {
	service := newPatientServiceForTest(newFakeFactory())

	output, err := service.Register(context.Background(), usecase.RegisterPatientInput{
		Name:           "Carlos Pereira",
		Email:          "carlos@example.com",
		Phone:          "11977770000",
		DocumentNumber: "98765432100",
	})
	require.NoError(t, err)
	require.NotNil(t, output.Patient)
	assert.True(t, output.Patient.Active)
	assert.NotEmpty(t, output.Patient.ID)
}

func TestPatientService_GetByID_NotFound(t *testing.T) {
	service := newPatientServiceForTest(newFakeFactory())

	_, err := service.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPatientNotFound)
}

func TestPatientService_Deactivate_RemovesFromListing(t *testing.T) {
	factory := newFakeFactory()
	service := newPatientServiceForTest(factory)

	registered, err := service.Register(context.Background(), usecase.RegisterPatientInput{
		Name:           "Carlos Pereira",
		Email:          "carlos@example.com",
		DocumentNumber: "98765432100",
	})
	require.NoError(t, err)

	require.NoError(t, service.Deactivate(context.Background(), registered.Patient.ID))

	listing, err := service.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listing.Patients)

	detail, err := service.GetByID(context.Background(), registered.Patient.ID)
	require.NoError(t, err)
	assert.False(t, detail.Patient.Active)
}
