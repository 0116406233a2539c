package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"vollmed/internal/domain/entity"
	domainerrors "vollmed/internal/domain/errors"
	"vollmed/internal/domain/repository"

	"github.com/google/uuid"
)

// In-memory fakes standing in for the persistence and crypto layers.
// They keep state in maps so tests can assert on what was written.

type fakeTxManager struct {
	factory *fakeRepoFactory
	err     error
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.err != nil {
		return m.err
	}

	return fn(m.factory)
}

type fakeRepoFactory struct {
	accounts     *fakeAccountRepo
	doctors      *fakeDoctorRepo
	patients     *fakePatientRepo
	appointments *fakeAppointmentRepo
}

func (f *fakeRepoFactory) NewAccountRepository() repository.AccountRepository {
	return f.accounts
}

func (f *fakeRepoFactory) NewDoctorRepository() repository.DoctorRepository {
	return f.doctors
}

func (f *fakeRepoFactory) NewPatientRepository() repository.PatientRepository {
	return f.patients
}

func (f *fakeRepoFactory) NewAppointmentRepository() repository.AppointmentRepository {
	return f.appointments
}

type fakeAccountRepo struct {
	byLogin map[string]*entity.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byLogin: make(map[string]*entity.Account)}
}

func (r *fakeAccountRepo) FindByLogin(_ context.Context, login string) (*entity.Account, error) {
	account, ok := r.byLogin[login]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return account, nil
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	if _, exists := r.byLogin[account.Login]; exists {
		return domainerrors.ErrAccountAlreadyExists
	}

	account.ID = uuid.New()
	account.CreatedAt = time.Now()
	r.byLogin[account.Login] = account

	return nil
}

type fakeDoctorRepo struct {
	byID map[uuid.UUID]*entity.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{byID: make(map[uuid.UUID]*entity.Doctor)}
}

func (r *fakeDoctorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Doctor, error) {
	doctor, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrDoctorNotFound
	}

	copied := *doctor

	return &copied, nil
}

func (r *fakeDoctorRepo) ListActive(_ context.Context) ([]*entity.Doctor, error) {
	var active []*entity.Doctor
	for _, doctor := range r.byID {
		if doctor.Active {
			copied := *doctor
			active = append(active, &copied)
		}
	}

	return active, nil
}

func (r *fakeDoctorRepo) Create(_ context.Context, doctor *entity.Doctor) error {
	doctor.ID = uuid.New()
	doctor.CreatedAt = time.Now()
	copied := *doctor
	r.byID[doctor.ID] = &copied

	return nil
}

func (r *fakeDoctorRepo) Update(_ context.Context, doctor *entity.Doctor) error {
	if _, ok := r.byID[doctor.ID]; !ok {
		return repository.ErrDoctorNotFound
	}

	copied := *doctor
	r.byID[doctor.ID] = &copied

	return nil
}

type fakePatientRepo struct {
	byID map[uuid.UUID]*entity.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{byID: make(map[uuid.UUID]*entity.Patient)}
}

func (r *fakePatientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Patient, error) {
	patient, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrPatientNotFound
	}

	copied := *patient

	return &copied, nil
}

func (r *fakePatientRepo) ListActive(_ context.Context) ([]*entity.Patient, error) {
	var active []*entity.Patient
	for _, patient := range r.byID {
		if patient.Active {
			copied := *patient
			active = append(active, &copied)
		}
	}

	return active, nil
}

func (r *fakePatientRepo) Create(_ context.Context, patient *entity.Patient) error {
	patient.ID = uuid.New()
	patient.CreatedAt = time.Now()
	copied := *patient
	r.byID[patient.ID] = &copied

	return nil
}

func (r *fakePatientRepo) Update(_ context.Context, patient *entity.Patient) error {
	if _, ok := r.byID[patient.ID]; !ok {
		return repository.ErrPatientNotFound
	}

	copied := *patient
	r.byID[patient.ID] = &copied

	return nil
}

type fakeAppointmentRepo struct {
	byID map[uuid.UUID]*entity.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{byID: make(map[uuid.UUID]*entity.Appointment)}
}

func (r *fakeAppointmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrAppointmentNotFound
	}

	copied := *appointment

	return &copied, nil
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appointment *entity.Appointment) error {
	appointment.ID = uuid.New()
	appointment.CreatedAt = time.Now()
	copied := *appointment
	r.byID[appointment.ID] = &copied

	return nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, appointment *entity.Appointment) error {
	if _, ok := r.byID[appointment.ID]; !ok {
		return repository.ErrAppointmentNotFound
	}

	copied := *appointment
	r.byID[appointment.ID] = &copied

	return nil
}

type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct {
	token  string
	genErr error
}

func (s *fakeTokenService) Generate(_ *entity.Account) (string, error) {
	if s.genErr != nil {
		return "", s.genErr
	}

	return s.token, nil
}

func (s *fakeTokenService) Verify(_ string) (string, error) {
	return "", nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFakeFactory() *fakeRepoFactory {
	return &fakeRepoFactory{
		accounts:     newFakeAccountRepo(),
		doctors:      newFakeDoctorRepo(),
		patients:     newFakePatientRepo(),
		appointments: newFakeAppointmentRepo(),
	}
}
