package appointments

import (
	"context"
	"sync"
	"testing"
	"time"

	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type stubAppointmentRepository struct {
	mu           sync.Mutex
	appointments []models.Appointment
}

func (r *stubAppointmentRepository) FindConflicting(_ context.Context, doctorID string, slotStart, slotEnd time.Time, statuses []models.AppointmentStatus) (*models.Appointment, error) {
	return nil, nil
}

func (r *stubAppointmentRepository) FindByPaymentIntentID(_ context.Context, paymentIntentID string) (*models.Appointment, error) {
	return nil, nil
}

func (r *stubAppointmentRepository) FindByID(_ context.Context, appointmentID string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appointments {
		if r.appointments[i].ID.Hex() == appointmentID {
			found := r.appointments[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (r *stubAppointmentRepository) FindByPatientID(_ context.Context, patientID string, page, pageSize int) ([]models.Appointment, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var results []models.Appointment
	for i := range r.appointments {
		if r.appointments[i].PatientID.Hex() == patientID {
			results = append(results, r.appointments[i])
		}
	}
	return results, len(results), nil
}

func (r *stubAppointmentRepository) Insert(_ context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	return appointment, nil
}

func (r *stubAppointmentRepository) EnsureIndexes(_ context.Context) error { return nil }

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func TestGetByID(t *testing.T) {
	doctorID := primitive.NewObjectID()
	patientID := primitive.NewObjectID()
	appointment := models.Appointment{
		ID:        primitive.NewObjectID(),
		DoctorID:  doctorID,
		PatientID: patientID,
		Status:    models.AppointmentScheduled,
		RoomID:    "room_abc",
	}

	newUsecase := func() (*appointmentUsecase, *MockDoctorRepository, *MockPatientRepository) {
		repo := &stubAppointmentRepository{appointments: []models.Appointment{appointment}}
		doctorRepo := new(MockDoctorRepository)
		patientRepo := new(MockPatientRepository)
		uc := &appointmentUsecase{
			AppointmentRepository: repo,
			DoctorRepository:      doctorRepo,
			PatientRepository:     patientRepo,
			Log:                   zap.NewNop(),
		}
		return uc, doctorRepo, patientRepo
	}

	t.Run("patient participant can read", func(t *testing.T) {
		uc, doctorRepo, patientRepo := newUsecase()
		doctorRepo.On("FindByID", mock.Anything, doctorID.Hex()).Return(&models.Doctor{ID: doctorID, Name: "Ayesha Khan"}, nil)
		patientRepo.On("FindByID", mock.Anything, patientID.Hex()).Return(&models.Patient{ID: patientID, Name: "Bilal Ahmed"}, nil)

		result, err := uc.GetByID(context.Background(), appointment.ID.Hex(), patientID.Hex())

		assert.NoError(t, err)
		assert.Equal(t, appointment.ID.Hex(), result.ID)
		assert.Equal(t, "Ayesha Khan", result.Doctor.Name)
	})

	t.Run("doctor participant can read", func(t *testing.T) {
		uc, doctorRepo, patientRepo := newUsecase()
		doctorRepo.On("FindByID", mock.Anything, doctorID.Hex()).Return(&models.Doctor{ID: doctorID, Name: "Ayesha Khan"}, nil)
		patientRepo.On("FindByID", mock.Anything, patientID.Hex()).Return(&models.Patient{ID: patientID, Name: "Bilal Ahmed"}, nil)

		_, err := uc.GetByID(context.Background(), appointment.ID.Hex(), doctorID.Hex())

		assert.NoError(t, err)
	})

	t.Run("outsider is forbidden", func(t *testing.T) {
		uc, _, _ := newUsecase()

		_, err := uc.GetByID(context.Background(), appointment.ID.Hex(), primitive.NewObjectID().Hex())

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("unknown appointment is not found", func(t *testing.T) {
		uc, _, _ := newUsecase()

		_, err := uc.GetByID(context.Background(), primitive.NewObjectID().Hex(), patientID.Hex())

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestListByPatient(t *testing.T) {
	doctorID := primitive.NewObjectID()
	patientID := primitive.NewObjectID()

	repo := &stubAppointmentRepository{appointments: []models.Appointment{
		{ID: primitive.NewObjectID(), DoctorID: doctorID, PatientID: patientID, Status: models.AppointmentScheduled},
		{ID: primitive.NewObjectID(), DoctorID: doctorID, PatientID: primitive.NewObjectID(), Status: models.AppointmentScheduled},
	}}
	doctorRepo := new(MockDoctorRepository)
	doctorRepo.On("FindByID", mock.Anything, doctorID.Hex()).Return(&models.Doctor{ID: doctorID, Name: "Ayesha Khan"}, nil)

	uc := &appointmentUsecase{
		AppointmentRepository: repo,
		DoctorRepository:      doctorRepo,
		PatientRepository:     new(MockPatientRepository),
		Log:                   zap.NewNop(),
	}

	results, total, err := uc.ListByPatient(context.Background(), patientID.Hex(), requests.ListAppointmentsQuery{Page: 1, PageSize: 10})

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, results, 1)
	assert.Equal(t, "Ayesha Khan", results[0].Doctor.Name)
}
