package appointments

import (
	"context"
	"sync"

	"telemed-service/internal/app/contracts"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/dto/responses"
	"telemed-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	PatientRepository     contracts.PatientRepository
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			DoctorRepository:      doctorRepository,
			PatientRepository:     patientRepository,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) ListByPatient(ctx context.Context, patientID string, query requests.ListAppointmentsQuery) ([]responses.AppointmentResponse, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ListByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	appointments, total, err := uc.AppointmentRepository.FindByPatientID(ctx, patientID, query.Page, query.PageSize)
	if err != nil {
		return nil, 0, err
	}

	results := make([]responses.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		appointment := &appointments[i]
		doctor, err := uc.DoctorRepository.FindByID(ctx, appointment.DoctorID.Hex())
		if err != nil {
			return nil, 0, err
		}
		results = append(results, *responses.NewAppointmentResponse(appointment, doctor, nil))
	}
	return results, total, nil
}

func (uc *appointmentUsecase) GetByID(ctx context.Context, appointmentID, requesterID string) (*responses.AppointmentResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	// Only the two participants may read the appointment.
	if appointment.PatientID.Hex() != requesterID && appointment.DoctorID.Hex() != requesterID {
		return nil, exceptions.ErrPaymentForbidden(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, appointment.DoctorID.Hex())
	if err != nil {
		return nil, err
	}
	patient, err := uc.PatientRepository.FindByID(ctx, appointment.PatientID.Hex())
	if err != nil {
		return nil, err
	}
	return responses.NewAppointmentResponse(appointment, doctor, patient), nil
}
