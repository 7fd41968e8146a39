package payments

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"telemed-service/internal/app/config"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/dto/responses"
	"telemed-service/internal/pkg/exceptions"
	"telemed-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

type paymentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	PatientRepository     contracts.PatientRepository
	PaymentGateway        contracts.PaymentGatewayService
	LockerService         contracts.LockerService
	NotificationPublisher contracts.BookingNotificationPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewPaymentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	paymentGateway contracts.PaymentGatewayService,
	lockerService contracts.LockerService,
	notificationPublisher contracts.BookingNotificationPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			AppointmentRepository: appointmentRepository,
			DoctorRepository:      doctorRepository,
			PatientRepository:     patientRepository,
			PaymentGateway:        paymentGateway,
			LockerService:         lockerService,
			NotificationPublisher: notificationPublisher,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return paymentUsecaseInstance
}

// CreateOrder checks that the requested slot is free, then asks the payment
// provider for an intent carrying the full booking as metadata. The slot is
// NOT reserved here; it is re-checked under a lock at verification time.
func (uc *paymentUsecase) CreateOrder(ctx context.Context, patientID string, request *requests.CreateOrderRequest) (*responses.CreateOrderResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreateOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Time(constvars.LoggingSlotStartKey, request.SlotStart()),
		zap.Time(constvars.LoggingSlotEndKey, request.SlotEnd()),
	)

	conflict, err := uc.AppointmentRepository.FindConflicting(ctx, request.DoctorID, request.SlotStart(), request.SlotEnd(), models.ActiveAppointmentStatuses)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		uc.Log.Info("paymentUsecase.CreateOrder slot conflict",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
			zap.String(constvars.LoggingAppointmentIDKey, conflict.ID.Hex()),
		)
		return nil, exceptions.ErrSlotUnavailable(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	totalAmount := request.ConsultationFees + request.PlatformFees
	intent, err := uc.PaymentGateway.CreatePaymentIntent(ctx, &contracts.CreatePaymentIntentInput{
		Amount:      utils.ToMinorUnits(totalAmount),
		Currency:    uc.InternalConfig.PaymentGateway.Currency,
		Description: fmt.Sprintf("Consultation with Dr. %s", doctor.Name),
		Metadata: map[string]string{
			constvars.MetadataDoctorID:         request.DoctorID,
			constvars.MetadataPatientID:        patientID,
			constvars.MetadataDoctorName:       doctor.Name,
			constvars.MetadataPatientName:      patient.Name,
			constvars.MetadataConsultationType: request.ConsultationType,
			constvars.MetadataDate:             request.Date,
			constvars.MetadataSlotStart:        request.SlotStart().Format(time.RFC3339),
			constvars.MetadataSlotEnd:          request.SlotEnd().Format(time.RFC3339),
			constvars.MetadataSymptoms:         utils.TruncateForMetadata(request.Symptoms, constvars.PaymentMetadataValueLimit),
			constvars.MetadataConsultationFees: strconv.FormatFloat(request.ConsultationFees, 'f', -1, 64),
			constvars.MetadataPlatformFees:     strconv.FormatFloat(request.PlatformFees, 'f', -1, 64),
			constvars.MetadataTotalAmount:      strconv.FormatFloat(totalAmount, 'f', -1, 64),
		},
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("paymentUsecase.CreateOrder intent created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIntentIDKey, intent.ID),
		zap.Int64("amount", intent.Amount),
	)
	return &responses.CreateOrderResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		Amount:          utils.FromMinorUnits(intent.Amount),
		Currency:        intent.Currency,
	}, nil
}

// VerifyPayment confirms the payment succeeded and writes the appointment.
// The flow is idempotent on paymentIntentId: retries and double-submits get
// the already-created appointment back. A per-doctor lock serializes the
// final conflict re-check against the insert so two paid intents for
// overlapping slots cannot both land.
func (uc *paymentUsecase) VerifyPayment(ctx context.Context, patientID string, request *requests.VerifyPaymentRequest) (*responses.AppointmentResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.VerifyPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIntentIDKey, request.PaymentIntentID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	intent, err := uc.PaymentGateway.RetrievePaymentIntent(ctx, request.PaymentIntentID)
	if err != nil {
		return nil, err
	}

	if intent.Status != constvars.StripeStatusSucceeded {
		uc.Log.Info("paymentUsecase.VerifyPayment intent not succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIntentIDKey, intent.ID),
			zap.String(constvars.LoggingPaymentStatusKey, intent.Status),
		)
		return nil, exceptions.ErrPaymentIncomplete(nil)
	}

	if intent.Metadata[constvars.MetadataPatientID] != patientID {
		uc.Log.Warn("paymentUsecase.VerifyPayment patient mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIntentIDKey, intent.ID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return nil, exceptions.ErrPaymentForbidden(nil)
	}

	existing, err := uc.AppointmentRepository.FindByPaymentIntentID(ctx, intent.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		uc.Log.Info("paymentUsecase.VerifyPayment appointment already exists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, existing.ID.Hex()),
		)
		return uc.buildAppointmentResponse(ctx, existing, false)
	}

	doctorID := intent.Metadata[constvars.MetadataDoctorID]
	lockKey := fmt.Sprintf("booking:lock:%s", doctorID)
	lockTTL := time.Duration(uc.InternalConfig.Booking.FinalizeLockTTLInSeconds) * time.Second

	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBookingLockBusy(nil)
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Warn("paymentUsecase.VerifyPayment failed to release lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	appointment, err := uc.finalizeAppointment(ctx, intent)
	if err != nil {
		return nil, err
	}
	return uc.buildAppointmentResponse(ctx, appointment, true)
}

// finalizeAppointment runs under the per-doctor booking lock. The appointment
// values come from the intent metadata, never from fresh client input, so the
// booking written is exactly the one that was paid for.
func (uc *paymentUsecase) finalizeAppointment(ctx context.Context, intent *contracts.PaymentIntent) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	doctorID := intent.Metadata[constvars.MetadataDoctorID]
	patientID := intent.Metadata[constvars.MetadataPatientID]

	slotStart, err := time.Parse(time.RFC3339, intent.Metadata[constvars.MetadataSlotStart])
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	slotEnd, err := time.Parse(time.RFC3339, intent.Metadata[constvars.MetadataSlotEnd])
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	conflict, err := uc.AppointmentRepository.FindConflicting(ctx, doctorID, slotStart, slotEnd, models.ActiveAppointmentStatuses)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		uc.Log.Warn("paymentUsecase.finalizeAppointment slot taken after payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIntentIDKey, intent.ID),
			zap.String(constvars.LoggingAppointmentIDKey, conflict.ID.Hex()),
		)
		return nil, exceptions.ErrSlotNoLongerAvailable(nil)
	}

	doctorObjectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	patientObjectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	date, err := time.Parse(time.RFC3339, intent.Metadata[constvars.MetadataDate])
	if err != nil {
		// Date only carries the calendar day in some clients; fall back to
		// the slot start when it is not a full timestamp.
		if date, err = time.Parse("2006-01-02", intent.Metadata[constvars.MetadataDate]); err != nil {
			date = slotStart
		}
	}

	consultationFees, _ := strconv.ParseFloat(intent.Metadata[constvars.MetadataConsultationFees], 64)
	platformFees, _ := strconv.ParseFloat(intent.Metadata[constvars.MetadataPlatformFees], 64)
	totalAmount, _ := strconv.ParseFloat(intent.Metadata[constvars.MetadataTotalAmount], 64)

	appointment := &models.Appointment{
		DoctorID:         doctorObjectID,
		PatientID:        patientObjectID,
		Date:             date.UTC(),
		SlotStart:        slotStart.UTC(),
		SlotEnd:          slotEnd.UTC(),
		ConsultationType: models.ConsultationType(intent.Metadata[constvars.MetadataConsultationType]),
		Symptoms:         intent.Metadata[constvars.MetadataSymptoms],
		RoomID:           utils.GenerateRoomID(),
		Status:           models.AppointmentScheduled,
		ConsultationFees: consultationFees,
		PlatformFees:     platformFees,
		TotalAmount:      totalAmount,
		PaymentStatus:    models.PaymentPaid,
		PayoutStatus:     models.PayoutPending,
		PaymentMethod:    constvars.PaymentMethodStripe,
		PaymentIntentID:  intent.ID,
		ChargeID:         intent.LatestCharge,
		PaymentDate:      time.Now().UTC(),
	}

	inserted, err := uc.AppointmentRepository.Insert(ctx, appointment)
	if err != nil {
		// Another request finalized this intent between our lookup and the
		// insert; the unique index makes this safe to resolve by reading.
		if mongo.IsDuplicateKeyError(err) {
			existing, findErr := uc.AppointmentRepository.FindByPaymentIntentID(ctx, intent.ID)
			if findErr != nil {
				return nil, findErr
			}
			if existing != nil {
				return existing, nil
			}
			return nil, exceptions.ErrMongoDBInsertDocument(err)
		}
		return nil, err
	}

	uc.Log.Info("paymentUsecase.finalizeAppointment appointment created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, inserted.ID.Hex()),
		zap.String(constvars.LoggingPaymentIntentIDKey, intent.ID),
	)
	return inserted, nil
}

// buildAppointmentResponse expands the doctor and patient projections and,
// for a freshly created booking, fires the confirmation notification.
// Notification failure is logged and swallowed: the appointment is already
// committed.
func (uc *paymentUsecase) buildAppointmentResponse(ctx context.Context, appointment *models.Appointment, notify bool) (*responses.AppointmentResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	doctor, err := uc.DoctorRepository.FindByID(ctx, appointment.DoctorID.Hex())
	if err != nil {
		return nil, err
	}
	patient, err := uc.PatientRepository.FindByID(ctx, appointment.PatientID.Hex())
	if err != nil {
		return nil, err
	}

	if notify && uc.NotificationPublisher != nil {
		if err := uc.NotificationPublisher.PublishBookingConfirmed(ctx, appointment, doctor, patient); err != nil {
			uc.Log.Warn("paymentUsecase.buildAppointmentResponse failed to publish notification",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
				zap.Error(err),
			)
		}
	}

	return responses.NewAppointmentResponse(appointment, doctor, patient), nil
}
