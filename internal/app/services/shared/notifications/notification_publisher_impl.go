package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"

	"telemed-service/internal/app/config"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	publisherInstance contracts.BookingNotificationPublisher
	oncePublisher     sync.Once
)

type bookingNotificationPublisher struct {
	Connection *amqp091.Connection
	QueueName  string
	Log        *zap.Logger
}

type bookingConfirmedEvent struct {
	AppointmentID    string    `json:"appointmentId"`
	RoomID           string    `json:"roomId"`
	DoctorName       string    `json:"doctorName"`
	DoctorEmail      string    `json:"doctorEmail"`
	PatientName      string    `json:"patientName"`
	PatientEmail     string    `json:"patientEmail"`
	PatientPhone     string    `json:"patientPhone"`
	ConsultationType string    `json:"consultationType"`
	SlotStart        time.Time `json:"slotStart"`
	SlotEnd          time.Time `json:"slotEnd"`
	TotalAmount      string    `json:"totalAmount"`
}

func NewBookingNotificationPublisher(connection *amqp091.Connection, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.BookingNotificationPublisher {
	oncePublisher.Do(func() {
		instance := &bookingNotificationPublisher{
			Connection: connection,
			QueueName:  internalConfig.Booking.NotificationQueue,
			Log:        logger,
		}
		publisherInstance = instance
	})
	return publisherInstance
}

func (p *bookingNotificationPublisher) PublishBookingConfirmed(ctx context.Context, appointment *models.Appointment, doctor *models.Doctor, patient *models.Patient) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("bookingNotificationPublisher.PublishBookingConfirmed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
		zap.String(constvars.LoggingQueueNameKey, p.QueueName),
	)

	event := bookingConfirmedEvent{
		AppointmentID:    appointment.ID.Hex(),
		RoomID:           appointment.RoomID,
		DoctorName:       doctor.Name,
		DoctorEmail:      doctor.Email,
		PatientName:      patient.Name,
		PatientEmail:     patient.Email,
		PatientPhone:     patient.Phone,
		ConsultationType: string(appointment.ConsultationType),
		SlotStart:        appointment.SlotStart,
		SlotEnd:          appointment.SlotEnd,
		TotalAmount:      fmt.Sprintf("%s %.2f", constvars.PaymentCurrency, appointment.TotalAmount),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	channel, err := p.Connection.Channel()
	if err != nil {
		return err
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(p.QueueName, true, false, false, false, nil)
	if err != nil {
		return err
	}

	err = channel.PublishWithContext(ctx, "", p.QueueName, false, false, amqp091.Publishing{
		ContentType: constvars.MIMEApplicationJSON,
		Body:        payload,
	})
	if err != nil {
		return err
	}

	p.Log.Info("bookingNotificationPublisher.PublishBookingConfirmed succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
	)
	return nil
}
