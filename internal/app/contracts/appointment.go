package contracts

import (
	"context"
	"time"

	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	// FindConflicting returns an appointment for the doctor whose
	// [slotStart, slotEnd) interval overlaps the given one and whose status is
	// in statuses, or nil when the slot is free. Touching intervals do not
	// overlap.
	FindConflicting(ctx context.Context, doctorID string, slotStart, slotEnd time.Time, statuses []models.AppointmentStatus) (*models.Appointment, error)
	FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByPatientID(ctx context.Context, patientID string, page, pageSize int) ([]models.Appointment, int, error)
	Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	EnsureIndexes(ctx context.Context) error
}

type AppointmentUsecase interface {
	ListByPatient(ctx context.Context, patientID string, query requests.ListAppointmentsQuery) ([]responses.AppointmentResponse, int, error)
	GetByID(ctx context.Context, appointmentID, requesterID string) (*responses.AppointmentResponse, error)
}
