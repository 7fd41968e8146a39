package contracts

import (
	"context"

	"telemed-service/internal/app/models"
)

// BookingNotificationPublisher pushes a booking-confirmation event onto the
// notifications queue. Publishing is best effort and never blocks a booking.
type BookingNotificationPublisher interface {
	PublishBookingConfirmed(ctx context.Context, appointment *models.Appointment, doctor *models.Doctor, patient *models.Patient) error
}
