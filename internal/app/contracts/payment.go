package contracts

import (
	"context"

	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	// CreateOrder runs the conflict gate and creates a provider payment intent
	// carrying the booking metadata. No appointment is written.
	CreateOrder(ctx context.Context, patientID string, request *requests.CreateOrderRequest) (*responses.CreateOrderResponse, error)
	// VerifyPayment confirms the intent succeeded and materializes the
	// appointment exactly once.
	VerifyPayment(ctx context.Context, patientID string, request *requests.VerifyPaymentRequest) (*responses.AppointmentResponse, error)
}
