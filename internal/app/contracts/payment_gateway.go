package contracts

import "context"

// PaymentIntent mirrors the provider-side authorization object. Amount is in
// minor currency units.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64
	Currency     string
	LatestCharge string
	Metadata     map[string]string
}

type CreatePaymentIntentInput struct {
	Amount      int64
	Currency    string
	Description string
	Metadata    map[string]string
}

type PaymentGatewayService interface {
	CreatePaymentIntent(ctx context.Context, input *CreatePaymentIntentInput) (*PaymentIntent, error)
	RetrievePaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error)
}
