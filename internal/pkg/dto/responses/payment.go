package responses

// CreateOrderResponse carries what the booking UI needs to confirm the
// payment client-side. Amount is in major currency units; the provider's
// minor-unit figure is converted back before it leaves the service.
type CreateOrderResponse struct {
	ClientSecret    string  `json:"clientSecret"`
	PaymentIntentID string  `json:"paymentIntentId"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
}
