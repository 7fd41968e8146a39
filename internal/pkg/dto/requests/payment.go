package requests

import (
	"errors"
	"math"
	"time"
)

// CreateOrderRequest is the body of POST /payment/create-order. Slot bounds
// arrive as RFC3339 strings; fee fields are major currency units.
type CreateOrderRequest struct {
	DoctorID         string  `json:"doctorId" validate:"required"`
	SlotStartIso     string  `json:"slotStartIso" validate:"required"`
	SlotEndIso       string  `json:"slotEndIso" validate:"required"`
	Date             string  `json:"date" validate:"required"`
	ConsultationType string  `json:"consultationType" validate:"required,consultation_type"`
	Symptoms         string  `json:"symptoms" validate:"required"`
	ConsultationFees float64 `json:"consultationFees" validate:"gte=0"`
	PlatformFees     float64 `json:"platformFees" validate:"gte=0"`
	TotalAmount      float64 `json:"totalAmount" validate:"gt=0"`
}

// Validate covers the cross-field rules the tag validator cannot express:
// slot ordering and the fee sum.
func (r *CreateOrderRequest) Validate() error {
	start, err := time.Parse(time.RFC3339, r.SlotStartIso)
	if err != nil {
		return errors.New("slotStartIso must be a valid RFC3339 timestamp")
	}
	end, err := time.Parse(time.RFC3339, r.SlotEndIso)
	if err != nil {
		return errors.New("slotEndIso must be a valid RFC3339 timestamp")
	}
	if !start.Before(end) {
		return errors.New("slotStartIso must be before slotEndIso")
	}

	// The client sends totalAmount explicitly; the charge is built from it, so
	// a mismatch with the fee components is rejected rather than trusted.
	if math.Abs(r.ConsultationFees+r.PlatformFees-r.TotalAmount) >= 0.01 {
		return errors.New("totalAmount must equal consultationFees plus platformFees")
	}
	return nil
}

func (r *CreateOrderRequest) SlotStart() time.Time {
	start, _ := time.Parse(time.RFC3339, r.SlotStartIso)
	return start.UTC()
}

func (r *CreateOrderRequest) SlotEnd() time.Time {
	end, _ := time.Parse(time.RFC3339, r.SlotEndIso)
	return end.UTC()
}

// VerifyPaymentRequest is the body of POST /payment/verify-payment.
type VerifyPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId" validate:"required"`
}
