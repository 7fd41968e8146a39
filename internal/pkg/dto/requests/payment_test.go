package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCreateOrderRequest() *CreateOrderRequest {
	return &CreateOrderRequest{
		DoctorID:         "66a1f0c2e4b0a5d6c7b8e9f0",
		SlotStartIso:     "2026-09-14T10:00:00Z",
		SlotEndIso:       "2026-09-14T10:30:00Z",
		Date:             "2026-09-14",
		ConsultationType: "Video Consultation",
		Symptoms:         "persistent chest pain",
		ConsultationFees: 1200,
		PlatformFees:     300,
		TotalAmount:      1500,
	}
}

func TestCreateOrderRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, validCreateOrderRequest().Validate())
	})

	t.Run("start must precede end", func(t *testing.T) {
		request := validCreateOrderRequest()
		request.SlotStartIso = "2026-09-14T10:30:00Z"
		request.SlotEndIso = "2026-09-14T10:00:00Z"
		assert.Error(t, request.Validate())
	})

	t.Run("equal start and end is rejected", func(t *testing.T) {
		request := validCreateOrderRequest()
		request.SlotEndIso = request.SlotStartIso
		assert.Error(t, request.Validate())
	})

	t.Run("malformed timestamps are rejected", func(t *testing.T) {
		request := validCreateOrderRequest()
		request.SlotStartIso = "14-09-2026 10:00"
		assert.Error(t, request.Validate())
	})

	t.Run("fee components must sum to total", func(t *testing.T) {
		request := validCreateOrderRequest()
		request.TotalAmount = 1600
		assert.Error(t, request.Validate())
	})

	t.Run("sub-cent rounding noise is tolerated", func(t *testing.T) {
		request := validCreateOrderRequest()
		request.ConsultationFees = 1200.004
		request.PlatformFees = 299.999
		request.TotalAmount = 1500
		assert.NoError(t, request.Validate())
	})

	t.Run("slot accessors normalize to UTC", func(t *testing.T) {
		request := validCreateOrderRequest()
		request.SlotStartIso = "2026-09-14T15:00:00+05:00"
		request.SlotEndIso = "2026-09-14T15:30:00+05:00"
		assert.NoError(t, request.Validate())
		assert.Equal(t, "2026-09-14T10:00:00Z", request.SlotStart().Format("2006-01-02T15:04:05Z07:00"))
		assert.Equal(t, "2026-09-14T10:30:00Z", request.SlotEnd().Format("2006-01-02T15:04:05Z07:00"))
	})
}
