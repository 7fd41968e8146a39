package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"telemed-service/internal/app/config"
	"telemed-service/internal/app/delivery/http/controllers"
	"telemed-service/internal/app/delivery/http/middlewares"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/dto/responses"
	"telemed-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const testJWTSecret = "test-jwt-secret"

type MockPaymentUsecase struct {
	mock.Mock
}

func (m *MockPaymentUsecase) CreateOrder(ctx context.Context, patientID string, request *requests.CreateOrderRequest) (*responses.CreateOrderResponse, error) {
	args := m.Called(ctx, patientID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.CreateOrderResponse), args.Error(1)
}

func (m *MockPaymentUsecase) VerifyPayment(ctx context.Context, patientID string, request *requests.VerifyPaymentRequest) (*responses.AppointmentResponse, error) {
	args := m.Called(ctx, patientID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AppointmentResponse), args.Error(1)
}

func signTestToken(t *testing.T, id, role string) string {
	t.Helper()
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"id":   id,
		"type": role,
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	assert.NoError(t, err)
	return signed
}

func newPaymentTestRouter(mockUsecase *MockPaymentUsecase) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: testJWTSecret},
	}

	paymentController := &controllers.PaymentController{
		Log:            logger,
		PaymentUsecase: mockUsecase,
	}
	middlewareInstance := middlewares.NewMiddlewares(logger, internalConfig)

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	router.Route("/payment", func(r chi.Router) {
		attachPaymentRouter(r, middlewareInstance, paymentController)
	})
	return router
}

func TestPaymentRouter_CreateOrder(t *testing.T) {
	patientID := "66b2f0c2e4b0a5d6c7b8e9f1"

	requestBody := requests.CreateOrderRequest{
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

	t.Run("authenticated patient gets a client secret", func(t *testing.T) {
		mockUsecase := new(MockPaymentUsecase)
		mockUsecase.On("CreateOrder", mock.Anything, patientID, mock.AnythingOfType("*requests.CreateOrderRequest")).
			Return(&responses.CreateOrderResponse{
				ClientSecret:    "pi_1_secret",
				PaymentIntentID: "pi_1",
				Amount:          1500.00,
				Currency:        "PKR",
			}, nil)
		router := newPaymentTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(requestBody)
		req := httptest.NewRequest("POST", "/payment/create-order", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, patientID, constvars.RoleTypePatient))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var envelope responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, constvars.PaymentOrderCreatedMessage, envelope.Message)

		data, ok := envelope.Data.(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, 1500.00, data["amount"])
		mockUsecase.AssertCalled(t, "CreateOrder", mock.Anything, patientID, mock.Anything)
	})

	t.Run("missing token is unauthorized", func(t *testing.T) {
		mockUsecase := new(MockPaymentUsecase)
		router := newPaymentTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(requestBody)
		req := httptest.NewRequest("POST", "/payment/create-order", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockUsecase.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("doctor role is rejected", func(t *testing.T) {
		mockUsecase := new(MockPaymentUsecase)
		router := newPaymentTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(requestBody)
		req := httptest.NewRequest("POST", "/payment/create-order", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, patientID, constvars.RoleTypeDoctor))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		mockUsecase := new(MockPaymentUsecase)
		router := newPaymentTestRouter(mockUsecase)

		invalid := requestBody
		invalid.DoctorID = ""
		jsonBody, _ := json.Marshal(invalid)
		req := httptest.NewRequest("POST", "/payment/create-order", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, patientID, constvars.RoleTypePatient))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockUsecase.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("slot conflict propagates the usecase status", func(t *testing.T) {
		mockUsecase := new(MockPaymentUsecase)
		mockUsecase.On("CreateOrder", mock.Anything, patientID, mock.Anything).
			Return(nil, exceptions.ErrSlotUnavailable(nil))
		router := newPaymentTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(requestBody)
		req := httptest.NewRequest("POST", "/payment/create-order", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, patientID, constvars.RoleTypePatient))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		var envelope responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.False(t, envelope.Success)
		assert.Equal(t, constvars.ErrClientSlotAlreadyBooked, envelope.Message)
	})
}

func TestPaymentRouter_VerifyPayment(t *testing.T) {
	patientID := "66b2f0c2e4b0a5d6c7b8e9f1"

	t.Run("verified payment returns the appointment", func(t *testing.T) {
		mockUsecase := new(MockPaymentUsecase)
		mockUsecase.On("VerifyPayment", mock.Anything, patientID, mock.AnythingOfType("*requests.VerifyPaymentRequest")).
			Return(&responses.AppointmentResponse{
				ID:              "66c3f0c2e4b0a5d6c7b8e9f2",
				RoomID:          "room_abc",
				PaymentIntentID: "pi_10",
			}, nil)
		router := newPaymentTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(requests.VerifyPaymentRequest{PaymentIntentID: "pi_10"})
		req := httptest.NewRequest("POST", "/payment/verify-payment", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, patientID, constvars.RoleTypePatient))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var envelope responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, constvars.PaymentVerifiedMessage, envelope.Message)
	})

	t.Run("empty payment intent id fails validation", func(t *testing.T) {
		mockUsecase := new(MockPaymentUsecase)
		router := newPaymentTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(requests.VerifyPaymentRequest{})
		req := httptest.NewRequest("POST", "/payment/verify-payment", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, patientID, constvars.RoleTypePatient))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockUsecase.AssertNotCalled(t, "VerifyPayment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("incomplete payment is a bad request", func(t *testing.T) {
		mockUsecase := new(MockPaymentUsecase)
		mockUsecase.On("VerifyPayment", mock.Anything, patientID, mock.Anything).
			Return(nil, exceptions.ErrPaymentIncomplete(nil))
		router := newPaymentTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(requests.VerifyPaymentRequest{PaymentIntentID: "pi_11"})
		req := httptest.NewRequest("POST", "/payment/verify-payment", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, patientID, constvars.RoleTypePatient))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var envelope responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, constvars.ErrClientPaymentNotCompleted, envelope.Message)
	})
}
