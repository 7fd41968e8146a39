package payment_gateway

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"context"

	"telemed-service/internal/app/config"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	stripeServiceInstance contracts.PaymentGatewayService
	onceStripeService     sync.Once
)

type stripeService struct {
	BaseUrl    string
	SecretKey  string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// stripePaymentIntent is the subset of Stripe's payment_intent object this
// service reads back.
type stripePaymentIntent struct {
	ID           string            `json:"id"`
	ClientSecret string            `json:"client_secret"`
	Status       string            `json:"status"`
	Amount       int64             `json:"amount"`
	Currency     string            `json:"currency"`
	LatestCharge string            `json:"latest_charge"`
	Metadata     map[string]string `json:"metadata"`
}

type stripeErrorEnvelope struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func NewStripeService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	onceStripeService.Do(func() {
		instance := &stripeService{
			BaseUrl:   strings.TrimRight(internalConfig.PaymentGateway.BaseUrl, "/"),
			SecretKey: internalConfig.PaymentGateway.SecretKey,
			HTTPClient: &http.Client{
				Timeout: time.Duration(internalConfig.PaymentGateway.RequestTimeout) * time.Second,
			},
			Limiter: rate.NewLimiter(rate.Limit(internalConfig.PaymentGateway.RequestsPerSecond), internalConfig.PaymentGateway.RequestsPerSecond),
			Log:     logger,
		}
		stripeServiceInstance = instance
	})
	return stripeServiceInstance
}

func (s *stripeService) CreatePaymentIntent(ctx context.Context, input *contracts.CreatePaymentIntentInput) (*contracts.PaymentIntent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("stripeService.CreatePaymentIntent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("amount", input.Amount),
		zap.String("currency", input.Currency),
	)

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(input.Amount, 10))
	form.Set("currency", strings.ToLower(input.Currency))
	if input.Description != "" {
		form.Set("description", input.Description)
	}
	for key, value := range input.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	intent, err := s.do(ctx, constvars.MethodPost, "/v1/payment_intents", form, exceptions.ErrProcessorCreateIntent)
	if err != nil {
		return nil, err
	}

	s.Log.Info("stripeService.CreatePaymentIntent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIntentIDKey, intent.ID),
	)
	return intent, nil
}

func (s *stripeService) RetrievePaymentIntent(ctx context.Context, paymentIntentID string) (*contracts.PaymentIntent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("stripeService.RetrievePaymentIntent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIntentIDKey, paymentIntentID),
	)

	path := "/v1/payment_intents/" + url.PathEscape(paymentIntentID)
	intent, err := s.do(ctx, constvars.MethodGet, path, nil, exceptions.ErrProcessorRetrieveIntent)
	if err != nil {
		return nil, err
	}

	s.Log.Info("stripeService.RetrievePaymentIntent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIntentIDKey, intent.ID),
		zap.String(constvars.LoggingPaymentStatusKey, intent.Status),
	)
	return intent, nil
}

func (s *stripeService) do(ctx context.Context, method, path string, form url.Values, wrap func(error) *exceptions.CustomError) (*contracts.PaymentIntent, error) {
	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, wrap(err)
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, s.BaseUrl+path, body)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.SecretKey)
	if form != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrProcessorDecodeResponse(err)
	}

	if resp.StatusCode != constvars.StatusOK {
		var envelope stripeErrorEnvelope
		if err := json.Unmarshal(respBody, &envelope); err == nil && envelope.Error.Message != "" {
			return nil, wrap(fmt.Errorf("%s: %s", envelope.Error.Type, envelope.Error.Message))
		}
		return nil, wrap(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var intent stripePaymentIntent
	if err := json.Unmarshal(respBody, &intent); err != nil {
		return nil, exceptions.ErrProcessorDecodeResponse(err)
	}

	return &contracts.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       intent.Status,
		Amount:       intent.Amount,
		Currency:     strings.ToUpper(intent.Currency),
		LatestCharge: intent.LatestCharge,
		Metadata:     intent.Metadata,
	}, nil
}
