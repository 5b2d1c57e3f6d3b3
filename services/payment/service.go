package payment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"nutrify/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// DefaultPaymentService is the production implementation. Production false
// short-circuits the redirect gateway to a synthetic success without
// contacting anything.
type DefaultPaymentService struct {
	MerchantID string
	Secret     string
	GatewayURL string
	BaseURL    string
	StripeKey  string
	Production bool
	Logger     *zap.Logger
}

func (s *DefaultPaymentService) CreatePayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentResponse, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return nil, &InvalidRequestError{Message: "sessionId is required"}
	}
	if req.Amount <= 0 {
		return nil, &InvalidRequestError{Message: "amount must be positive"}
	}
	if strings.TrimSpace(req.Currency) == "" {
		req.Currency = "CZK"
	}

	switch req.Method {
	case models.PaymentMethodCard:
		return s.createCardPayment(ctx, req)
	case models.PaymentMethodGateway, "":
		return s.createGatewayPayment(req)
	default:
		return nil, &InvalidRequestError{Message: fmt.Sprintf("unsupported payment method: %s", req.Method)}
	}
}

// createCardPayment opens a Stripe PaymentIntent and hands its client secret
// back for client-side confirmation.
func (s *DefaultPaymentService) createCardPayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentResponse, error) {
	if s.StripeKey == "" {
		return nil, &GatewayError{Err: fmt.Errorf("card payments not configured")}
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(strings.ToLower(req.Currency)),
		Metadata: map[string]string{
			"sessionId": req.SessionID,
			"service":   req.Service,
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		s.Logger.Error("payment: stripe intent failed",
			zap.String("sessionId", req.SessionID), zap.Error(err))
		return nil, &GatewayError{Err: err}
	}

	s.Logger.Info("payment: stripe intent created",
		zap.String("sessionId", req.SessionID), zap.String("intent", intent.ID))
	return &models.PaymentResponse{
		TransactionID: intent.ID,
		ClientSecret:  intent.ClientSecret,
	}, nil
}

// createGatewayPayment builds the signed redirect URL for the form-based
// gateway. Outside production it returns a synthetic success immediately.
func (s *DefaultPaymentService) createGatewayPayment(req models.PaymentRequest) (*models.PaymentResponse, error) {
	transactionID := uuid.New().String()

	if !s.Production {
		s.Logger.Info("payment: non-production mode, returning synthetic success",
			zap.String("sessionId", req.SessionID), zap.String("transactionId", transactionID))
		return &models.PaymentResponse{
			TransactionID: transactionID,
			GatewayURL: fmt.Sprintf("%s/payment/result?status=success&ref=%s",
				strings.TrimRight(s.BaseURL, "/"), transactionID),
		}, nil
	}

	params := map[string]string{
		"merchant": s.MerchantID,
		"amount":   fmt.Sprintf("%d", req.Amount),
		"currency": strings.ToUpper(req.Currency),
		"refId":    transactionID,
		"session":  req.SessionID,
		"label":    req.Service,
	}
	signature := SignParams(params, s.Secret)

	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	values.Set("signature", signature)

	return &models.PaymentResponse{
		TransactionID: transactionID,
		GatewayURL:    s.GatewayURL + "?" + values.Encode(),
	}, nil
}

// SignParams computes the gateway request signature: parameters are
// canonicalized as key=value pairs joined by "&" in lexicographic key order,
// the shared secret is appended, and the whole string is SHA-256 hashed.
func SignParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	b.WriteByte('&')
	b.WriteString(secret)

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
