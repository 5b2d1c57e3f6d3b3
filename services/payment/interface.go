package payment

import (
	"context"
	"fmt"

	"nutrify/models"
)

// Service initiates payments for paid offerings. The redirect gateway builds
// a signed hand-off URL; card payments go through Stripe. Neither path
// verifies inbound gateway responses; the result page trusts the redirect
// query flag.
type Service interface {
	CreatePayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentResponse, error)
}

// InvalidRequestError rejects a payment request with missing or malformed
// fields. Rendered as a 400.
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string {
	return e.Message
}

// GatewayError wraps a failed hand-off to the payment provider.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway: %v", e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
