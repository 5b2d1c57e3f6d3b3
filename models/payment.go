package models

// Payment methods accepted by the payment service.
const (
	PaymentMethodGateway = "gateway"
	PaymentMethodCard    = "card"
)

// PaymentRequest initiates a payment for a paid offering. Amount is in the
// currency's minor unit.
type PaymentRequest struct {
	SessionID string `json:"sessionId"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Service   string `json:"service"`
	Method    string `json:"method"`
}

// PaymentResponse carries the gateway hand-off. For the redirect gateway,
// GatewayURL is where the client should be sent; for card payments,
// ClientSecret confirms the Stripe PaymentIntent client-side. The result page
// trusts the gateway's redirect query flag; there is no inbound verification.
type PaymentResponse struct {
	TransactionID string `json:"transactionId"`
	GatewayURL    string `json:"gatewayUrl,omitempty"`
	ClientSecret  string `json:"clientSecret,omitempty"`
}
