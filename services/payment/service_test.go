package payment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/url"
	"strings"
	"testing"

	"nutrify/models"

	"go.uber.org/zap"
)

func newTestPaymentService(production bool) *DefaultPaymentService {
	return &DefaultPaymentService{
		MerchantID: "M-123",
		Secret:     "tajny-klic",
		GatewayURL: "https://gateway.example.com/pay",
		BaseURL:    "https://nutrify.example.com",
		Production: production,
		Logger:     zap.NewNop(),
	}
}

func validRequest() models.PaymentRequest {
	return models.PaymentRequest{
		SessionID: "sess-1",
		Amount:    150000,
		Currency:  "CZK",
		Service:   "konzultace",
		Method:    models.PaymentMethodGateway,
	}
}

func TestSignParamsCanonicalOrder(t *testing.T) {
	params := map[string]string{
		"merchant": "M-123",
		"amount":   "1000",
		"refId":    "r-1",
	}

	sum := sha256.Sum256([]byte("amount=1000&merchant=M-123&refId=r-1&tajny"))
	want := hex.EncodeToString(sum[:])
	if got := SignParams(params, "tajny"); got != want {
		t.Errorf("SignParams = %s, want %s", got, want)
	}
}

func TestSignParamsStableAcrossCalls(t *testing.T) {
	params := map[string]string{
		"c": "3", "a": "1", "b": "2", "e": "5", "d": "4",
	}
	first := SignParams(params, "s")
	for i := 0; i < 20; i++ {
		if got := SignParams(params, "s"); got != first {
			t.Fatal("signature must not depend on map iteration order")
		}
	}
}

func TestSignParamsSecretChangesSignature(t *testing.T) {
	params := map[string]string{"a": "1"}
	if SignParams(params, "x") == SignParams(params, "y") {
		t.Error("different secrets must produce different signatures")
	}
}

func TestCreatePaymentNonProductionShortCircuit(t *testing.T) {
	svc := newTestPaymentService(false)

	resp, err := svc.CreatePayment(context.Background(), validRequest())
	if err != nil {
		t.Fatal(err)
	}
	if resp.TransactionID == "" {
		t.Error("expected a transaction identifier")
	}
	if !strings.HasPrefix(resp.GatewayURL, "https://nutrify.example.com/payment/result?status=success") {
		t.Errorf("expected synthetic success URL, got %s", resp.GatewayURL)
	}
	if !strings.Contains(resp.GatewayURL, "ref="+resp.TransactionID) {
		t.Errorf("success URL must carry the transaction reference, got %s", resp.GatewayURL)
	}
}

func TestCreatePaymentProductionSignedURL(t *testing.T) {
	svc := newTestPaymentService(true)

	resp, err := svc.CreatePayment(context.Background(), validRequest())
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := url.Parse(resp.GatewayURL)
	if err != nil {
		t.Fatal(err)
	}
	q := parsed.Query()
	if q.Get("merchant") != "M-123" {
		t.Errorf("merchant = %q", q.Get("merchant"))
	}
	if q.Get("amount") != "150000" {
		t.Errorf("amount = %q", q.Get("amount"))
	}
	if q.Get("session") != "sess-1" {
		t.Errorf("session = %q", q.Get("session"))
	}

	params := map[string]string{
		"merchant": q.Get("merchant"),
		"amount":   q.Get("amount"),
		"currency": q.Get("currency"),
		"refId":    q.Get("refId"),
		"session":  q.Get("session"),
		"label":    q.Get("label"),
	}
	if q.Get("signature") != SignParams(params, "tajny-klic") {
		t.Error("URL signature does not verify against its own parameters")
	}
}

func TestCreatePaymentDefaultsCurrency(t *testing.T) {
	svc := newTestPaymentService(true)

	req := validRequest()
	req.Currency = ""
	resp, err := svc.CreatePayment(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	parsed, _ := url.Parse(resp.GatewayURL)
	if got := parsed.Query().Get("currency"); got != "CZK" {
		t.Errorf("currency = %q, want CZK", got)
	}
}

func TestCreatePaymentValidation(t *testing.T) {
	svc := newTestPaymentService(false)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.PaymentRequest)
	}{
		{"missing session", func(r *models.PaymentRequest) { r.SessionID = " " }},
		{"zero amount", func(r *models.PaymentRequest) { r.Amount = 0 }},
		{"negative amount", func(r *models.PaymentRequest) { r.Amount = -100 }},
		{"unknown method", func(r *models.PaymentRequest) { r.Method = "crypto" }},
	}

	for _, tc := range cases {
		req := validRequest()
		tc.mutate(&req)
		_, err := svc.CreatePayment(ctx, req)
		var ierr *InvalidRequestError
		if !errors.As(err, &ierr) {
			t.Errorf("%s: expected *InvalidRequestError, got %v", tc.name, err)
		}
	}
}

func TestCreateCardPaymentUnconfigured(t *testing.T) {
	svc := newTestPaymentService(false)

	req := validRequest()
	req.Method = models.PaymentMethodCard
	_, err := svc.CreatePayment(context.Background(), req)
	var gerr *GatewayError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *GatewayError without a Stripe key, got %v", err)
	}
}
