package models

import "testing"

func TestPayloadSessionIDFromJoinURL(t *testing.T) {
	p := BookingWebhookPayload{
		JoinURL: "https://calendly.com/event?session=abc-123&utm=x",
	}
	if got := p.SessionID(); got != "abc-123" {
		t.Errorf("SessionID = %q, want abc-123", got)
	}
}

func TestPayloadSessionIDFallsBackToURI(t *testing.T) {
	p := BookingWebhookPayload{
		JoinURL: "https://calendly.com/event",
		URI:     "https://api.calendly.com/invitees/xyz?session=def-456",
	}
	if got := p.SessionID(); got != "def-456" {
		t.Errorf("SessionID = %q, want def-456", got)
	}
}

func TestPayloadSessionIDJoinURLWins(t *testing.T) {
	p := BookingWebhookPayload{
		JoinURL: "https://calendly.com/event?session=from-join",
		URI:     "https://api.calendly.com/invitees/xyz?session=from-uri",
	}
	if got := p.SessionID(); got != "from-join" {
		t.Errorf("join URL must take precedence, got %q", got)
	}
}

func TestPayloadSessionIDMissing(t *testing.T) {
	p := BookingWebhookPayload{
		JoinURL: "https://calendly.com/event",
		URI:     "https://api.calendly.com/invitees/xyz",
	}
	if got := p.SessionID(); got != "" {
		t.Errorf("SessionID = %q, want empty", got)
	}
}
