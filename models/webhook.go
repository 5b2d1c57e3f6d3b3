package models

import (
	"net/url"
	"regexp"
)

// BookingConfirmedEvent is the only webhook event type that triggers the
// export pipeline. Other event types are acknowledged and ignored; the
// calendar provider delivers at-least-once and must not see errors for
// irrelevant events.
const BookingConfirmedEvent = "invitee.created"

// BookingWebhookEvent is the inbound calendar confirmation payload.
type BookingWebhookEvent struct {
	Event   string                `json:"event"`
	Payload BookingWebhookPayload `json:"payload"`
}

// BookingWebhookPayload carries the invitee detail we care about. The session
// identifier travels in the join URL's "session" query parameter; older
// integrations only embed it somewhere in the invitee URI.
type BookingWebhookPayload struct {
	URI       string `json:"uri"`
	JoinURL   string `json:"join_url"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
}

var sessionIDPattern = regexp.MustCompile(`session=([0-9a-zA-Z-]+)`)

// SessionID resolves the questionnaire session identifier from the payload:
// the join URL query parameter wins, then a regex scan of the URI. Returns ""
// when neither yields a match.
func (p *BookingWebhookPayload) SessionID() string {
	if u, err := url.Parse(p.JoinURL); err == nil {
		if id := u.Query().Get("session"); id != "" {
			return id
		}
	}
	if m := sessionIDPattern.FindStringSubmatch(p.URI); len(m) == 2 {
		return m[1]
	}
	return ""
}
