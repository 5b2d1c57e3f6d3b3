package export

import (
	"context"
	"errors"

	"nutrify/models"
)

// ErrRecordNotFound fails the webhook when the embedded session identifier
// resolves to no stored questionnaire record.
var ErrRecordNotFound = errors.New("no questionnaire record for session")

// ErrNoSessionID fails the webhook when the payload carries no resolvable
// session identifier.
var ErrNoSessionID = errors.New("no session identifier in webhook payload")

// Result summarizes how far the pipeline got. The webhook answers 200 with
// this summary as long as the record lookup succeeded, even when the later
// steps partially failed.
type Result struct {
	Ignored      bool   `json:"ignored"`
	SessionID    string `json:"sessionId,omitempty"`
	DocumentURL  string `json:"documentUrl,omitempty"`
	CRMContactID string `json:"crmContactId,omitempty"`
	Notified     bool   `json:"notified"`
}

// DocumentCreator turns a questionnaire record into a shared document and
// returns its URL.
type DocumentCreator interface {
	CreateRecordDocument(ctx context.Context, record *models.QuestionnaireRecord) (string, error)
}

// CRMClient creates a contact in the CRM and returns its id.
type CRMClient interface {
	CreateContact(ctx context.Context, firstName, lastName, email, docURL string) (string, error)
}

// Service runs the post-confirmation export pipeline.
type Service interface {
	HandleBookingConfirmed(ctx context.Context, event models.BookingWebhookEvent) (*Result, error)
}
