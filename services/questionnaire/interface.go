package questionnaire

import (
	"context"

	"nutrify/models"
)

// StepResult is the outcome of a wizard transition. SessionID is set only
// when the final step submitted successfully; Session carries the state the
// client should render otherwise.
type StepResult struct {
	Session   *WizardSession `json:"session,omitempty"`
	SessionID string         `json:"sessionId,omitempty"`
	Submitted bool           `json:"submitted"`
}

// Notifier is the slice of the notification service the submit fan-out
// needs. Declared here so the notification package can depend on the section
// table without a cycle.
type Notifier interface {
	SendConfirmation(ctx context.Context, email, name, sessionID string) error
	SendInternalNotification(ctx context.Context, record *models.QuestionnaireRecord) error
}

// Service drives the intake wizard and owns submission: full re-validation,
// session identifier issuance, persistence and the best-effort notification
// fan-out.
type Service interface {
	StartDraft(ctx context.Context) (*WizardSession, error)
	GetDraft(ctx context.Context, draftID string) (*WizardSession, error)
	SetField(ctx context.Context, draftID, name, value string) (*WizardSession, error)
	Next(ctx context.Context, draftID string) (*StepResult, error)
	Prev(ctx context.Context, draftID string) (*WizardSession, error)

	// Submit validates and persists a complete record in one shot, returning
	// the new session identifier.
	Submit(ctx context.Context, fields map[string]string) (string, error)
	// FindBySessionID re-fetches a stored record for downstream pages.
	FindBySessionID(ctx context.Context, sessionID string) (*models.QuestionnaireRecord, error)
}
