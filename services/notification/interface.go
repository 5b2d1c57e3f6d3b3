package notification

import (
	"context"

	"nutrify/models"
)

// Service is the best-effort side channel: confirmation and internal emails
// plus operational chat alerts. Nothing here sits on the critical path of a
// user-visible result; callers log returned errors and move on. Calls are
// independent and unordered, and duplicate sends are possible on retried
// requests; the session identifier in the message body is the only
// correlation aid.
type Service interface {
	// SendConfirmation emails the submitter that their questionnaire arrived.
	SendConfirmation(ctx context.Context, email, name, sessionID string) error
	// SendInternalNotification emails the full record to the consultant.
	SendInternalNotification(ctx context.Context, record *models.QuestionnaireRecord) error
	// SendBookingConfirmation emails the client after a confirmed booking,
	// with the exported document URL when one exists.
	SendBookingConfirmation(ctx context.Context, record *models.QuestionnaireRecord, docURL string) error
	// SendReservationReminder emails the client ahead of their consultation.
	SendReservationReminder(ctx context.Context, reservation *models.Reservation) error
	// AlertOps posts an operational message to the chat webhook.
	AlertOps(ctx context.Context, message string) error
}
