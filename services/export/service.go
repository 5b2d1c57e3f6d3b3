package export

import (
	"context"
	"errors"
	"fmt"

	questionnaireRepo "nutrify/database/repository/questionnaire"
	"nutrify/models"
	"nutrify/services/notification"

	"go.uber.org/zap"
)

// DefaultExportService runs the export pipeline on webhook-confirmed
// bookings. Docs and CRM are optional; leaving either nil degrades that step
// to a logged skip.
type DefaultExportService struct {
	Records  questionnaireRepo.Repository
	Docs     DocumentCreator
	CRM      CRMClient
	Notifier notification.Service
	Logger   *zap.Logger
}

// HandleBookingConfirmed processes one inbound calendar event.
//
// Only the record lookup is a hard dependency. Document creation, CRM sync
// and the two emails are each independently fallible: their failures are
// logged (and ops-alerted) but do not abort the pipeline or the webhook
// response.
func (s *DefaultExportService) HandleBookingConfirmed(ctx context.Context, event models.BookingWebhookEvent) (*Result, error) {
	if event.Event != models.BookingConfirmedEvent {
		s.Logger.Info("export: ignoring webhook event", zap.String("event", event.Event))
		return &Result{Ignored: true}, nil
	}

	sessionID := event.Payload.SessionID()
	if sessionID == "" {
		return nil, ErrNoSessionID
	}

	record, err := s.Records.FindBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, questionnaireRepo.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, sessionID)
		}
		return nil, err
	}

	result := &Result{SessionID: sessionID}

	if s.Docs != nil {
		docURL, err := s.Docs.CreateRecordDocument(ctx, record)
		if err != nil {
			s.Logger.Error("export: document creation failed",
				zap.String("sessionId", sessionID), zap.Error(err))
			_ = s.Notifier.AlertOps(ctx, fmt.Sprintf("document export failed for %s: %v", sessionID, err))
		} else {
			result.DocumentURL = docURL
		}
	} else {
		s.Logger.Info("export: docs integration not configured, skipping document",
			zap.String("sessionId", sessionID))
	}

	// CRM sync only runs once a document exists; its failure does not undo
	// the document.
	if s.CRM != nil && result.DocumentURL != "" {
		contactID, err := s.CRM.CreateContact(ctx, record.FirstName(), record.LastName(), record.Email(), result.DocumentURL)
		if err != nil {
			s.Logger.Error("export: CRM contact creation failed",
				zap.String("sessionId", sessionID), zap.Error(err))
		} else {
			result.CRMContactID = contactID
		}
	}

	if err := s.Notifier.SendInternalNotification(ctx, record); err == nil {
		result.Notified = true
	}
	_ = s.Notifier.SendBookingConfirmation(ctx, record, result.DocumentURL)

	s.Logger.Info("export: pipeline finished",
		zap.String("sessionId", sessionID),
		zap.String("documentUrl", result.DocumentURL),
		zap.String("crmContactId", result.CRMContactID))
	return result, nil
}
