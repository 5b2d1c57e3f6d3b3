package notification

import (
	"context"
	"fmt"

	"nutrify/models"
	"nutrify/services/questionnaire"
	"nutrify/utils"

	"go.uber.org/zap"
)

// The questionnaire service sees this service through its own narrow
// notifier interface.
var _ questionnaire.Notifier = (*DefaultNotificationService)(nil)

// DefaultNotificationService delivers email through the SendGrid mailer and
// chat alerts through the Discord webhook. Either integration may be
// unconfigured, in which case its calls are logged no-ops.
type DefaultNotificationService struct {
	Mailer        *utils.Mailer
	Discord       *utils.DiscordWebhook
	InternalEmail string
	Logger        *zap.Logger
}

func NewDefaultNotificationService(mailer *utils.Mailer, discord *utils.DiscordWebhook, internalEmail string, logger *zap.Logger) *DefaultNotificationService {
	return &DefaultNotificationService{
		Mailer:        mailer,
		Discord:       discord,
		InternalEmail: internalEmail,
		Logger:        logger,
	}
}

func (s *DefaultNotificationService) SendConfirmation(ctx context.Context, email, name, sessionID string) error {
	err := s.Mailer.Send(ctx, email, name, confirmationSubject(), confirmationBody(name, sessionID))
	if err != nil {
		s.Logger.Error("notification: confirmation email failed",
			zap.String("sessionId", sessionID), zap.Error(err))
	}
	return err
}

func (s *DefaultNotificationService) SendInternalNotification(ctx context.Context, record *models.QuestionnaireRecord) error {
	if s.InternalEmail == "" {
		s.Logger.Info("notification: no internal recipient configured, skipping internal email",
			zap.String("sessionId", record.SessionID))
		return nil
	}
	err := s.Mailer.Send(ctx, s.InternalEmail, "", internalSubject(record), internalBody(record))
	if err != nil {
		s.Logger.Error("notification: internal email failed",
			zap.String("sessionId", record.SessionID), zap.Error(err))
	}
	return err
}

func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, record *models.QuestionnaireRecord, docURL string) error {
	err := s.Mailer.Send(ctx, record.Email(), record.Name(), bookingConfirmationSubject(), bookingConfirmationBody(record, docURL))
	if err != nil {
		s.Logger.Error("notification: booking confirmation email failed",
			zap.String("sessionId", record.SessionID), zap.Error(err))
	}
	return err
}

func (s *DefaultNotificationService) SendReservationReminder(ctx context.Context, reservation *models.Reservation) error {
	err := s.Mailer.Send(ctx, reservation.UserEmail, reservation.UserName, reminderSubject(reservation), reminderBody(reservation))
	if err != nil {
		s.Logger.Error("notification: reminder email failed",
			zap.String("reservationId", reservation.ID), zap.Error(err))
	}
	return err
}

func (s *DefaultNotificationService) AlertOps(ctx context.Context, message string) error {
	err := s.Discord.PostMessage(ctx, fmt.Sprintf("⚠️ %s", message))
	if err != nil {
		s.Logger.Error("notification: ops alert failed", zap.Error(err))
	}
	return err
}
