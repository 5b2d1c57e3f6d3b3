package questionnaire

import (
	"context"
	"errors"
	"strings"
	"time"

	questionnaireRepo "nutrify/database/repository/questionnaire"
	"nutrify/models"
	"nutrify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultQuestionnaireService is the production implementation.
type DefaultQuestionnaireService struct {
	Repo     questionnaireRepo.Repository
	Drafts   *DraftStore
	Notifier Notifier
	Logger   *zap.Logger
}

func (s *DefaultQuestionnaireService) StartDraft(ctx context.Context) (*WizardSession, error) {
	session := NewWizardSession(uuid.New().String())
	if err := s.Drafts.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultQuestionnaireService) GetDraft(ctx context.Context, draftID string) (*WizardSession, error) {
	return s.Drafts.Get(ctx, draftID)
}

func (s *DefaultQuestionnaireService) SetField(ctx context.Context, draftID, name, value string) (*WizardSession, error) {
	session, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	session.SetField(name, value)
	if err := s.Drafts.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Next advances the wizard. When the final section validates, the draft is
// submitted: whole-form re-validation, persistence, notifications. A
// whole-form failure walks the wizard back to the first invalid section.
func (s *DefaultQuestionnaireService) Next(ctx context.Context, draftID string) (*StepResult, error) {
	session, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if session.Next() && session.Complete {
		sessionID, err := s.Submit(ctx, session.Data)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				session.JumpToFirstInvalid(verr.Fields)
				if saveErr := s.Drafts.Save(ctx, session); saveErr != nil {
					return nil, saveErr
				}
				return &StepResult{Session: session}, nil
			}
			// Persistence failures block; the draft survives so the client
			// can retry.
			session.Complete = false
			if saveErr := s.Drafts.Save(ctx, session); saveErr != nil {
				s.Logger.Error("questionnaire: draft save after failed submit", zap.Error(saveErr))
			}
			return nil, err
		}
		if err := s.Drafts.Delete(ctx, draftID); err != nil {
			s.Logger.Warn("questionnaire: draft cleanup failed", zap.String("draftId", draftID), zap.Error(err))
		}
		return &StepResult{SessionID: sessionID, Submitted: true}, nil
	}

	if err := s.Drafts.Save(ctx, session); err != nil {
		return nil, err
	}
	return &StepResult{Session: session}, nil
}

func (s *DefaultQuestionnaireService) Prev(ctx context.Context, draftID string) (*WizardSession, error) {
	session, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	session.Prev()
	if err := s.Drafts.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Submit runs the exhaustive whole-form validation, persists the record under
// a freshly issued session identifier and fires the confirmation and internal
// emails best-effort. No emails are sent when the save fails.
func (s *DefaultQuestionnaireService) Submit(ctx context.Context, fields map[string]string) (string, error) {
	if errs := ValidateAll(fields); len(errs) > 0 {
		return "", &ValidationError{Fields: errs}
	}

	record := models.QuestionnaireRecord{
		SessionID: utils.NewSessionID(),
		Fields:    trimFields(fields),
		CreatedAt: time.Now(),
	}

	stored, err := s.Repo.Save(ctx, record)
	if err != nil {
		s.Logger.Error("questionnaire: record save failed", zap.Error(err))
		return "", &PersistenceError{Err: err}
	}

	// Best-effort fan-out; failures are logged inside the notifier and never
	// surface to the submitter.
	_ = s.Notifier.SendConfirmation(ctx, stored.Email(), stored.Name(), stored.SessionID)
	_ = s.Notifier.SendInternalNotification(ctx, stored)

	s.Logger.Info("questionnaire: record stored",
		zap.String("sessionId", stored.SessionID), zap.String("email", stored.Email()))
	return stored.SessionID, nil
}

func (s *DefaultQuestionnaireService) FindBySessionID(ctx context.Context, sessionID string) (*models.QuestionnaireRecord, error) {
	return s.Repo.FindBySessionID(ctx, sessionID)
}

// trimFields keeps only known fields with whitespace-trimmed values, dropping
// empties so the stored record stays flat and sparse.
func trimFields(fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for name, value := range fields {
		value = strings.TrimSpace(value)
		if value == "" || !KnownField(name) {
			continue
		}
		out[name] = value
	}
	return out
}
