package questionnaire

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const draftKeyPrefix = "draft:"

// DraftTTL is how long an untouched wizard draft survives. Every save
// refreshes the clock.
const DraftTTL = 2 * time.Hour

// DraftStore keeps in-progress wizard sessions in Redis.
type DraftStore struct {
	client *redis.Client
}

// NewDraftStore wraps a Redis client as a draft store.
func NewDraftStore(client *redis.Client) *DraftStore {
	return &DraftStore{client: client}
}

// Save persists the wizard session and refreshes its TTL.
func (s *DraftStore) Save(ctx context.Context, session *WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKeyPrefix+session.DraftID, data, DraftTTL).Err(); err != nil {
		return fmt.Errorf("failed to save wizard draft: %w", err)
	}
	return nil
}

// Get loads a wizard session, or DraftNotFoundError when absent or expired.
func (s *DraftStore) Get(ctx context.Context, draftID string) (*WizardSession, error) {
	data, err := s.client.Get(ctx, draftKeyPrefix+draftID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, &DraftNotFoundError{DraftID: draftID}
		}
		return nil, fmt.Errorf("failed to load wizard draft: %w", err)
	}
	var session WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wizard draft: %w", err)
	}
	return &session, nil
}

// Delete removes a completed or abandoned draft.
func (s *DraftStore) Delete(ctx context.Context, draftID string) error {
	return s.client.Del(ctx, draftKeyPrefix+draftID).Err()
}
