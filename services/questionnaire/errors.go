package questionnaire

import "fmt"

// ValidationError rejects a submission with a per-field message map. It is
// user-correctable and rendered inline as a 400.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// PersistenceError wraps a failed record save. It is the only failure that
// blocks user-visible success; nothing downstream (emails, alerts) fires.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// DraftNotFoundError reports a missing or expired wizard draft.
type DraftNotFoundError struct {
	DraftID string
}

func (e *DraftNotFoundError) Error() string {
	return fmt.Sprintf("draft %s not found or expired", e.DraftID)
}
