package utils

import "github.com/google/uuid"

// NewSessionID issues the opaque identifier that joins a questionnaire record
// to its booking, payment and exported document. Generated server-side at
// submission time, never user-supplied.
func NewSessionID() string {
	return uuid.New().String()
}
