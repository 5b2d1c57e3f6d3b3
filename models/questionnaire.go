package models

import (
	"strings"
	"time"
)

// QuestionnaireRecord is one completed intake questionnaire. The intake form
// is a flat set of loosely-typed fields keyed by their Czech wire names
// ("jmeno", "email", "vek", ...); numeric answers are range-checked at
// submission time but stored as strings without a re-check at read time.
//
// Records are created once at submission and never updated in place. Every
// downstream page (booking, payment, document export) re-fetches the record
// by its session identifier.
type QuestionnaireRecord struct {
	SessionID string            `bson:"sessionId" json:"sessionId"`
	Fields    map[string]string `bson:"fields" json:"fields"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
}

// Field returns a trimmed field value, or "" when absent.
func (r *QuestionnaireRecord) Field(name string) string {
	if r == nil || r.Fields == nil {
		return ""
	}
	return strings.TrimSpace(r.Fields[name])
}

// Name returns the client's full name.
func (r *QuestionnaireRecord) Name() string {
	return r.Field("jmeno")
}

// Email returns the client's email address.
func (r *QuestionnaireRecord) Email() string {
	return r.Field("email")
}

// FirstName and LastName split the full name on the first space. A single
// token counts as the first name.
func (r *QuestionnaireRecord) FirstName() string {
	first, _ := SplitName(r.Name())
	return first
}

func (r *QuestionnaireRecord) LastName() string {
	_, last := SplitName(r.Name())
	return last
}

// SplitName splits a full name into first and last parts.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
