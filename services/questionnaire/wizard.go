package questionnaire

import (
	"strings"
	"time"
)

// WizardSession is the server-side state of one in-progress intake form. It
// lives in Redis under DraftID until it either expires or completes.
//
// Section indexes Sections. Data is the record draft; Errors holds the
// messages from the last rejected transition.
type WizardSession struct {
	DraftID   string            `json:"draftId"`
	Section   int               `json:"section"`
	Data      map[string]string `json:"data"`
	Errors    map[string]string `json:"errors"`
	Complete  bool              `json:"complete"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// NewWizardSession starts a fresh wizard at the first section.
func NewWizardSession(draftID string) *WizardSession {
	now := time.Now()
	return &WizardSession{
		DraftID:   draftID,
		Section:   0,
		Data:      map[string]string{},
		Errors:    map[string]string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetField records an answer in the draft and optimistically clears any
// stale error on that field. Unknown field names are dropped so the draft
// only ever carries fields the section table knows about.
func (w *WizardSession) SetField(name, value string) {
	name = strings.TrimSpace(name)
	if !KnownField(name) {
		return
	}
	if w.Data == nil {
		w.Data = map[string]string{}
	}
	w.Data[name] = value
	delete(w.Errors, name)
	w.UpdatedAt = time.Now()
}

// Next validates the current section. On failure it populates Errors and the
// index stays put (a rejecting transition). On success it advances, or on the
// final section marks the wizard complete so the caller can submit. Reports
// whether the transition was accepted.
func (w *WizardSession) Next() bool {
	errs := ValidateSection(w.Data, w.Section)
	if len(errs) > 0 {
		w.Errors = errs
		w.UpdatedAt = time.Now()
		return false
	}

	w.Errors = map[string]string{}
	if w.Section < len(Sections)-1 {
		w.Section++
	} else {
		w.Complete = true
	}
	w.UpdatedAt = time.Now()
	return true
}

// Prev steps back one section unconditionally, flooring at the first. Going
// back never validates and never clears entered data.
func (w *WizardSession) Prev() {
	if w.Section > 0 {
		w.Section--
	}
	w.Complete = false
	w.UpdatedAt = time.Now()
}

// OnLastSection reports whether the wizard is showing the final section.
func (w *WizardSession) OnLastSection() bool {
	return w.Section == len(Sections)-1
}

// JumpToFirstInvalid moves the wizard back to the first section that owns a
// field in errs and installs those errors. Used when the whole-form
// re-validation at submit time rejects a skipped section.
func (w *WizardSession) JumpToFirstInvalid(errs map[string]string) {
	if idx := FirstInvalidSection(errs); idx >= 0 {
		w.Section = idx
	}
	w.Errors = errs
	w.Complete = false
	w.UpdatedAt = time.Now()
}
