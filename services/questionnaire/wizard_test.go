package questionnaire

import "testing"

// fillSection answers every required field of one section with a valid value.
func fillSection(w *WizardSession, section int) {
	valid := completeFields()
	for _, name := range Sections[section].Required {
		w.SetField(name, valid[name])
	}
}

func TestNextRejectsIncompleteSection(t *testing.T) {
	w := NewWizardSession("d1")
	w.SetField("jmeno", "Jana")

	if w.Next() {
		t.Fatal("Next should reject with email and vek missing")
	}
	if w.Section != 0 {
		t.Errorf("rejected transition must not advance, section = %d", w.Section)
	}
	if w.Errors["email"] == "" || w.Errors["vek"] == "" {
		t.Errorf("expected errors for email and vek, got %v", w.Errors)
	}
	if _, ok := w.Errors["jmeno"]; ok {
		t.Error("jmeno was answered, should not be flagged")
	}
}

func TestNextAdvancesAndClearsErrors(t *testing.T) {
	w := NewWizardSession("d1")
	if w.Next() {
		t.Fatal("empty first section should not pass")
	}

	fillSection(w, 0)
	if !w.Next() {
		t.Fatalf("complete section should advance, errors: %v", w.Errors)
	}
	if w.Section != 1 {
		t.Errorf("expected section 1, got %d", w.Section)
	}
	if len(w.Errors) != 0 {
		t.Errorf("accepted transition should clear errors, got %v", w.Errors)
	}
}

func TestPrevFloorsAtFirstSection(t *testing.T) {
	w := NewWizardSession("d1")
	w.Prev()
	if w.Section != 0 {
		t.Errorf("Prev on first section must stay put, got %d", w.Section)
	}

	fillSection(w, 0)
	w.Next()
	w.Prev()
	if w.Section != 0 {
		t.Errorf("expected section 0 after Prev, got %d", w.Section)
	}
}

func TestPrevKeepsData(t *testing.T) {
	w := NewWizardSession("d1")
	fillSection(w, 0)
	w.Next()
	w.Prev()
	if w.Data["jmeno"] == "" {
		t.Error("going back must not discard entered data")
	}
}

func TestSetFieldClearsStaleError(t *testing.T) {
	w := NewWizardSession("d1")
	w.Next()
	if w.Errors["email"] == "" {
		t.Fatal("expected email error after rejected Next")
	}

	w.SetField("email", "jana@example.com")
	if _, ok := w.Errors["email"]; ok {
		t.Error("answering a field should clear its error")
	}
	if w.Errors["jmeno"] == "" {
		t.Error("other field errors must survive")
	}
}

func TestSetFieldDropsUnknownNames(t *testing.T) {
	w := NewWizardSession("d1")
	w.SetField("neexistuje", "x")
	if _, ok := w.Data["neexistuje"]; ok {
		t.Error("unknown field names must be dropped")
	}
}

func TestWizardCompletesOnLastSection(t *testing.T) {
	w := NewWizardSession("d1")
	for i := range Sections {
		fillSection(w, i)
		if !w.Next() {
			t.Fatalf("section %d should pass, errors: %v", i, w.Errors)
		}
	}
	if !w.Complete {
		t.Fatal("Next on the final section should mark the wizard complete")
	}
	if w.Section != len(Sections)-1 {
		t.Errorf("index must stay on the final section, got %d", w.Section)
	}

	w.Prev()
	if w.Complete {
		t.Error("Prev must clear the complete flag")
	}
}

func TestJumpToFirstInvalid(t *testing.T) {
	w := NewWizardSession("d1")
	w.Section = len(Sections) - 1
	w.Complete = true

	w.JumpToFirstInvalid(map[string]string{"vyska": "chybí", "souhlas": "chybí"})
	if w.Section != 3 {
		t.Errorf("expected jump to section 3 (telo), got %d", w.Section)
	}
	if w.Complete {
		t.Error("jump back must clear the complete flag")
	}
	if w.Errors["vyska"] == "" {
		t.Error("jump must install the validation errors")
	}
}
