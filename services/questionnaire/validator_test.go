package questionnaire

import "testing"

// completeFields returns a draft with every required field filled and valid.
func completeFields() map[string]string {
	return map[string]string{
		"jmeno":        "Jana Nováková",
		"email":        "jana.novakova@example.com",
		"vek":          "34",
		"hlavniCil":    "Zhubnout 10 kg",
		"vyska":        "168",
		"vaha":         "74",
		"hodinySpanku": "7",
		"pocetJidel":   "4",
		"stres":        "střední",
		"typickyDen":   "Snídaně pečivo, oběd menza, večeře doma",
		"duvodZmeny":   "Zdraví a energie",
		"souhlas":      "ano",
	}
}

func TestValidateAllCompleteRecord(t *testing.T) {
	if errs := ValidateAll(completeFields()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateSectionRequiredFields(t *testing.T) {
	errs := ValidateSection(map[string]string{}, 0)
	for _, name := range []string{"jmeno", "email", "vek"} {
		if errs[name] == "" {
			t.Errorf("expected required-field error for %q, got none", name)
		}
	}
	if _, ok := errs["telefon"]; ok {
		t.Error("telefon is optional, should not be flagged")
	}
}

func TestValidateSectionWhitespaceOnlyIsMissing(t *testing.T) {
	fields := completeFields()
	fields["jmeno"] = "   "
	errs := ValidateSection(fields, 0)
	if errs["jmeno"] == "" {
		t.Error("whitespace-only required field should be rejected")
	}
}

func TestNumericBounds(t *testing.T) {
	cases := []struct {
		field string
		value string
		ok    bool
	}{
		{"vek", "15", false},
		{"vek", "16", true},
		{"vek", "100", true},
		{"vek", "101", false},
		{"vek", "abc", false},
		{"vyska", "49", false},
		{"vyska", "50", true},
		{"vyska", "250", true},
		{"vyska", "251", false},
		{"vaha", "19", false},
		{"vaha", "20", true},
		{"vaha", "300", true},
		{"vaha", "301", false},
	}

	for _, tc := range cases {
		fields := completeFields()
		fields[tc.field] = tc.value
		errs := ValidateAll(fields)
		_, flagged := errs[tc.field]
		if tc.ok && flagged {
			t.Errorf("%s=%s should be accepted, got %q", tc.field, tc.value, errs[tc.field])
		}
		if !tc.ok && !flagged {
			t.Errorf("%s=%s should be rejected", tc.field, tc.value)
		}
	}
}

func TestEmailShape(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"a@b.c", true},
		{"jana.novakova@example.com", true},
		{"a@b", false},
		{"a.com", false},
		{"@b.com", false},
		{"a @b.com", false},
	}

	for _, tc := range cases {
		fields := completeFields()
		fields["email"] = tc.email
		errs := ValidateSection(fields, 0)
		_, flagged := errs["email"]
		if tc.ok && flagged {
			t.Errorf("email %q should be accepted", tc.email)
		}
		if !tc.ok && !flagged {
			t.Errorf("email %q should be rejected", tc.email)
		}
	}
}

func TestValidateAllAccumulates(t *testing.T) {
	fields := completeFields()
	delete(fields, "jmeno")
	delete(fields, "souhlas")
	fields["vek"] = "200"

	errs := ValidateAll(fields)
	for _, name := range []string{"jmeno", "souhlas", "vek"} {
		if errs[name] == "" {
			t.Errorf("expected accumulated error for %q", name)
		}
	}
}

func TestFirstInvalidSection(t *testing.T) {
	if idx := FirstInvalidSection(map[string]string{"souhlas": "x", "vyska": "x"}); idx != 3 {
		t.Errorf("expected earliest owning section 3 (telo), got %d", idx)
	}
	if idx := FirstInvalidSection(map[string]string{"neexistuje": "x"}); idx != -1 {
		t.Errorf("expected -1 for unknown fields, got %d", idx)
	}
	if idx := FirstInvalidSection(nil); idx != -1 {
		t.Errorf("expected -1 for empty errors, got %d", idx)
	}
}
