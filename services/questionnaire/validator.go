package questionnaire

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Numeric answer bounds, inclusive.
const (
	AgeMin, AgeMax       = 16, 100
	HeightMin, HeightMax = 50, 250
	WeightMin, WeightMax = 20, 300
)

// emailPattern accepts a minimal local@domain.tld shape. It is deliberately
// loose beyond requiring a dot in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateSection runs every applicable rule for one section over the draft
// fields and returns a field→message map. Rules accumulate; there is no
// short-circuit, so the caller sees every broken field at once.
func ValidateSection(fields map[string]string, section int) map[string]string {
	errs := map[string]string{}
	if section < 0 || section >= len(Sections) {
		return errs
	}

	sec := Sections[section]
	for _, name := range sec.Required {
		if strings.TrimSpace(fields[name]) == "" {
			errs[name] = "Toto pole je povinné"
		}
	}
	for _, name := range sec.Fields {
		if msg := validateFieldShape(name, fields[name]); msg != "" {
			errs[name] = msg
		}
	}
	return errs
}

// ValidateAll re-verifies every section's rules, not just the current one, as
// a guard against skipped sections. Returns an accumulated field→message map.
func ValidateAll(fields map[string]string) map[string]string {
	errs := map[string]string{}
	for i := range Sections {
		for name, msg := range ValidateSection(fields, i) {
			errs[name] = msg
		}
	}
	return errs
}

// FirstInvalidSection returns the index of the first section owning any field
// in errs, or -1 when errs maps no known field.
func FirstInvalidSection(errs map[string]string) int {
	first := -1
	for name := range errs {
		idx := sectionOfField(name)
		if idx < 0 {
			continue
		}
		if first < 0 || idx < first {
			first = idx
		}
	}
	return first
}

// validateFieldShape checks value shape rules for the fields that have them.
// Empty values pass here; presence is the required-field rule's job.
func validateFieldShape(name, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	switch name {
	case "email":
		if !emailPattern.MatchString(value) {
			return "Zadejte platný e-mail"
		}
	case "vek":
		return validateIntRange(value, AgeMin, AgeMax)
	case "vyska":
		return validateIntRange(value, HeightMin, HeightMax)
	case "vaha":
		return validateIntRange(value, WeightMin, WeightMax)
	}
	return ""
}

func validateIntRange(value string, min, max int) string {
	n, err := strconv.Atoi(value)
	if err != nil {
		return "Zadejte celé číslo"
	}
	if n < min || n > max {
		return fmt.Sprintf("Hodnota musí být mezi %d a %d", min, max)
	}
	return ""
}
