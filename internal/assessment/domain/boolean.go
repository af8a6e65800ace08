package domain

import (
	"fmt"
	"strings"
)

// Glyphs used as visual boolean markers in rendered output.
const (
	CheckedGlyph   = "☑" // ☑
	UncheckedGlyph = "☐" // ☐
)

// Two boolean resolution policies coexist in the observed form behavior and
// are kept separate on purpose. AssumeYes treats anything that is not an
// explicit negation as affirmative (an empty value counts as yes); AssumeNo
// requires an explicit affirmation. Do not unify them.

// AssumeYes resolves a tri-state field with a yes bias: only "no", "false"
// or the unchecked glyph (case-insensitive) negate it.
func AssumeYes(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "no", "false", UncheckedGlyph:
		return false
	}
	return true
}

// AssumeNo resolves a field with a no bias: only "true", "yes" or the
// checked glyph (case-insensitive) affirm it.
func AssumeNo(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "true", "yes", CheckedGlyph:
		return true
	}
	return false
}

// ChoiceLine renders a resolved boolean as a single checked line. Exactly
// one of the two options ever appears; there is no partially-checked state.
func ChoiceLine(yes bool) string {
	if yes {
		return CheckedGlyph + " Yes"
	}
	return CheckedGlyph + " No"
}

// DetailedChoiceLine renders a resolved boolean with accompanying detail
// text. An affirmative always shows the detail (falling back to fallback
// when blank); a negative keeps stray detail text instead of discarding it.
func DetailedChoiceLine(yes bool, label, detail, fallback string) string {
	detail = strings.TrimSpace(detail)
	if yes {
		if detail == "" {
			detail = fallback
		}
		return fmt.Sprintf("%s Yes (%s: %s)", CheckedGlyph, label, detail)
	}
	if detail != "" {
		return fmt.Sprintf("%s No (%s: %s)", CheckedGlyph, label, detail)
	}
	return CheckedGlyph + " No"
}
