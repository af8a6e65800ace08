// Package domain holds the assessment record model and the resolution rules
// that turn loosely-typed submission fields into displayable report text.
package domain

import (
	"fmt"
	"strings"
)

// Record is the normalized field bag for one assessment submission. Values
// arrive from JSON and may be strings, numbers, nil, or nested structures;
// accessors coerce and default so that a missing key never fails a render.
type Record map[string]any

// Clone returns a shallow copy of the record. Normalizers operate on copies
// so callers keep an unmodified view of the original submission.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// IsEmpty reports whether the record carries no fields at all.
func (r Record) IsEmpty() bool {
	return len(r) == 0
}

// Get returns the field coerced to a string, or "" when absent.
func (r Record) Get(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// GetDefault returns the field's string value, substituting def when the
// field is absent or blank. Absent and empty are deliberately equivalent.
func (r Record) GetDefault(key, def string) string {
	if s := strings.TrimSpace(r.Get(key)); s != "" {
		return s
	}
	return def
}

// GetEither returns the first of the given keys that carries a non-blank
// value, or def when none does.
func (r Record) GetEither(def string, keys ...string) string {
	for _, key := range keys {
		if s := strings.TrimSpace(r.Get(key)); s != "" {
			return s
		}
	}
	return def
}

// DefectItem is one entry in the inspection's ordered list of noted defects.
// Order is significant: it determines 1-based numbering in both reports.
type DefectItem struct {
	Location       string
	Description    string
	Category       string
	Priority       string
	Recommendation string
	Photos         []string
}

// ExtraPhotoCount returns how many photos an item carries beyond the first,
// which is the only one embedded as a spreadsheet thumbnail.
func (d DefectItem) ExtraPhotoCount() int {
	if len(d.Photos) <= 1 {
		return 0
	}
	return len(d.Photos) - 1
}

// ParseDefectItems converts the raw defect_items value into typed items.
// Anything that is not a list of objects yields an empty slice; malformed
// entries contribute an empty item rather than failing the parse.
func ParseDefectItems(v any) []DefectItem {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}

	items := make([]DefectItem, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			items = append(items, DefectItem{})
			continue
		}
		rec := Record(m)
		item := DefectItem{
			Location:       rec.Get("location"),
			Description:    rec.Get("description"),
			Category:       rec.Get("category"),
			Priority:       rec.Get("priority"),
			Recommendation: rec.Get("recommendation"),
		}
		if photos, ok := m["photos"].([]any); ok {
			for _, p := range photos {
				if s, ok := p.(string); ok && s != "" {
					item.Photos = append(item.Photos, s)
				}
			}
		}
		items = append(items, item)
	}
	return items
}
