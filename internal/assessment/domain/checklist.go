package domain

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed checklists.yaml
var checklistsYAML []byte

// ChecklistEntry is one recognized option of a "select all that apply" form
// group: a concrete field name plus the name shown in reports. An optional
// detail field carries freeform text appended to the display name.
type ChecklistEntry struct {
	Field       string `yaml:"field"`
	Display     string `yaml:"display"`
	DetailField string `yaml:"detail_field"`
	DetailLabel string `yaml:"detail_label"`
}

// Checklists holds every enumerated checklist group. The set of recognized
// fields is explicit configuration, not derived by scanning key prefixes.
type Checklists struct {
	Scope     []ChecklistEntry `yaml:"scope"`
	Frequency []ChecklistEntry `yaml:"frequency"`
	Waste     []ChecklistEntry `yaml:"waste"`
}

// LoadChecklists parses the embedded checklist configuration.
func LoadChecklists() (*Checklists, error) {
	var c Checklists
	if err := yaml.Unmarshal(checklistsYAML, &c); err != nil {
		return nil, fmt.Errorf("parse checklist config: %w", err)
	}
	return &c, nil
}

// NoneSpecified is emitted when no entry of a checklist group is checked.
const NoneSpecified = "None Specified"

// checklistChecked is the fixed vocabulary marking a checklist entry as
// selected. Everything else, including absence, leaves it unchecked.
func checklistChecked(value string) bool {
	switch value {
	case "True", "true", "Yes", "yes", CheckedGlyph:
		return true
	}
	return false
}

// ResolveChecklist returns the display names of all checked entries, in
// configuration order, with per-entry detail text appended where configured.
func ResolveChecklist(r Record, entries []ChecklistEntry) []string {
	var names []string
	for _, e := range entries {
		if !checklistChecked(r.Get(e.Field)) {
			continue
		}
		name := e.Display
		if e.DetailField != "" {
			detail := r.GetDefault(e.DetailField, "Not specified")
			label := e.DetailLabel
			if label == "" {
				label = "Details"
			}
			name = fmt.Sprintf("%s (%s: %s)", name, label, detail)
		}
		names = append(names, name)
	}
	return names
}

// ChecklistLine joins the checked display names with ", ", or returns
// NoneSpecified when nothing is checked.
func ChecklistLine(r Record, entries []ChecklistEntry) string {
	return joinOrNone(ResolveChecklist(r, entries), ", ")
}

// WasteLine renders the waste disposal group; entries are joined with "; "
// because individual names may themselves contain commas.
func WasteLine(r Record, entries []ChecklistEntry) string {
	return joinOrNone(ResolveChecklist(r, entries), "; ")
}

func joinOrNone(names []string, sep string) string {
	if len(names) == 0 {
		return NoneSpecified
	}
	return strings.Join(names, sep)
}
