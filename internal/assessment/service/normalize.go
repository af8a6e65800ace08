package service

import (
	"assessment_report_backend/internal/assessment/domain"
	"assessment_report_backend/platform/sanitize"
)

// NormalizedSubmission is the builder-ready view of one submission: the
// canonical record, the typed defect items, and (for the document path) the
// flattened gallery photo list.
type NormalizedSubmission struct {
	Record  domain.Record
	Items   []domain.DefectItem
	Gallery []string
}

// NormalizeForDocument prepares a raw submission for the document report:
// the signature field is retargeted to its report-internal key, transient
// photo fields are removed once consumed, and the primary inspection photo
// plus every defect photo are flattened into one ordered gallery list.
func NormalizeForDocument(raw domain.Record) NormalizedSubmission {
	rec := normalizeCommon(raw)
	items := parseItems(raw)

	// Gallery order: primary photo first, then item photos in item order.
	var gallery []string
	if primary := raw.Get(domain.FieldInspectionPhoto); primary != "" {
		gallery = append(gallery, primary)
	}
	for _, item := range items {
		gallery = append(gallery, item.Photos...)
	}

	// Retarget the inbound signature to the report-internal key and drop
	// the consumed photo fields so the payload is not stored twice.
	if sig := rec.Get(domain.FieldInspectorSignature); sig != "" {
		rec[domain.FieldTechSignature] = sig
	}
	delete(rec, domain.FieldInspectorSignature)
	delete(rec, domain.FieldInspectionPhoto)
	delete(rec, domain.FieldInspectionPhotoMime)

	return NormalizedSubmission{Record: rec, Items: items, Gallery: gallery}
}

// NormalizeForSpreadsheet prepares a raw submission for the spreadsheet
// report: every Base64 payload field is stripped from the scalar set before
// any row construction.
func NormalizeForSpreadsheet(raw domain.Record) NormalizedSubmission {
	rec := normalizeCommon(raw)
	items := parseItems(raw)

	for _, field := range domain.BinaryFields {
		delete(rec, field)
	}

	return NormalizedSubmission{Record: rec, Items: items}
}

// parseItems extracts the typed defect items and sanitizes their prose.
func parseItems(raw domain.Record) []domain.DefectItem {
	items := domain.ParseDefectItems(raw[domain.FieldDefectItems])
	for i := range items {
		items[i].Location = sanitize.Text(items[i].Location)
		items[i].Description = sanitize.Text(items[i].Description)
		items[i].Category = sanitize.Text(items[i].Category)
		items[i].Priority = sanitize.Text(items[i].Priority)
		items[i].Recommendation = sanitize.Text(items[i].Recommendation)
	}
	return items
}

// normalizeCommon copies the record and sanitizes user prose; the caller's
// map is never mutated.
func normalizeCommon(raw domain.Record) domain.Record {
	rec := raw.Clone()
	delete(rec, domain.FieldDefectItems)

	for _, field := range domain.FreeTextFields {
		if _, ok := rec[field]; ok {
			rec[field] = sanitize.Text(rec.Get(field))
		}
	}

	return rec
}
