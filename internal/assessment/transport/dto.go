// Package transport defines the DTOs exchanged between the HTTP layer and
// the assessment service.
package transport

import "fmt"

// Artifact is one generated report: in-memory content plus the metadata the
// HTTP layer needs to serve it as a download.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Content types of the two report kinds.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExcelLayout names one of the two spreadsheet presentation strategies.
type ExcelLayout string

const (
	// LayoutFlat is the single-row export of the canonical field set.
	LayoutFlat ExcelLayout = "flat"
	// LayoutDefectTable is the styled one-row-per-defect table with
	// embedded thumbnails. This is the default layout.
	LayoutDefectTable ExcelLayout = "defects"
)

// ParseExcelLayout resolves the layout query parameter, defaulting to the
// defect table when empty.
func ParseExcelLayout(s string) (ExcelLayout, error) {
	switch ExcelLayout(s) {
	case "":
		return LayoutDefectTable, nil
	case LayoutFlat:
		return LayoutFlat, nil
	case LayoutDefectTable:
		return LayoutDefectTable, nil
	}
	return "", fmt.Errorf("unknown excel layout %q", s)
}
