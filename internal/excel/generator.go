// Package excel renders the assessment spreadsheet reports using excelize.
// Two named layouts exist: a flat single-row export of the canonical field
// set, and a styled per-defect table with embedded thumbnails.
package excel

import (
	"fmt"
	"strings"
	"unicode"

	"assessment_report_backend/internal/assessment/domain"
	"assessment_report_backend/internal/imaging"
	"assessment_report_backend/platform/logger"

	"github.com/xuri/excelize/v2"
)

const (
	flatSheetName   = "QHSE Data Export"
	defectSheetName = "Defect Report"

	// Thumbnail bounding box (pixels) and the fixed row height (points)
	// that displays it without clipping.
	thumbMaxWidth   = 160
	thumbMaxHeight  = 100
	defectRowHeight = 80
)

// Generator builds assessment workbooks. Stateless; safe for concurrent use.
type Generator struct {
	log *logger.Logger
}

// New creates a spreadsheet generator.
func New(log *logger.Logger) *Generator {
	return &Generator{log: log}
}

// GenerateFlat renders the single-row export: one header row of readable
// column titles and one data row covering the canonical field set.
func (g *Generator) GenerateFlat(rec domain.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", flatSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, key := range domain.CanonicalFields {
		headerCell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell name: %w", err)
		}
		if err := f.SetCellValue(flatSheetName, headerCell, headerTitle(key)); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}

		dataCell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, fmt.Errorf("data cell name: %w", err)
		}
		if err := f.SetCellValue(flatSheetName, dataCell, rec.Get(key)); err != nil {
			return nil, fmt.Errorf("write value: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	if err := f.SetRowStyle(flatSheetName, 1, 1, headerStyle); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(domain.CanonicalFields))
	if err != nil {
		return nil, fmt.Errorf("column name: %w", err)
	}
	if err := f.SetColWidth(flatSheetName, "A", lastCol, 22); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

var defectHeaders = []string{
	"#", "Location", "Photo", "Category", "Priority",
	"Description", "Recommendation", "Extra Photos",
}

// GenerateDefectTable renders the general-information block followed by one
// styled row per defect item, embedding only the first photo of each item
// as a thumbnail and reporting the rest as a count.
func (g *Generator) GenerateDefectTable(rec domain.Record, items []domain.DefectItem) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", defectSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, fmt.Errorf("title style: %w", err)
	}
	if err := f.SetCellValue(defectSheetName, "A1", "Site Defect Report"); err != nil {
		return nil, fmt.Errorf("write title: %w", err)
	}
	if err := f.MergeCell(defectSheetName, "A1", "H1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	if err := f.SetCellStyle(defectSheetName, "A1", "H1", titleStyle); err != nil {
		return nil, fmt.Errorf("style title: %w", err)
	}

	info := [][2]string{
		{"Project:", rec.GetDefault(domain.FieldProjectName, "N/A")},
		{"Date of Visit:", rec.GetDefault(domain.FieldDateOfVisit, "N/A")},
		{"Site Address:", rec.GetDefault(domain.FieldSiteAddress, "N/A")},
		{"Assessor:", rec.GetDefault(domain.FieldAssessorName, "N/A")},
	}
	for i, pair := range info {
		rowNum := i + 2
		if err := f.SetCellValue(defectSheetName, fmt.Sprintf("A%d", rowNum), pair[0]); err != nil {
			return nil, fmt.Errorf("write info label: %w", err)
		}
		if err := f.SetCellValue(defectSheetName, fmt.Sprintf("B%d", rowNum), pair[1]); err != nil {
			return nil, fmt.Errorf("write info value: %w", err)
		}
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("bold style: %w", err)
	}
	if err := f.SetCellStyle(defectSheetName, "A2", "A5", boldStyle); err != nil {
		return nil, fmt.Errorf("style info labels: %w", err)
	}

	const headerRow = 7
	for i, h := range defectHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("header cell name: %w", err)
		}
		if err := f.SetCellValue(defectSheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write table header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#125435"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    fullBorder(),
	})
	if err != nil {
		return nil, fmt.Errorf("table header style: %w", err)
	}
	if err := f.SetCellStyle(defectSheetName, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("H%d", headerRow), headerStyle); err != nil {
		return nil, fmt.Errorf("style table header: %w", err)
	}

	plainStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    fullBorder(),
	})
	if err != nil {
		return nil, fmt.Errorf("row style: %w", err)
	}
	shadedStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#F2F2F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    fullBorder(),
	})
	if err != nil {
		return nil, fmt.Errorf("shaded row style: %w", err)
	}

	for i, item := range items {
		rowNum := headerRow + 1 + i

		values := []any{
			i + 1,
			item.Location,
			"", // photo column holds the embedded thumbnail
			item.Category,
			item.Priority,
			item.Description,
			item.Recommendation,
			item.ExtraPhotoCount(),
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, rowNum)
			if err != nil {
				return nil, fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(defectSheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write item row: %w", err)
			}
		}

		// Alternating row shading for readability.
		style := plainStyle
		if i%2 == 1 {
			style = shadedStyle
		}
		if err := f.SetCellStyle(defectSheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("H%d", rowNum), style); err != nil {
			return nil, fmt.Errorf("style item row: %w", err)
		}

		// Fixed row height so the thumbnail displays without clipping.
		if err := f.SetRowHeight(defectSheetName, rowNum, defectRowHeight); err != nil {
			return nil, fmt.Errorf("row height: %w", err)
		}

		g.embedThumbnail(f, rowNum, i+1, item)
	}

	if err := f.SetColWidth(defectSheetName, "A", "A", 5); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}
	if err := f.SetColWidth(defectSheetName, "B", "B", 20); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}
	if err := f.SetColWidth(defectSheetName, "C", "C", 24); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}
	if err := f.SetColWidth(defectSheetName, "D", "H", 18); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// embedThumbnail places the item's first photo into the photo column. Any
// decode or embedding failure leaves the cell empty; it never aborts the
// build.
func (g *Generator) embedThumbnail(f *excelize.File, rowNum, itemNum int, item domain.DefectItem) {
	if len(item.Photos) == 0 {
		return
	}

	img, err := imaging.DecodeBounded(item.Photos[0], thumbMaxWidth, thumbMaxHeight)
	if err != nil {
		if err != imaging.ErrNoData {
			g.log.ImageDecodeError(fmt.Sprintf("defect item %d thumbnail", itemNum), err)
		}
		return
	}

	cell := fmt.Sprintf("C%d", rowNum)
	err = f.AddPictureFromBytes(defectSheetName, cell, &excelize.Picture{
		Extension: img.Extension(),
		File:      img.Data,
		Format: &excelize.GraphicOptions{
			OffsetX: 4,
			OffsetY: 4,
		},
	})
	if err != nil {
		g.log.ImageDecodeError(fmt.Sprintf("defect item %d thumbnail", itemNum), err)
	}
}

func fullBorder() []excelize.Border {
	border := make([]excelize.Border, 0, 4)
	for _, side := range []string{"left", "right", "top", "bottom"} {
		border = append(border, excelize.Border{Type: side, Color: "CCCCCC", Style: 1})
	}
	return border
}

// headerTitle turns a snake_case field key into a readable column title:
// separators become spaces and every word is title-cased.
func headerTitle(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
