package excel

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"assessment_report_backend/internal/assessment/domain"
	"assessment_report_backend/platform/logger"

	"github.com/xuri/excelize/v2"
)

func testPhoto(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 60, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 60; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test photo: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestGenerateFlat_HeadersAndSingleDataRow(t *testing.T) {
	g := New(logger.New("development"))

	data, err := g.GenerateFlat(domain.Record{
		"client_name":  "ACME Facilities",
		"project_name": "Marina Tower",
		"room_count":   42,
	})
	if err != nil {
		t.Fatalf("GenerateFlat failed: %v", err)
	}

	f := openWorkbook(t, data)

	if got := f.GetSheetName(0); got != "QHSE Data Export" {
		t.Fatalf("expected sheet name %q, got %q", "QHSE Data Export", got)
	}

	// Header row holds readable titles in canonical field order.
	header, err := f.GetCellValue("QHSE Data Export", "A1")
	if err != nil || header != "Client Name" {
		t.Fatalf("expected A1 %q, got %q (%v)", "Client Name", header, err)
	}
	header, err = f.GetCellValue("QHSE Data Export", "B1")
	if err != nil || header != "Project Name" {
		t.Fatalf("expected B1 %q, got %q (%v)", "Project Name", header, err)
	}

	value, err := f.GetCellValue("QHSE Data Export", "A2")
	if err != nil || value != "ACME Facilities" {
		t.Fatalf("expected A2 %q, got %q (%v)", "ACME Facilities", value, err)
	}
	value, err = f.GetCellValue("QHSE Data Export", "B2")
	if err != nil || value != "Marina Tower" {
		t.Fatalf("expected B2 %q, got %q (%v)", "Marina Tower", value, err)
	}

	// Numeric input is coerced to its string form.
	value, err = f.GetCellValue("QHSE Data Export", "G2")
	if err != nil || value != "42" {
		t.Fatalf("expected G2 %q, got %q (%v)", "42", value, err)
	}

	rows, err := f.GetRows("QHSE Data Export")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected exactly 2 rows, got %d", len(rows))
	}
	if len(rows[0]) != len(domain.CanonicalFields) {
		t.Fatalf("expected %d header columns, got %d", len(domain.CanonicalFields), len(rows[0]))
	}
}

func TestGenerateDefectTable_InfoBlockAndItemRows(t *testing.T) {
	g := New(logger.New("development"))

	items := []domain.DefectItem{
		{
			Location:       "Roof",
			Description:    "Cracked membrane",
			Category:       "Structural",
			Priority:       "High",
			Recommendation: "Replace membrane",
			Photos:         []string{testPhoto(t), "x", "y", "z"},
		},
		{
			Location: "Lobby",
			Priority: "Low",
		},
	}

	data, err := g.GenerateDefectTable(domain.Record{
		"project_name":  "Marina Tower",
		"date_of_visit": "2024-01-15",
		"site_address":  "1 Marina Walk",
		"assessor_name": "J. Smith",
	}, items)
	if err != nil {
		t.Fatalf("GenerateDefectTable failed: %v", err)
	}

	f := openWorkbook(t, data)
	const sheet = "Defect Report"

	title, err := f.GetCellValue(sheet, "A1")
	if err != nil || title != "Site Defect Report" {
		t.Fatalf("expected title %q, got %q (%v)", "Site Defect Report", title, err)
	}

	project, err := f.GetCellValue(sheet, "B2")
	if err != nil || project != "Marina Tower" {
		t.Fatalf("expected project %q, got %q (%v)", "Marina Tower", project, err)
	}
	assessor, err := f.GetCellValue(sheet, "B5")
	if err != nil || assessor != "J. Smith" {
		t.Fatalf("expected assessor %q, got %q (%v)", "J. Smith", assessor, err)
	}

	header, err := f.GetCellValue(sheet, "B7")
	if err != nil || header != "Location" {
		t.Fatalf("expected header %q, got %q (%v)", "Location", header, err)
	}

	location, err := f.GetCellValue(sheet, "B8")
	if err != nil || location != "Roof" {
		t.Fatalf("expected first item location %q, got %q (%v)", "Roof", location, err)
	}
	extras, err := f.GetCellValue(sheet, "H8")
	if err != nil || extras != "3" {
		t.Fatalf("expected extra photo count %q, got %q (%v)", "3", extras, err)
	}

	location, err = f.GetCellValue(sheet, "B9")
	if err != nil || location != "Lobby" {
		t.Fatalf("expected second item location %q, got %q (%v)", "Lobby", location, err)
	}
	extras, err = f.GetCellValue(sheet, "H9")
	if err != nil || extras != "0" {
		t.Fatalf("expected extra photo count %q, got %q (%v)", "0", extras, err)
	}
}

func TestGenerateDefectTable_EmbedsFirstPhotoThumbnail(t *testing.T) {
	g := New(logger.New("development"))

	items := []domain.DefectItem{
		{Location: "Roof", Photos: []string{testPhoto(t)}},
	}

	data, err := g.GenerateDefectTable(domain.Record{"project_name": "P"}, items)
	if err != nil {
		t.Fatalf("GenerateDefectTable failed: %v", err)
	}

	f := openWorkbook(t, data)
	pics, err := f.GetPictures("Defect Report", "C8")
	if err != nil {
		t.Fatalf("read pictures: %v", err)
	}
	if len(pics) != 1 {
		t.Fatalf("expected 1 embedded thumbnail, got %d", len(pics))
	}
}

func TestGenerateDefectTable_BadPhotoLeavesCellEmpty(t *testing.T) {
	g := New(logger.New("development"))

	items := []domain.DefectItem{
		{Location: "Roof", Photos: []string{"!!!garbage!!!"}},
	}

	data, err := g.GenerateDefectTable(domain.Record{"project_name": "P"}, items)
	if err != nil {
		t.Fatalf("expected corrupt photo to be tolerated, got %v", err)
	}

	f := openWorkbook(t, data)
	pics, err := f.GetPictures("Defect Report", "C8")
	if err != nil {
		t.Fatalf("read pictures: %v", err)
	}
	if len(pics) != 0 {
		t.Fatalf("expected no thumbnail for corrupt photo, got %d", len(pics))
	}
}

func TestGenerateDefectTable_NoItems(t *testing.T) {
	g := New(logger.New("development"))

	data, err := g.GenerateDefectTable(domain.Record{"project_name": "P"}, nil)
	if err != nil {
		t.Fatalf("GenerateDefectTable failed: %v", err)
	}

	f := openWorkbook(t, data)
	rows, err := f.GetRows("Defect Report")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 7 {
		t.Fatalf("expected 7 rows (title, info, header), got %d", len(rows))
	}
}

func TestHeaderTitle(t *testing.T) {
	cases := map[string]string{
		"client_name":             "Client Name",
		"waste_hazardous_details": "Waste Hazardous Details",
		"notes_and_observations":  "Notes And Observations",
		"ppe_requirements":        "Ppe Requirements",
	}
	for key, want := range cases {
		if got := headerTitle(key); got != want {
			t.Fatalf("headerTitle(%q) = %q, want %q", key, got, want)
		}
	}
}
