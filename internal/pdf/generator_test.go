package pdf

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"assessment_report_backend/internal/assessment/domain"
	"assessment_report_backend/platform/logger"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()

	lists, err := domain.LoadChecklists()
	if err != nil {
		t.Fatalf("load checklists: %v", err)
	}
	return New(DefaultTheme(), lists, nil, "Test Footer Line", logger.New("development"))
}

func testPhoto(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 80, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 80; x++ {
			img.Set(x, y, color.RGBA{R: 18, G: 84, B: 53, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test photo: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func assertPDF(t *testing.T, data []byte) {
	t.Helper()

	if len(data) == 0 {
		t.Fatal("expected non-empty PDF output")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not start with PDF magic, got %q", data[:min(8, len(data))])
	}
}

func TestGenerate_MinimalRecord(t *testing.T) {
	g := newTestGenerator(t)

	data, err := g.Generate(domain.Record{"project_name": "Marina Tower"}, nil, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	assertPDF(t, data)
}

func TestGenerate_FullRecordWithPhotosAndSignatures(t *testing.T) {
	g := newTestGenerator(t)
	photo := testPhoto(t)

	rec := domain.Record{
		"project_name":           "Marina Tower",
		"client_name":            "ACME Facilities",
		"site_address":           "1 Marina Walk",
		"date_of_visit":          "2024-01-15",
		"key_person_name":        "R. Patel",
		"room_count":             "120",
		"scope_toilets":          "True",
		"waste_hazardous":        "True",
		"deep_cleaning_required": "yes",
		"deep_clean_areas":       "3rd floor kitchens",
		"weekend_work":           "yes",
		"notes_and_observations": "Hallway lighting needs attention.",
		"tech_signature":         photo,
		"contact_signature":      photo,
	}
	items := []domain.DefectItem{
		{
			Location:       "Roof",
			Description:    "Cracked membrane",
			Category:       "Structural",
			Priority:       "High",
			Recommendation: "Replace membrane",
			Photos:         []string{photo},
		},
	}

	data, err := g.Generate(rec, items, []string{photo, photo, photo})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	assertPDF(t, data)
}

func TestGenerate_CorruptImagesDegradeToPlaceholders(t *testing.T) {
	g := newTestGenerator(t)

	rec := domain.Record{
		"project_name":   "Marina Tower",
		"tech_signature": "!!!not-base64!!!",
	}
	items := []domain.DefectItem{
		{Location: "Roof", Photos: []string{"garbage", ""}},
	}

	data, err := g.Generate(rec, items, []string{"more garbage"})
	if err != nil {
		t.Fatalf("expected corrupt images to degrade, got error: %v", err)
	}
	assertPDF(t, data)
}

func TestGenerate_EmptyRecordStillRenders(t *testing.T) {
	g := newTestGenerator(t)

	data, err := g.Generate(domain.Record{}, nil, nil)
	if err != nil {
		t.Fatalf("Generate failed on empty record: %v", err)
	}
	assertPDF(t, data)
}

func TestGenerate_LogoEmbedded(t *testing.T) {
	lists, err := domain.LoadChecklists()
	if err != nil {
		t.Fatalf("load checklists: %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode logo: %v", err)
	}

	g := New(DefaultTheme(), lists, buf.Bytes(), "Footer", logger.New("development"))
	data, err := g.Generate(domain.Record{"project_name": "P"}, nil, nil)
	if err != nil {
		t.Fatalf("Generate with logo failed: %v", err)
	}
	assertPDF(t, data)
}
