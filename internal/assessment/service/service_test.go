package service

import (
	"context"
	"testing"
	"time"

	"assessment_report_backend/internal/assessment/domain"
	"assessment_report_backend/internal/assessment/transport"
	"assessment_report_backend/internal/excel"
	"assessment_report_backend/internal/pdf"
	"assessment_report_backend/platform/apperr"
	"assessment_report_backend/platform/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	lists, err := domain.LoadChecklists()
	if err != nil {
		t.Fatalf("load checklists: %v", err)
	}

	log := logger.New("development")
	svc := New(pdf.New(pdf.DefaultTheme(), lists, nil, "Test Footer Line", log), excel.New(log), log)
	svc.now = func() time.Time {
		return time.Date(2024, time.January, 15, 10, 30, 45, 0, time.UTC)
	}
	return svc
}

func TestGeneratePDF_EmptySubmissionRejected(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GeneratePDF(context.Background(), domain.Record{})
	if err == nil {
		t.Fatal("expected error for empty submission")
	}
	if !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request kind, got %v", apperr.GetKind(err))
	}
}

func TestGenerateExcel_EmptySubmissionRejected(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GenerateExcel(context.Background(), domain.Record{}, transport.LayoutFlat)
	if !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request kind, got %v", err)
	}
}

func TestGeneratePDF_FilenameFormat(t *testing.T) {
	svc := newTestService(t)

	artifact, err := svc.GeneratePDF(context.Background(), domain.Record{
		"project_name": "Marina Tower Phase 2",
	})
	if err != nil {
		t.Fatalf("GeneratePDF failed: %v", err)
	}

	want := "Site_Assessment_Marina_Tower_Phase_2_20240115_103045.pdf"
	if artifact.Filename != want {
		t.Fatalf("expected filename %q, got %q", want, artifact.Filename)
	}
	if artifact.ContentType != transport.ContentTypePDF {
		t.Fatalf("unexpected content type %q", artifact.ContentType)
	}
	if len(artifact.Data) == 0 {
		t.Fatal("expected non-empty PDF data")
	}
}

func TestGeneratePDF_UnknownProjectFallback(t *testing.T) {
	svc := newTestService(t)

	artifact, err := svc.GeneratePDF(context.Background(), domain.Record{
		"client_name": "ACME",
	})
	if err != nil {
		t.Fatalf("GeneratePDF failed: %v", err)
	}

	want := "Site_Assessment_Unknown_20240115_103045.pdf"
	if artifact.Filename != want {
		t.Fatalf("expected filename %q, got %q", want, artifact.Filename)
	}
}

func TestGenerateExcel_FilenameAndLayouts(t *testing.T) {
	svc := newTestService(t)

	rec := domain.Record{
		"project_name": "Marina Tower",
		"defect_items": []any{
			map[string]any{"location": "Roof", "priority": "High"},
		},
	}

	for _, layout := range []transport.ExcelLayout{transport.LayoutFlat, transport.LayoutDefectTable} {
		artifact, err := svc.GenerateExcel(context.Background(), rec, layout)
		if err != nil {
			t.Fatalf("GenerateExcel(%s) failed: %v", layout, err)
		}
		want := "QHSE_Data_Marina_Tower_20240115_103045.xlsx"
		if artifact.Filename != want {
			t.Fatalf("expected filename %q, got %q", want, artifact.Filename)
		}
		if artifact.ContentType != transport.ContentTypeXLSX {
			t.Fatalf("unexpected content type %q", artifact.ContentType)
		}
		if len(artifact.Data) == 0 {
			t.Fatalf("expected non-empty workbook for layout %s", layout)
		}
	}
}

func TestGenerateExcel_UnknownLayoutRejected(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GenerateExcel(context.Background(), domain.Record{"a": "b"}, transport.ExcelLayout("csv"))
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation kind, got %v", err)
	}
}

func TestFilename_SameSecondCollides(t *testing.T) {
	svc := newTestService(t)

	first := svc.filename("Site_Assessment", "Tower", "pdf")
	second := svc.filename("Site_Assessment", "Tower", "pdf")
	if first != second {
		t.Fatalf("expected identical filenames within one second, got %q and %q", first, second)
	}
}
