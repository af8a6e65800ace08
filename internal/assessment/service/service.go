// Package service orchestrates report generation for one assessment
// submission: normalization, building, and artifact naming.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"assessment_report_backend/internal/assessment/domain"
	"assessment_report_backend/internal/assessment/transport"
	"assessment_report_backend/internal/excel"
	"assessment_report_backend/internal/pdf"
	"assessment_report_backend/platform/apperr"
	"assessment_report_backend/platform/logger"
)

const (
	msgNoData           = "no assessment data received"
	msgGenerationFailed = "report generation failed"
)

// timestampLayout is second-resolution and sortable; two calls within the
// same second for the same project intentionally collide.
const timestampLayout = "20060102_150405"

// Service generates assessment report artifacts. Every call works on its
// own normalized copy of the submission; no state is shared across calls.
type Service struct {
	pdfGen   *pdf.Generator
	excelGen *excel.Generator
	log      *logger.Logger
	now      func() time.Time
}

// New creates the assessment service.
func New(pdfGen *pdf.Generator, excelGen *excel.Generator, log *logger.Logger) *Service {
	return &Service{
		pdfGen:   pdfGen,
		excelGen: excelGen,
		log:      log,
		now:      time.Now,
	}
}

// GeneratePDF renders the document report for one raw submission.
func (s *Service) GeneratePDF(ctx context.Context, raw domain.Record) (*transport.Artifact, error) {
	if raw.IsEmpty() {
		return nil, apperr.BadRequest(msgNoData)
	}

	sub := NormalizeForDocument(raw)

	data, err := s.pdfGen.Generate(sub.Record, sub.Items, sub.Gallery)
	if err != nil {
		s.log.WithContext(ctx).RenderError("pdf", err)
		return nil, apperr.Wrap(apperr.KindInternal, msgGenerationFailed, err).WithOp("assessment.GeneratePDF")
	}

	return &transport.Artifact{
		Filename:    s.filename("Site_Assessment", sub.Record.GetDefault(domain.FieldProjectName, "Unknown"), "pdf"),
		ContentType: transport.ContentTypePDF,
		Data:        data,
	}, nil
}

// GenerateExcel renders the spreadsheet report for one raw submission in
// the requested layout.
func (s *Service) GenerateExcel(ctx context.Context, raw domain.Record, layout transport.ExcelLayout) (*transport.Artifact, error) {
	if raw.IsEmpty() {
		return nil, apperr.BadRequest(msgNoData)
	}

	sub := NormalizeForSpreadsheet(raw)

	var (
		data []byte
		err  error
	)
	switch layout {
	case transport.LayoutFlat:
		data, err = s.excelGen.GenerateFlat(sub.Record)
	case transport.LayoutDefectTable:
		data, err = s.excelGen.GenerateDefectTable(sub.Record, sub.Items)
	default:
		return nil, apperr.Validation(fmt.Sprintf("unknown excel layout %q", layout))
	}
	if err != nil {
		s.log.WithContext(ctx).RenderError("excel", err)
		return nil, apperr.Wrap(apperr.KindInternal, msgGenerationFailed, err).WithOp("assessment.GenerateExcel")
	}

	return &transport.Artifact{
		Filename:    s.filename("QHSE_Data", sub.Record.GetDefault(domain.FieldProjectName, "Export"), "xlsx"),
		ContentType: transport.ContentTypeXLSX,
		Data:        data,
	}, nil
}

// filename builds the deterministic artifact name:
// <kind>_<project-with-underscores>_<YYYYMMDD_HHMMSS>.<ext>.
func (s *Service) filename(kind, project, ext string) string {
	slug := strings.ReplaceAll(project, " ", "_")
	return fmt.Sprintf("%s_%s_%s.%s", kind, slug, s.now().Format(timestampLayout), ext)
}
