// Package assessment provides the site assessment reporting domain module.
package assessment

import (
	"os"

	"assessment_report_backend/internal/assessment/domain"
	"assessment_report_backend/internal/assessment/handler"
	"assessment_report_backend/internal/assessment/service"
	"assessment_report_backend/internal/excel"
	apphttp "assessment_report_backend/internal/http"
	"assessment_report_backend/internal/pdf"
	"assessment_report_backend/platform/config"
	"assessment_report_backend/platform/logger"
	"assessment_report_backend/platform/validator"
)

// Module represents the assessment reporting domain module
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates a new assessment module with all dependencies wired
func NewModule(cfg config.ReportConfig, val *validator.Validator, log *logger.Logger) (*Module, error) {
	lists, err := domain.LoadChecklists()
	if err != nil {
		return nil, err
	}

	// A missing logo degrades the report header to text only; it does not
	// stop the service from starting.
	logo, err := os.ReadFile(cfg.GetLogoPath())
	if err != nil {
		log.Warn("report logo not available, headers render text only",
			"path", cfg.GetLogoPath(), "error", err)
		logo = nil
	}

	pdfGen := pdf.New(pdf.DefaultTheme(), lists, logo, cfg.GetCompanyFooter(), log)
	excelGen := excel.New(log)
	svc := service.New(pdfGen, excelGen, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}, nil
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "assessment"
}

// Service returns the service layer for external use
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes registers the module's routes
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	reports := ctx.V1.Group("/assessments/report")
	reports.POST("/pdf", m.handler.GeneratePDF)
	reports.POST("/excel", m.handler.GenerateExcel)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
