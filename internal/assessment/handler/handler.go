// Package handler exposes the assessment report endpoints.
package handler

import (
	"net/http"

	"assessment_report_backend/internal/assessment/domain"
	"assessment_report_backend/internal/assessment/service"
	"assessment_report_backend/internal/assessment/transport"
	"assessment_report_backend/platform/httpkit"
	"assessment_report_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const msgInvalidBody = "invalid request body"

// Handler handles HTTP requests for assessment report generation.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new assessment handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// GeneratePDF renders the submission into the document report.
// POST /api/v1/assessments/report/pdf
func (h *Handler) GeneratePDF(c *gin.Context) {
	raw, ok := h.bindSubmission(c)
	if !ok {
		return
	}

	artifact, err := h.svc.GeneratePDF(c.Request.Context(), raw)
	if httpkit.HandleError(c, err) {
		return
	}
	serveAttachment(c, artifact)
}

// GenerateExcel renders the submission into the spreadsheet report.
// POST /api/v1/assessments/report/excel?layout=flat|defects
func (h *Handler) GenerateExcel(c *gin.Context) {
	layoutParam := c.Query("layout")
	if err := h.val.Var(layoutParam, "omitempty,oneof=flat defects"); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid layout parameter", nil)
		return
	}
	layout, err := transport.ParseExcelLayout(layoutParam)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	raw, ok := h.bindSubmission(c)
	if !ok {
		return
	}

	artifact, err := h.svc.GenerateExcel(c.Request.Context(), raw, layout)
	if httpkit.HandleError(c, err) {
		return
	}
	serveAttachment(c, artifact)
}

// bindSubmission decodes the free-form JSON submission body. An unreadable
// body is a client error; payload emptiness is the service's concern.
func (h *Handler) bindSubmission(c *gin.Context) (domain.Record, bool) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidBody, nil)
		return nil, false
	}
	return domain.Record(raw), true
}
