package handler

import (
	"fmt"
	"net/http"

	"assessment_report_backend/internal/assessment/transport"

	"github.com/gin-gonic/gin"
)

// serveAttachment streams a generated artifact as a file download.
func serveAttachment(c *gin.Context, artifact *transport.Artifact) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, artifact.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}
