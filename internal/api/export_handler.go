package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/madangclub/mahjong-rating/internal/services"
)

// ExportHandler serves the downloadable rating CSV
type ExportHandler struct {
	export services.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(export services.ExportService) *ExportHandler {
	return &ExportHandler{export: export}
}

// ExportCSV streams the CP949-encoded rating CSV as an attachment with a
// fixed filename
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	data, err := h.export.ExportRatingCSV()
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+services.ExportFilename)
	c.Data(http.StatusOK, services.ExportContentType, data)
}
