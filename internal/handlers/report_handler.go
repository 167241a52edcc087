package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/vaibhav/lifehub-api/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	exportService *services.ExportService
}

func NewReportHandler(exportService *services.ExportService) *ReportHandler {
	return &ReportHandler{exportService: exportService}
}

// @Summary Export Time Entries
// @Description Generate and stream an XLSX of all logged sessions
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /reports/time_entries [get]
func (h *ReportHandler) TimeEntries(c *gin.Context) {
	result, err := h.exportService.TimeEntriesXLSX(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	h.stream(c, result)
}

// @Summary Export Clients
// @Description Generate and stream an XLSX of all clients with ARR
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /reports/clients [get]
func (h *ReportHandler) Clients(c *gin.Context) {
	result, err := h.exportService.ClientsXLSX(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	h.stream(c, result)
}

func (h *ReportHandler) stream(c *gin.Context, result *services.ExportResult) {
	file, err := h.exportService.OpenArtifact(result.Path)
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	c.Header("Content-Disposition", "attachment; filename="+result.Filename)
	c.Header("Content-Type", xlsxContentType)
	io.Copy(c.Writer, file)
}
