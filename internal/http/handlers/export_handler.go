// Export HTTP handlers: full-data downloads as CSV and PDF.
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/royalvending/go-coaching-backend/internal/export"
	"github.com/royalvending/go-coaching-backend/internal/http/middleware"
)

// ExportCSV godoc
// @ID          exportCSV
// @Summary     Download all data as CSV
// @Description Streams every evaluation and coaching log as a single CSV file.
// @Tags        Export
// @Produce     text/csv
// @Success     200  {string}  string  "CSV payload"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /export/csv [get]
func (h *Handlers) ExportCSV(c *gin.Context) {
	evals, logs, err := h.reportSvc.ExportData(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeExportFailed, err.Error())
		return
	}

	name := fmt.Sprintf("performance-export-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Status(http.StatusOK)
	if err := export.WriteCSV(c.Writer, evals, logs); err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("csv export write failed")
	}
}

// ExportPDF godoc
// @ID          exportPDF
// @Summary     Download a performance report as PDF
// @Description Renders all evaluations into a printable PDF report.
// @Tags        Export
// @Produce     application/pdf
// @Success     200  {string}  string  "PDF payload"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /export/pdf [get]
func (h *Handlers) ExportPDF(c *gin.Context) {
	evals, _, err := h.reportSvc.ExportData(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeExportFailed, err.Error())
		return
	}

	name := fmt.Sprintf("performance-report-%s.pdf", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Status(http.StatusOK)
	if err := export.WritePDF(c.Writer, evals, time.Now().UTC()); err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("pdf export write failed")
	}
}
