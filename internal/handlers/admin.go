package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shinelaptops/storefront/internal/report"
)

// ============================================================================
// Admin
// ============================================================================

// GetDashboard returns the admin overview
// @Summary Admin dashboard
// @Description Complaint counts, available technicians, complaint status chart and monthly sales
// @Tags admin
// @Produce json
// @Success 200 {object} catalog.Dashboard
// @Router /api/admin/dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	cachedJSON(c, h.store.Dashboard())
}

// DownloadReport streams the admin workbook
// @Summary Admin report
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/admin/report.xlsx [get]
func (h *Handler) DownloadReport(c *gin.Context) {
	now := h.opts.Now()

	var buf bytes.Buffer
	if err := report.Write(&buf, h.store, now); err != nil {
		h.respondError(c, fmt.Errorf("render report: %w", err))
		return
	}

	filename := fmt.Sprintf("storefront-report-%s.xlsx", now.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, report.ContentType, buf.Bytes())
}
