package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shinelaptops/storefront/internal/catalog"
)

// WarrantyListResponse carries warranty views plus the expiring count
type WarrantyListResponse struct {
	ListResponse[catalog.WarrantyView]
	ExpiringSoon int `json:"expiringSoon"`
}

// ListWarranties returns every warranty with its derived status
// @Summary List warranties
// @Description Derives remaining days, status and progress from the expiry date as of now
// @Tags tracking
// @Produce json
// @Param status query string false "Derived status" Enums(active, expired, claimed)
// @Success 200 {object} handlers.WarrantyListResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/warranties [get]
func (h *Handler) ListWarranties(c *gin.Context) {
	status := catalog.WarrantyStatus(c.Query("status"))
	switch status {
	case "", catalog.WarrantyActive, catalog.WarrantyExpired, catalog.WarrantyClaimed:
	default:
		h.respondError(c, fmt.Errorf("%w: unknown warranty status %q", errBadParam, status))
		return
	}

	views, err := h.store.WarrantyViews(h.opts.Now())
	if err != nil {
		h.respondError(c, err)
		return
	}

	filtered := make([]catalog.WarrantyView, 0, len(views))
	expiring := 0
	for _, v := range views {
		if status != "" && v.DerivedStatus != status {
			continue
		}
		if v.ExpiringSoon {
			expiring++
		}
		filtered = append(filtered, v)
	}

	// Views depend on the clock, so no ETag.
	c.JSON(http.StatusOK, WarrantyListResponse{
		ListResponse: newListResponse(c, filtered),
		ExpiringSoon: expiring,
	})
}

// ListComplaints returns complaints, optionally limited to one status
// @Summary List complaints
// @Tags tracking
// @Produce json
// @Param status query string false "Complaint status" Enums(Pending, Assigned, Resolved)
// @Success 200 {object} handlers.ListResponse[catalog.Complaint]
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/complaints [get]
func (h *Handler) ListComplaints(c *gin.Context) {
	status := catalog.ComplaintStatus(c.Query("status"))
	if status != "" && !knownComplaintStatus(status) {
		h.respondError(c, fmt.Errorf("%w: unknown complaint status %q", errBadParam, status))
		return
	}

	complaints := make([]catalog.Complaint, 0, len(h.store.Complaints()))
	for _, cm := range h.store.Complaints() {
		if status == "" || cm.Status == status {
			complaints = append(complaints, cm)
		}
	}
	cachedJSON(c, newListResponse(c, complaints))
}

func knownComplaintStatus(s catalog.ComplaintStatus) bool {
	for _, known := range catalog.ComplaintStatuses {
		if s == known {
			return true
		}
	}
	return false
}
