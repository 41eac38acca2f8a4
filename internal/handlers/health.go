package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shinelaptops/storefront/internal/catalog"
	"github.com/shinelaptops/storefront/internal/session"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string         `json:"status"`
	Catalog  map[string]int `json:"catalog"`
	Sessions int            `json:"sessions"`
}

// HealthCheck returns a handler reporting catalog sizes and live sessions.
// A catalog with no products reports 503.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /health [get]
func HealthCheck(store *catalog.Store, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := HealthResponse{
			Status: "ok",
			Catalog: map[string]int{
				"categories":  len(store.Categories()),
				"brands":      len(store.Brands()),
				"products":    len(store.Products()),
				"services":    len(store.Services()),
				"accessories": len(store.Accessories()),
			},
		}
		if sessions != nil {
			response.Sessions = sessions.Len()
		}

		if len(store.Products()) == 0 {
			response.Status = "degraded"
			c.JSON(http.StatusServiceUnavailable, response)
			return
		}
		c.JSON(http.StatusOK, response)
	}
}
