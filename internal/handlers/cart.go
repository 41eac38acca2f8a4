package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shinelaptops/storefront/internal/cart"
	"github.com/shinelaptops/storefront/internal/session"
)

// AddCartItemRequest is the body of POST /api/cart/items
type AddCartItemRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

// GetCart returns the session cart
// @Summary Get cart
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} cart.Summary
// @Router /api/cart [get]
func (h *Handler) GetCart(c *gin.Context) {
	var summary cart.Summary
	err := h.withSession(c, func(st *session.State) error {
		summary = st.Cart.Summary()
		return nil
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// AddCartItem adds one unit of an item to the session cart
// @Summary Add cart item
// @Description Adds one unit; unavailable items are rejected with 409 and the cart is unchanged
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param request body handlers.AddCartItemRequest true "Item to add"
// @Success 200 {object} cart.Summary
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Router /api/cart/items [post]
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, fmt.Errorf("%w: %v", errBadParam, err))
		return
	}

	var summary cart.Summary
	err := h.withSession(c, func(st *session.State) error {
		if err := st.Cart.AddItem(req.ItemID); err != nil {
			return err
		}
		summary = st.Cart.Summary()
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrUnavailable):
			h.metrics.RecordCartRejection("unavailable")
		case errors.Is(err, cart.ErrUnknownItem):
			h.metrics.RecordCartRejection("unknown")
		}
		h.respondError(c, err)
		return
	}

	h.metrics.RecordCartAdd()
	h.logger.Debug().
		Str("item", req.ItemID).
		Int("total_items", summary.TotalItemCount).
		Msg("Item added to cart")
	c.JSON(http.StatusOK, summary)
}
