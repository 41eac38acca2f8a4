// Package handlers is the JSON HTTP adapter over the storefront core. It
// owns no business rules: it parses parameters, resolves the visitor
// session and maps core errors to status codes.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/shinelaptops/storefront/internal/cart"
	"github.com/shinelaptops/storefront/internal/catalog"
	"github.com/shinelaptops/storefront/internal/filter"
	"github.com/shinelaptops/storefront/internal/metrics"
	"github.com/shinelaptops/storefront/internal/session"
	"github.com/shinelaptops/storefront/internal/wizard"
)

// Options tune handler behavior.
type Options struct {
	// PriceCeiling is the default upper bound of the laptop price filter.
	PriceCeiling decimal.Decimal
	// Now is the clock used for warranty and contact timing.
	Now func() time.Time
}

// Handler serves the /api routes.
type Handler struct {
	store    *catalog.Store
	sessions *session.Store
	metrics  *metrics.Recorder
	logger   zerolog.Logger
	opts     Options
}

// New creates a Handler.
func New(store *catalog.Store, sessions *session.Store, recorder *metrics.Recorder, logger *zerolog.Logger, opts Options) *Handler {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if recorder == nil {
		recorder = metrics.NewRecorder()
	}
	return &Handler{
		store:    store,
		sessions: sessions,
		metrics:  recorder,
		logger:   logger.With().Str("component", "handlers").Logger(),
		opts:     opts,
	}
}

// RegisterRoutes mounts every API route on api.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/categories", h.ListCategories)
	api.GET("/brands", h.ListBrands)
	api.GET("/products", h.ListProducts)
	api.GET("/products/:id", h.GetProduct)
	api.GET("/services", h.ListServices)
	api.GET("/services/:id", h.GetService)
	api.GET("/accessories", h.ListAccessories)
	api.GET("/testimonials", h.ListTestimonials)
	api.GET("/stats", h.GetStats)
	api.GET("/issue-areas", h.ListIssueAreas)

	api.GET("/warranties", h.ListWarranties)
	api.GET("/complaints", h.ListComplaints)

	admin := api.Group("/admin")
	{
		admin.GET("/dashboard", h.GetDashboard)
		admin.GET("/report.xlsx", h.DownloadReport)
	}

	cartGroup := api.Group("/cart")
	{
		cartGroup.GET("", h.GetCart)
		cartGroup.POST("/items", h.AddCartItem)
	}

	booking := api.Group("/booking")
	{
		booking.GET("", h.GetBooking)
		booking.POST("/open", h.OpenBooking)
		booking.POST("/continue", h.ContinueBooking)
		booking.POST("/back", h.BookingBack)
		booking.POST("/close", h.CloseBooking)
	}

	api.GET("/contact", h.GetContact)
	api.POST("/contact", h.SubmitContact)
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// errBadParam marks unparsable query or body parameters.
var errBadParam = errors.New("bad parameter")

// respondError maps core errors to HTTP status codes.
func (h *Handler) respondError(c *gin.Context, err error) {
	var verr wizard.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Fields: verr.Fields})
	case errors.Is(err, cart.ErrUnavailable), errors.Is(err, wizard.ErrInvalidTransition):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, cart.ErrUnknownItem):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, filter.ErrUnknownSortKey), errors.Is(err, errBadParam):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// withSession runs fn against the caller's session, issuing a new one when
// the X-Session-ID header is missing or stale. The id is always echoed.
func (h *Handler) withSession(c *gin.Context, fn func(st *session.State) error) error {
	sess, created := h.sessions.Resolve(c.GetHeader(session.HeaderName))
	c.Header(session.HeaderName, sess.ID())
	if created {
		h.logger.Debug().Str("session", sess.ID()).Msg("Session created")
	}
	return sess.With(fn)
}
