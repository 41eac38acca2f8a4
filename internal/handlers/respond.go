package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
	servertiming "github.com/mitchellh/go-server-timing"
	"go.opentelemetry.io/otel/attribute"

	"github.com/shinelaptops/storefront/internal/telemetry"
	"github.com/shinelaptops/storefront/internal/theme"
)

// ListResponse wraps every listing. Empty is set when no item matched so the
// presentation can render a distinct "no results" state.
type ListResponse[T any] struct {
	Items []T              `json:"items"`
	Count int              `json:"count"`
	Empty bool             `json:"empty"`
	Theme theme.Preference `json:"theme"`
}

func newListResponse[T any](c *gin.Context, items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{
		Items: items,
		Count: len(items),
		Empty: len(items) == 0,
		Theme: theme.FromContext(c.Request.Context()),
	}
}

// etag hashes a response body.
func etag(body []byte) string {
	return fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
}

func etagMatches(header, tag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == tag {
			return true
		}
	}
	return false
}

// cachedJSON writes v with an ETag, answering 304 when the client already
// holds the same representation. Only used for catalog reads, which never
// change while the process runs.
func cachedJSON(c *gin.Context, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to encode response"})
		return
	}
	tag := etag(body)
	c.Header("ETag", tag)
	c.Header("Vary", theme.HeaderName)
	if etagMatches(c.GetHeader("If-None-Match"), tag) {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// runPipeline times a listing computation in a span, the Server-Timing
// header and the pipeline histograms.
func runPipeline[T any](h *Handler, c *gin.Context, view string, fn func() []T) []T {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "pipeline."+view)
	defer span.End()

	var metric *servertiming.Metric
	if timing := servertiming.FromContext(ctx); timing != nil {
		metric = timing.NewMetric("pipeline").WithDesc(view).Start()
	}

	start := time.Now()
	items := fn()
	elapsed := time.Since(start)

	if metric != nil {
		metric.Stop()
	}
	span.SetAttributes(
		attribute.String("view", view),
		attribute.Int("results", len(items)),
	)
	h.metrics.RecordPipeline(view, elapsed, len(items))
	return items
}
