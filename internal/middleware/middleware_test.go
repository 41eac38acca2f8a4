package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinelaptops/storefront/internal/theme"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimitMiddleware_BlocksAfterBurst(t *testing.T) {
	limiter := NewIPRateLimiter(RateLimiterConfig{RequestsPerSecond: 0.001, BurstSize: 2, IdleTTL: time.Minute})
	router := gin.New()
	router.Use(RateLimitMiddleware(limiter))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestIPRateLimiter_CleanupRemovesIdle(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewIPRateLimiter(RateLimiterConfig{RequestsPerSecond: 1, BurstSize: 1, IdleTTL: time.Minute})
	limiter.now = func() time.Time { return now }

	limiter.GetLimiter("10.0.0.1")
	now = now.Add(45 * time.Second)
	limiter.GetLimiter("10.0.0.2")
	now = now.Add(30 * time.Second)

	assert.Equal(t, 1, limiter.CleanupOldLimiters())
	assert.Equal(t, 1, limiter.Len())
}

func TestIPRateLimiter_SameIPSameLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(DefaultRateLimiterConfig())
	assert.Same(t, limiter.GetLimiter("1.2.3.4"), limiter.GetLimiter("1.2.3.4"))
	assert.NotSame(t, limiter.GetLimiter("1.2.3.4"), limiter.GetLimiter("5.6.7.8"))
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	require.NoError(t, err)
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
}

func TestLogger_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	router := gin.New()
	router.Use(RequestID(), Logger(&logger))
	router.GET("/api/products", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products?q=xps", nil))

	line := buf.String()
	assert.Contains(t, line, `"path":"/api/products"`)
	assert.Contains(t, line, `"query":"q=xps"`)
	assert.Contains(t, line, `"status":200`)
	assert.Contains(t, line, `"request_id":"`)
}

func TestTheme(t *testing.T) {
	router := gin.New()
	router.Use(Theme(theme.Light))
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, string(theme.FromContext(c.Request.Context())))
	})

	tests := []struct {
		header string
		want   string
	}{
		{"", "light"},
		{"dark", "dark"},
		{"Dark", "dark"},
		{"blue", "light"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set(theme.HeaderName, tt.header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, tt.want, w.Body.String(), tt.header)
		assert.Equal(t, tt.want, w.Header().Get(theme.HeaderName))
	}
}
