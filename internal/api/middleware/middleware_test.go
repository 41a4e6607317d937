package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"institute-portal-backend/internal/cache"
	"institute-portal-backend/internal/config"
	"institute-portal-backend/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func do(r http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(logger.ContextKeyRequestID))
	})

	w := do(r, http.MethodGet, "/", map[string]string{HeaderRequestID: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc-123", w.Body.String())

	w = do(r, http.MethodGet, "/", nil)
	assert.Len(t, w.Header().Get(HeaderRequestID), 36)

	w = do(r, http.MethodGet, "/", map[string]string{HeaderRequestID: strings.Repeat("x", 65)})
	assert.Len(t, w.Body.String(), 36)
}

func lastLogLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger.Setup("debug", &buf)
	defer logger.Setup("info", nil)

	r := gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	do(r, http.MethodGet, "/ok?year=2024", map[string]string{HeaderRequestID: "req-9"})
	entry := lastLogLine(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "req-9", entry["request_id"])
	assert.Equal(t, "year=2024", entry["query"])
	assert.EqualValues(t, 200, entry["status"])

	do(r, http.MethodGet, "/missing", nil)
	assert.Equal(t, "warning", lastLogLine(t, &buf)["level"])

	do(r, http.MethodGet, "/boom", nil)
	assert.Equal(t, "error", lastLogLine(t, &buf)["level"])
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger.Setup("info", &buf)
	defer logger.Setup("info", nil)

	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("nil map") })

	w := do(r, http.MethodGet, "/panic", map[string]string{HeaderRequestID: "req-p"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error","request_id":"req-p"}`, w.Body.String())
	assert.Equal(t, "nil map", lastLogLine(t, &buf)["panic"])
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"https://portal.instituto.gov.br/"}}
	r := gin.New()
	r.Use(CORS(cfg))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := do(r, http.MethodGet, "/", map[string]string{"Origin": "https://portal.instituto.gov.br"})
	assert.Equal(t, "https://portal.instituto.gov.br", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = do(r, http.MethodGet, "/", map[string]string{"Origin": "https://evil.example"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = do(r, http.MethodOptions, "/", map[string]string{"Origin": "https://portal.instituto.gov.br"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCORSWildcard(t *testing.T) {
	r := gin.New()
	r.Use(CORS(&config.Config{AllowedOrigins: []string{"*"}}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := do(r, http.MethodGet, "/", map[string]string{"Origin": "https://any.example"})
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func rateLimited(store cache.Store) *gin.Engine {
	r := gin.New()
	r.POST("/api/public/pre-registrations", RateLimit(store, 2, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	r.GET("/api/public/federations", RateLimit(store, 2, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimit(t *testing.T) {
	r := rateLimited(cache.NewMemoryStore())

	for i := 0; i < 2; i++ {
		w := do(r, http.MethodPost, "/api/public/pre-registrations", nil)
		assert.Equal(t, http.StatusCreated, w.Code)
	}
	w := do(r, http.MethodPost, "/api/public/pre-registrations", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	// the budget is per route
	w = do(r, http.MethodGet, "/api/public/federations", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	store, err := cache.NewRedisStore(mr.Addr(), "", 0)
	require.NoError(t, err)
	defer store.Close()
	mr.Close()

	r := rateLimited(store)
	for i := 0; i < 5; i++ {
		w := do(r, http.MethodPost, "/api/public/pre-registrations", nil)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	r = rateLimited(nil)
	for i := 0; i < 5; i++ {
		w := do(r, http.MethodPost, "/api/public/pre-registrations", nil)
		assert.Equal(t, http.StatusCreated, w.Code)
	}
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(8))
	r.POST("/", func(c *gin.Context) {
		var body map[string]string
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"subject":"a long portaria subject"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := do(r, http.MethodGet, "/", nil)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
