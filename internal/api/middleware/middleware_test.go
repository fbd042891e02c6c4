package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestCORSConfig_ExposesRequestIDAndDisposition(t *testing.T) {
	e := echo.New()
	e.Use(CORSConfig())
	e.GET("/status", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.Header.Set(echo.HeaderOrigin, "https://coach.example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	exposed := rec.Header().Get(echo.HeaderAccessControlExposeHeaders)
	assert.Contains(t, exposed, echo.HeaderXRequestID)
	assert.Contains(t, exposed, echo.HeaderContentDisposition)
}

func TestCORSConfig_RestrictsToGivenOrigins(t *testing.T) {
	e := echo.New()
	e.Use(CORSConfig("https://coach.example.com"))
	e.GET("/status", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestTimeoutConfig_SkipsHealthProbes(t *testing.T) {
	slow := func(c echo.Context) error {
		time.Sleep(50 * time.Millisecond)
		return c.NoContent(http.StatusOK)
	}

	e := echo.New()
	e.Use(TimeoutConfig(5 * time.Millisecond))
	e.GET("/health/live", slow)
	e.GET("/api/v1/roadmap/tutor", slow)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/roadmap/tutor", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
