package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/logging"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/store"
	"github.com/IqraS-gif/ai-career-coach-backend/pkg/models"
)

var startTime = time.Now()

const version = "1.0.0"

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	logger := logging.GetGlobalLogger()
	logger.Debug("Health check requested", map[string]interface{}{"request_id": requestID(c)})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler reports readiness, including store connectivity.
func ReadinessHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{
			"api": "ok",
		}
		status := "ready"
		httpStatus := http.StatusOK

		if err := st.Ping(c.Request().Context()); err != nil {
			checks["store"] = "unreachable"
			status = "not_ready"
			httpStatus = http.StatusServiceUnavailable
		} else {
			checks["store"] = "ok"
		}

		return c.JSON(httpStatus, models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
	})
}

// StatusHandler provides detailed service status
func StatusHandler(poolSize int, provider string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":          "operational",
			"version":         version,
			"uptime":          time.Since(startTime).String(),
			"uptime_seconds":  int(time.Since(startTime).Seconds()),
			"llm_provider":    provider,
			"credential_pool": poolSize,
		})
	}
}
