package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	portssvc "github.com/paydesk/compchange/internal/core/ports/services"
	"github.com/paydesk/compchange/internal/handlers"
	"github.com/paydesk/compchange/pkg/config"
)

func registerTestRouter(t *testing.T, rateLimit string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{
		JWTSecret:    "test-secret-key-that-is-long-enough",
		RateLimit:    rateLimit,
		IsProduction: true,
	}
	services := &portssvc.ServiceContainer{
		Change: new(MockChangeService),
		User:   new(MockUserService),
	}
	handlers.RegisterRoutes(r, cfg, services)
	return r
}

func TestRegisterRoutes_HealthCheck(t *testing.T) {
	r := registerTestRouter(t, "100-M")

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRegisterRoutes_InvalidRateLimitStillServes(t *testing.T) {
	r := registerTestRouter(t, "not-a-rate")

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
