package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHealthHandler_Healthcheck(t *testing.T) {
	tests := []struct {
		name       string
		configured bool
		expected   string
	}{
		{"telegram configured", true, `{"status":"ok","telegram_configured":true}`},
		{"telegram not configured", false, `{"status":"ok","telegram_configured":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			handler := NewHealthHandler(func() bool { return tt.configured })
			router := gin.New()
			router.GET("/health", handler.Healthcheck)

			// Create request
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/health", http.NoBody)

			// Execute
			router.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Equal(t, "no-cache, no-store, max-age=0, must-revalidate", w.Header().Get("Cache-Control"))
			assert.JSONEq(t, tt.expected, w.Body.String())
		})
	}
}

func TestNotFound(t *testing.T) {
	router := gin.New()
	router.NoRoute(NotFound)
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("unknown path", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/nope", http.NoBody))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
	})

	t.Run("known path with unsupported method", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("DELETE", "/health", http.NoBody))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
	})
}
