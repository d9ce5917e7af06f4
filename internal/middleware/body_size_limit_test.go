package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupBodyLimitRouter(limit int64) *gin.Engine {
	router := gin.New()
	router.Use(BodySizeLimitMiddleware(limit))
	router.POST("/api/submit-lead", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})
	return router
}

func TestBodySizeLimitMiddleware_WithinLimit(t *testing.T) {
	// Cyrillic letters take two bytes each, so this body is 19 bytes
	body := `{"name":"Анна"}`
	router := setupBodyLimitRouter(int64(len(body)))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/submit-lead", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBodySizeLimitMiddleware_DeclaredTooLarge(t *testing.T) {
	router := setupBodyLimitRouter(16)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/submit-lead", strings.NewReader(strings.Repeat("x", 17))))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.JSONEq(t, `{"error":"Request body too large"}`, w.Body.String())
}

func TestBodySizeLimitMiddleware_UndeclaredTooLarge(t *testing.T) {
	router := setupBodyLimitRouter(16)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/submit-lead", strings.NewReader(strings.Repeat("x", 64)))
	req.ContentLength = -1
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
