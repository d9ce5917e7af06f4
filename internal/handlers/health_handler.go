package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inzzo/inzzo-landing/internal/models"
)

type HealthHandler struct {
	telegramConfigured func() bool
}

func NewHealthHandler(telegramConfigured func() bool) *HealthHandler {
	return &HealthHandler{
		telegramConfigured: telegramConfigured,
	}
}

// Healthcheck reports liveness and whether notifications have credentials.
// It never calls Telegram.
func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:             models.HealthStatusOK,
		TelegramConfigured: h.telegramConfigured(),
	})
}
