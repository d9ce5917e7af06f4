package middleware

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inzzo/inzzo-landing/internal/models"
	"github.com/inzzo/inzzo-landing/pkg/logger"
	"go.uber.org/zap"
)

// RecoveryMiddleware turns panics into a JSON 500 and logs the details server-side only
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Error("Panic recovered",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", GetRequestID(c)),
			zap.Stack("stack"),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": models.ErrInternalServer})
	})
}
