package handlers

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inzzo/inzzo-landing/internal/models"
	"github.com/inzzo/inzzo-landing/pkg/logger"
	"go.uber.org/zap"
)

// PageSource returns page documents by path
type PageSource interface {
	Get(path string) ([]byte, error)
}

type PageHandler struct {
	pages     PageSource
	indexPath string
}

func NewPageHandler(pages PageSource, indexPath string) *PageHandler {
	return &PageHandler{
		pages:     pages,
		indexPath: indexPath,
	}
}

// Index serves the landing page document
func (h *PageHandler) Index(c *gin.Context) {
	page, err := h.pages.Get(h.indexPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Landing page document is missing", zap.String("path", h.indexPath))
			respondError(c, http.StatusNotFound, models.ErrNotFound, err)
			return
		}
		logger.Error("Failed to load landing page", zap.String("path", h.indexPath), zap.Error(err))
		respondError(c, http.StatusInternalServerError, models.ErrInternalServer, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
