package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/inzzo/inzzo-landing/internal/models"
	"github.com/inzzo/inzzo-landing/internal/services"
	"github.com/inzzo/inzzo-landing/pkg/logger"
	"go.uber.org/zap"
)

var errEmptyPayload = errors.New("payload is not a non-empty JSON object")

type SubmissionHandler struct {
	service services.SubmissionServiceInterface
}

func NewSubmissionHandler(service services.SubmissionServiceInterface) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// SubmitLead handles POST /api/submit-lead
func (h *SubmissionHandler) SubmitLead(c *gin.Context) {
	defer recoverSubmission(c)

	var req models.LeadSubmission
	if err := decodeSubmission(c, &req); err != nil {
		attachError(c, err)
		c.JSON(http.StatusBadRequest, models.Rejected(models.MsgNoData))
		return
	}

	resp, err := h.service.SubmitLead(c.Request.Context(), &req)
	h.respond(c, resp, err)
}

// SubmitOrder handles POST /api/submit-order
func (h *SubmissionHandler) SubmitOrder(c *gin.Context) {
	defer recoverSubmission(c)

	var req models.OrderSubmission
	if err := decodeSubmission(c, &req); err != nil {
		attachError(c, err)
		c.JSON(http.StatusBadRequest, models.Rejected(models.MsgNoData))
		return
	}

	resp, err := h.service.SubmitOrder(c.Request.Context(), &req)
	h.respond(c, resp, err)
}

func (h *SubmissionHandler) respond(c *gin.Context, resp *models.SubmissionResponse, err error) {
	if err != nil {
		attachError(c, err)
		c.JSON(http.StatusInternalServerError, models.Rejected(models.MsgServerError))
		return
	}

	if !resp.Success {
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// recoverSubmission keeps the submission envelope on unexpected failures;
// the global recovery would answer with the generic error body instead.
func recoverSubmission(c *gin.Context) {
	recovered := recover()
	if recovered == nil {
		return
	}

	logger.Error("Panic while processing submission",
		zap.Any("panic", recovered),
		zap.String("path", c.Request.URL.Path),
		zap.Stack("stack"),
	)
	attachError(c, fmt.Errorf("submission panic: %v", recovered))
	c.AbortWithStatusJSON(http.StatusInternalServerError, models.Rejected(models.MsgServerError))
}

// decodeSubmission accepts only a non-empty JSON object whose known fields
// carry the expected JSON types. Content-Type is not checked.
func decodeSubmission(c *gin.Context, dst any) error {
	raw, err := c.GetRawData()
	if err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return err
	}
	if len(fields) == 0 {
		return errEmptyPayload
	}

	return binding.JSON.BindBody(raw, dst)
}
