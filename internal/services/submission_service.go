package services

import (
	"context"
	"time"

	"github.com/inzzo/inzzo-landing/internal/models"
	apperrors "github.com/inzzo/inzzo-landing/pkg/errors"
	"github.com/inzzo/inzzo-landing/pkg/logger"
	"github.com/inzzo/inzzo-landing/pkg/metrics"
	"github.com/inzzo/inzzo-landing/pkg/timestamp"
	"go.uber.org/zap"
)

// Notifier delivers submission notifications and reports success as a flag
type Notifier interface {
	IsConfigured() bool
	NotifyLead(ctx context.Context, lead *models.LeadSubmission, formattedTime string) bool
	NotifyOrder(ctx context.Context, order *models.OrderSubmission, formattedTime string) bool
}

// SubmissionService validates landing form submissions and forwards them to the team chat
type SubmissionService struct {
	validator *SubmissionValidator
	notifier  Notifier
	now       func() time.Time
}

// NewSubmissionService creates a new submission service instance
func NewSubmissionService(notifier Notifier) *SubmissionService {
	return &SubmissionService{
		validator: NewSubmissionValidator(),
		notifier:  notifier,
		now:       time.Now,
	}
}

// NotificationsConfigured reports whether the notifier has credentials
func (s *SubmissionService) NotificationsConfigured() bool {
	return s.notifier.IsConfigured()
}

// SubmitLead validates a lead and notifies the team. A failed notification
// still yields an accepted response with telegram_sent=false.
func (s *SubmissionService) SubmitLead(ctx context.Context, req *models.LeadSubmission) (*models.SubmissionResponse, error) {
	if err := s.validator.ValidateLead(req); err != nil {
		return s.reject(models.KindLead, err)
	}

	formattedTime := timestamp.Format(string(req.Timestamp), s.now())

	// The notification outlives a disconnected client; only the HTTP timeout bounds it
	sent := s.notifier.NotifyLead(context.WithoutCancel(ctx), req, formattedTime)

	logger.Info("New lead",
		zap.String("name", req.Name),
		zap.String("phone", req.Phone),
		zap.String("email", req.Email),
		zap.String("time", formattedTime),
		zap.Bool("telegram_sent", sent))
	metrics.FormSubmissions.WithLabelValues(string(models.KindLead), "accepted").Inc()

	return models.Accepted(models.MsgLeadAccepted, sent), nil
}

// SubmitOrder validates an order and notifies the team. A failed notification
// still yields an accepted response with telegram_sent=false.
func (s *SubmissionService) SubmitOrder(ctx context.Context, req *models.OrderSubmission) (*models.SubmissionResponse, error) {
	if err := s.validator.ValidateOrder(req); err != nil {
		return s.reject(models.KindOrder, err)
	}

	formattedTime := timestamp.Format(string(req.Timestamp), s.now())

	sent := s.notifier.NotifyOrder(context.WithoutCancel(ctx), req, formattedTime)

	logger.Info("New order",
		zap.String("name", req.Name),
		zap.String("telegram", req.Telegram),
		zap.String("city", req.City),
		zap.String("time", formattedTime),
		zap.Bool("telegram_sent", sent))
	metrics.FormSubmissions.WithLabelValues(string(models.KindOrder), "accepted").Inc()

	return models.Accepted(models.MsgOrderAccepted, sent), nil
}

func (s *SubmissionService) reject(kind models.SubmissionKind, err error) (*models.SubmissionResponse, error) {
	ve, ok := apperrors.AsValidationError(err)
	if !ok {
		metrics.FormSubmissions.WithLabelValues(string(kind), "error").Inc()
		return nil, err
	}

	metrics.FormSubmissions.WithLabelValues(string(kind), "rejected").Inc()
	logger.Warn("Submission rejected",
		zap.String("kind", string(kind)),
		zap.String("field", ve.Field),
		zap.String("reason", ve.Reason))

	return models.Rejected(ve.Message), nil
}
