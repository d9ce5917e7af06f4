package services

import (
	"context"

	"github.com/inzzo/inzzo-landing/internal/models"
)

// SubmissionServiceInterface defines the interface for landing form submissions
type SubmissionServiceInterface interface {
	SubmitLead(ctx context.Context, req *models.LeadSubmission) (*models.SubmissionResponse, error)
	SubmitOrder(ctx context.Context, req *models.OrderSubmission) (*models.SubmissionResponse, error)
	NotificationsConfigured() bool
}

// Ensure services implement their interfaces
var _ SubmissionServiceInterface = (*SubmissionService)(nil)
var _ Notifier = (*TelegramNotifier)(nil)
