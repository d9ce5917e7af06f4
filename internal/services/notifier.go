package services

import (
	"context"
	"fmt"
	"html"

	"github.com/inzzo/inzzo-landing/internal/models"
	apperrors "github.com/inzzo/inzzo-landing/pkg/errors"
	"github.com/inzzo/inzzo-landing/pkg/logger"
	"github.com/inzzo/inzzo-landing/pkg/metrics"
	"go.uber.org/zap"
)

const leadTemplate = `
🔥 <b>Новый лид на INZZO!</b>

👤 <b>Имя:</b> %s
📱 <b>Телефон:</b> %s
📧 <b>Email:</b> %s
⏰ <b>Время:</b> %s

#лид #inzzo #whitelist
`

const orderTemplate = `
📝 <b>Новая заявка на INZZO!</b>

👤 <b>Имя:</b> %s
💬 <b>Telegram:</b> %s
🌍 <b>Город:</b> %s
⏰ <b>Время:</b> %s

#заявка #inzzo #order
`

// MessageSender delivers one formatted message to the team chat
type MessageSender interface {
	IsConfigured() bool
	SendMessage(ctx context.Context, text string) error
}

// TelegramNotifier formats submissions and reports whether delivery succeeded.
// Delivery failures never propagate as errors.
type TelegramNotifier struct {
	sender MessageSender
}

// NewTelegramNotifier creates a notifier on top of a message sender
func NewTelegramNotifier(sender MessageSender) *TelegramNotifier {
	return &TelegramNotifier{sender: sender}
}

// IsConfigured reports whether notifications can be attempted at all
func (n *TelegramNotifier) IsConfigured() bool {
	return n.sender.IsConfigured()
}

// NotifyLead sends the lead message; formattedTime is already in display format
func (n *TelegramNotifier) NotifyLead(ctx context.Context, lead *models.LeadSubmission, formattedTime string) bool {
	return n.send(ctx, models.KindLead, FormatLeadMessage(lead, formattedTime),
		zap.String("email", lead.Email))
}

// NotifyOrder sends the order message; formattedTime is already in display format
func (n *TelegramNotifier) NotifyOrder(ctx context.Context, order *models.OrderSubmission, formattedTime string) bool {
	return n.send(ctx, models.KindOrder, FormatOrderMessage(order, formattedTime),
		zap.String("name", order.Name), zap.String("telegram", order.Telegram))
}

func (n *TelegramNotifier) send(ctx context.Context, kind models.SubmissionKind, text string, fields ...zap.Field) bool {
	fields = append(fields, zap.String("kind", string(kind)))

	err := n.sender.SendMessage(ctx, text)
	switch {
	case err == nil:
		metrics.Notifications.WithLabelValues(string(kind), "sent").Inc()
		logger.Info("Telegram notification sent", fields...)
		return true
	case apperrors.Is(err, apperrors.ErrNotConfigured):
		metrics.Notifications.WithLabelValues(string(kind), "not_configured").Inc()
		logger.Warn("Telegram not configured, notification skipped", fields...)
		return false
	default:
		metrics.Notifications.WithLabelValues(string(kind), "failed").Inc()
		logger.LogError(err, "Failed to send Telegram notification", fields...)
		return false
	}
}

// FormatLeadMessage renders the lead notification in Telegram HTML
func FormatLeadMessage(lead *models.LeadSubmission, formattedTime string) string {
	return fmt.Sprintf(leadTemplate,
		html.EscapeString(lead.Name),
		html.EscapeString(lead.Phone),
		html.EscapeString(lead.Email),
		formattedTime,
	)
}

// FormatOrderMessage renders the order notification in Telegram HTML
func FormatOrderMessage(order *models.OrderSubmission, formattedTime string) string {
	return fmt.Sprintf(orderTemplate,
		html.EscapeString(order.Name),
		html.EscapeString(order.Telegram),
		html.EscapeString(order.City),
		formattedTime,
	)
}
