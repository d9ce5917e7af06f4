package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/inzzo/inzzo-landing/config"
	apperrors "github.com/inzzo/inzzo-landing/pkg/errors"
	"github.com/inzzo/inzzo-landing/pkg/httpclient"
	"github.com/inzzo/inzzo-landing/pkg/logger"
	"github.com/inzzo/inzzo-landing/pkg/metrics"
	"github.com/inzzo/inzzo-landing/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	sendMessageMethod = "sendMessage"
	maxErrorBodyBytes = 4 << 10
)

// ErrNotConfigured is returned without any network call when the token or chat id is missing
var ErrNotConfigured = apperrors.NotConfiguredError("telegram bot")

// APIError is a non-2xx answer from the Bot API
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("telegram api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("telegram api returned status %d: %s", e.StatusCode, e.Description)
}

// sendMessageRequest is the sendMessage payload. chat_id stays a string so
// both numeric ids and @channel usernames pass through unchanged.
type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Client posts messages to a single configured chat through the Bot API.
// It uses tgbotapi for types only: tgbotapi.NewBotAPI calls getMe on
// construction and owns its transport, so the timeout-bound httpclient is used instead.
type Client struct {
	token      string
	chatID     string
	baseURL    string
	httpClient httpclient.Client
}

// NewClient creates a Bot API client; httpClient carries the call timeout
func NewClient(cfg config.TelegramConfig, httpClient httpclient.Client) *Client {
	return &Client{
		token:      cfg.BotToken,
		chatID:     cfg.ChatID,
		baseURL:    cfg.APIBaseURL,
		httpClient: httpClient,
	}
}

// IsConfigured reports whether both the bot token and chat id are present
func (c *Client) IsConfigured() bool {
	return c.token != "" && c.chatID != ""
}

// SendMessage sends an HTML-formatted message to the configured chat
func (c *Client) SendMessage(ctx context.Context, text string) (err error) {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	ctx, span := tracing.StartSpan(ctx, "telegram."+sendMessageMethod,
		attribute.String("messaging.system", "telegram"),
		attribute.Int("message.length", len(text)),
	)
	defer func() { tracing.EndSpan(span, err) }()

	start := time.Now()
	status := "success"
	defer func() {
		if err != nil {
			status = "error"
		}
		duration := metrics.MeasureDuration(start)
		metrics.TelegramRequestDuration.WithLabelValues(sendMessageMethod, status).Observe(duration)
		metrics.TelegramRequestTotal.WithLabelValues(sendMessageMethod, status).Inc()
		logger.LogAPICall("telegram", sendMessageMethod, status, duration, zap.NamedError("reason", err))
	}()

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    c.chatID,
		Text:      text,
		ParseMode: tgbotapi.ModeHTML,
	})
	if err != nil {
		return fmt.Errorf("failed to encode telegram payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(sendMessageMethod), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build telegram request: %w", redact(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", redact(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for connection reuse
		return nil
	}

	return decodeAPIError(resp)
}

func (c *Client) endpoint(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var envelope tgbotapi.APIResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Description != "" {
		apiErr.Description = envelope.Description
	} else {
		apiErr.Description = string(body)
	}
	return apiErr
}

// redact drops the request URL, which embeds the bot token, from transport errors
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
