package models

import (
	"encoding/json"
	"strings"
)

// SubmissionKind distinguishes the two landing forms
type SubmissionKind string

const (
	KindLead  SubmissionKind = "lead"
	KindOrder SubmissionKind = "order"
)

// Timestamp is the optional client-side submission time. Any non-string JSON
// value decodes to empty so that it falls back to the current time.
type Timestamp string

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = ""
		return nil
	}
	*t = Timestamp(s)
	return nil
}

// LeadSubmission represents a whitelist sign-up from the landing page
type LeadSubmission struct {
	Name      string    `json:"name" validate:"required,min=2"`
	Phone     string    `json:"phone" validate:"required"`
	Email     string    `json:"email" validate:"required,contains=@,contains=."`
	Timestamp Timestamp `json:"timestamp"`
}

// Normalize trims surrounding whitespace from every text field
func (s *LeadSubmission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Email = strings.TrimSpace(s.Email)
}

// OrderSubmission represents a service request from the landing page
type OrderSubmission struct {
	Name      string    `json:"name" validate:"required,min=2"`
	Telegram  string    `json:"telegram" validate:"required,startswith=@"`
	City      string    `json:"city" validate:"required"`
	Timestamp Timestamp `json:"timestamp"`
}

// Normalize trims surrounding whitespace from every text field
func (s *OrderSubmission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Telegram = strings.TrimSpace(s.Telegram)
	s.City = strings.TrimSpace(s.City)
}

// SubmissionResponse is the JSON envelope returned by both submission endpoints
type SubmissionResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	TelegramSent *bool  `json:"telegram_sent,omitempty"`
}

// Accepted builds the success envelope with the notification outcome
func Accepted(message string, telegramSent bool) *SubmissionResponse {
	return &SubmissionResponse{
		Success:      true,
		Message:      message,
		TelegramSent: &telegramSent,
	}
}

// Rejected builds the failure envelope
func Rejected(message string) *SubmissionResponse {
	return &SubmissionResponse{
		Success: false,
		Message: message,
	}
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status             string `json:"status"`
	TelegramConfigured bool   `json:"telegram_configured"`
}
