package services_test

import (
	"context"

	"github.com/inzzo/inzzo-landing/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockNotifier is a mock implementation of services.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockNotifier) NotifyLead(ctx context.Context, lead *models.LeadSubmission, formattedTime string) bool {
	args := m.Called(ctx, lead, formattedTime)
	return args.Bool(0)
}

func (m *MockNotifier) NotifyOrder(ctx context.Context, order *models.OrderSubmission, formattedTime string) bool {
	args := m.Called(ctx, order, formattedTime)
	return args.Bool(0)
}

// MockSender is a mock implementation of services.MessageSender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockSender) SendMessage(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}
