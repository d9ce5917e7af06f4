package handlers

import (
	"context"

	"github.com/inzzo/inzzo-landing/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockSubmissionService is a mock implementation of services.SubmissionServiceInterface
type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) SubmitLead(ctx context.Context, req *models.LeadSubmission) (*models.SubmissionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubmissionResponse), args.Error(1)
}

func (m *MockSubmissionService) SubmitOrder(ctx context.Context, req *models.OrderSubmission) (*models.SubmissionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubmissionResponse), args.Error(1)
}

func (m *MockSubmissionService) NotificationsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

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

// stubPages is a PageSource backed by a map
type stubPages struct {
	pages map[string][]byte
	err   error
}

func (s *stubPages) Get(path string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.pages[path], nil
}
