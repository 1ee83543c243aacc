// Package service provides hand-written testify mocks for the domain service
// interfaces.
package service

import (
	"context"
	"testing"

	"infinitybasket/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockMailer is a mock implementation of service.Mailer.
type MockMailer struct {
	mock.Mock
}

// NewMockMailer creates a mock wired to the test lifecycle.
func NewMockMailer(t *testing.T) *MockMailer {
	m := &MockMailer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMailer) SendPasswordResetLink(ctx context.Context, to, resetURL string) error {
	args := m.Called(ctx, to, resetURL)

	return args.Error(0)
}

func (m *MockMailer) SendPasswordChanged(ctx context.Context, to string) error {
	args := m.Called(ctx, to)

	return args.Error(0)
}

func (m *MockMailer) SendMessageReceipt(ctx context.Context, message *entity.Message) error {
	args := m.Called(ctx, message)

	return args.Error(0)
}

func (m *MockMailer) SendEnquiryAlert(ctx context.Context, message *entity.Message) error {
	args := m.Called(ctx, message)

	return args.Error(0)
}

func (m *MockMailer) SendReply(ctx context.Context, message *entity.Message) error {
	args := m.Called(ctx, message)

	return args.Error(0)
}

func (m *MockMailer) SendDetailsChangedAlert(ctx context.Context, changes map[string]string) error {
	args := m.Called(ctx, changes)

	return args.Error(0)
}
