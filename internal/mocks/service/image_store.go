package service

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockImageStore is a mock implementation of service.ImageStore.
type MockImageStore struct {
	mock.Mock
}

// NewMockImageStore creates a mock wired to the test lifecycle.
func NewMockImageStore(t *testing.T) *MockImageStore {
	m := &MockImageStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockImageStore) Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	args := m.Called(ctx, filename, contentType, content)

	return args.String(0), args.Error(1)
}
