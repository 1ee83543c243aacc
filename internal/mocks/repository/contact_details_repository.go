package repository

import (
	"context"
	"testing"

	"infinitybasket/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockContactDetailsRepository is a mock implementation of repository.ContactDetailsRepository.
type MockContactDetailsRepository struct {
	mock.Mock
}

// NewMockContactDetailsRepository creates a mock wired to the test lifecycle.
func NewMockContactDetailsRepository(t *testing.T) *MockContactDetailsRepository {
	m := &MockContactDetailsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockContactDetailsRepository) FindOrCreate(ctx context.Context) (*entity.ContactDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ContactDetails), args.Error(1)
}

func (m *MockContactDetailsRepository) Update(ctx context.Context, details *entity.ContactDetails) error {
	args := m.Called(ctx, details)

	return args.Error(0)
}
