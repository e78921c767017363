package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/aradsms/pgphone/internal/phonenumber_service/domain"
)

// MockPhoneNumberRepository is a testify mock of domain.PhoneNumberRepository.
type MockPhoneNumberRepository struct {
	mock.Mock
}

func (m *MockPhoneNumberRepository) Create(ctx context.Context, reg *domain.Registration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *MockPhoneNumberRepository) GetByNumber(ctx context.Context, number domain.PhoneNumber) (*domain.Registration, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}

func (m *MockPhoneNumberRepository) ListAfter(ctx context.Context, after *domain.PhoneNumber, limit int) ([]*domain.Registration, error) {
	args := m.Called(ctx, after, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Registration), args.Error(1)
}

func (m *MockPhoneNumberRepository) ListRange(ctx context.Context, from, to domain.PhoneNumber, after *domain.PhoneNumber, limit int) ([]*domain.Registration, error) {
	args := m.Called(ctx, from, to, after, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Registration), args.Error(1)
}

func (m *MockPhoneNumberRepository) Delete(ctx context.Context, number domain.PhoneNumber) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

func (m *MockPhoneNumberRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ domain.PhoneNumberRepository = (*MockPhoneNumberRepository)(nil)
