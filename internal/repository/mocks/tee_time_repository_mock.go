package mocks

import (
	"context"

	"github.com/charile1/golf-reservation/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockTeeTimeRepository struct {
	mock.Mock
}

func NewMockTeeTimeRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTeeTimeRepository {
	m := &MockTeeTimeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTeeTimeRepository) Create(ctx context.Context, teeTime *model.TeeTime) (*model.TeeTime, error) {
	args := m.Called(ctx, teeTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeeTime), args.Error(1)
}

func (m *MockTeeTimeRepository) List(ctx context.Context, filter model.TeeTimeFilter) ([]*model.TeeTime, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TeeTime), args.Error(1)
}

func (m *MockTeeTimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TeeTime, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeeTime), args.Error(1)
}

func (m *MockTeeTimeRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateTeeTimeParams) (*model.TeeTime, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeeTime), args.Error(1)
}

func (m *MockTeeTimeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
