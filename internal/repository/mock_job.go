package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/jobboard/internal/domain"
)

// MockJob is a mock implementation of the Job interface
type MockJob struct {
	mock.Mock
}

func (m *MockJob) Create(ctx context.Context, newJob domain.NewJob) (*domain.Job, error) {
	args := m.Called(ctx, newJob)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJob) FindAll(ctx context.Context, filter domain.JobFilter) ([]domain.JobSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobSummary), args.Error(1)
}

func (m *MockJob) Get(ctx context.Context, id int) (*domain.JobDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobDetail), args.Error(1)
}

func (m *MockJob) Update(ctx context.Context, id int, update domain.JobUpdate) (*domain.Job, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJob) Remove(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
