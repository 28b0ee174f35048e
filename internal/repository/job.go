package repository

import (
	"context"

	"github.com/osse101/jobboard/internal/domain"
)

// Job defines the data access interface for job operations
type Job interface {
	Create(ctx context.Context, job domain.NewJob) (*domain.Job, error)
	FindAll(ctx context.Context, filter domain.JobFilter) ([]domain.JobSummary, error)
	Get(ctx context.Context, id int) (*domain.JobDetail, error)
	Update(ctx context.Context, id int, update domain.JobUpdate) (*domain.Job, error)
	Remove(ctx context.Context, id int) error
}
