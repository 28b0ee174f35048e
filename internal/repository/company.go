package repository

import (
	"context"

	"github.com/osse101/jobboard/internal/domain"
)

// Company defines read-only lookups of companies
type Company interface {
	GetByHandle(ctx context.Context, handle string) (*domain.Company, error)
}
