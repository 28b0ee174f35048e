package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/jobboard/internal/domain"
	"github.com/osse101/jobboard/internal/repository"
)

var _ repository.Company = (*CompanyRepository)(nil)

// CompanyRepository implements read-only company lookups for PostgreSQL
type CompanyRepository struct {
	db Querier
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db Querier) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// GetByHandle retrieves a company by its handle
func (r *CompanyRepository) GetByHandle(ctx context.Context, handle string) (_ *domain.Company, err error) {
	defer func(start time.Time) { observeQuery(opCompanyByHandle, start, err) }(time.Now())

	query := `
		SELECT handle, name, description, num_employees, logo_url
		FROM companies
		WHERE handle = $1
	`

	var company domain.Company
	var numEmployees pgtype.Int4
	var logoURL pgtype.Text
	err = r.db.QueryRow(ctx, query, handle).Scan(
		&company.Handle,
		&company.Name,
		&company.Description,
		&numEmployees,
		&logoURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewNotFoundError(domain.EntityCompany, handle)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	company.NumEmployees = ptrInt(numEmployees)
	company.LogoURL = textToPtr(logoURL)
	return &company, nil
}
