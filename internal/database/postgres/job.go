package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/jobboard/internal/domain"
	"github.com/osse101/jobboard/internal/logger"
	"github.com/osse101/jobboard/internal/repository"
)

var _ repository.Job = (*JobRepository)(nil)

// JobRepository implements the job repository for PostgreSQL
type JobRepository struct {
	db        Querier
	companies *CompanyRepository
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db Querier) *JobRepository {
	return &JobRepository{
		db:        db,
		companies: NewCompanyRepository(db),
	}
}

// rowScanner is satisfied by pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanJob reads id, title, salary, equity, company_handle
func scanJob(row rowScanner) (*domain.Job, error) {
	var job domain.Job
	var salary pgtype.Int4
	var equity pgtype.Numeric
	if err := row.Scan(&job.ID, &job.Title, &salary, &equity, &job.CompanyHandle); err != nil {
		return nil, err
	}

	eq, err := ptrNumeric(equity)
	if err != nil {
		return nil, err
	}
	job.Salary = ptrInt(salary)
	job.Equity = eq
	return &job, nil
}

// Create inserts a job and returns it with its generated id
func (r *JobRepository) Create(ctx context.Context, newJob domain.NewJob) (_ *domain.Job, err error) {
	defer func(start time.Time) { observeQuery(opJobCreate, start, err) }(time.Now())

	query := `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, salary, equity, company_handle
	`

	job, err := scanJob(r.db.QueryRow(ctx, query,
		newJob.Title,
		newJob.Salary,
		newJob.Equity,
		newJob.CompanyHandle,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	logger.FromContext(ctx).Debug(LogMsgJobCreated, "job_id", job.ID, "company_handle", job.CompanyHandle)
	return job, nil
}

// FindAll lists jobs matching the filter, with company names, ordered by title
func (r *JobRepository) FindAll(ctx context.Context, filter domain.JobFilter) (_ []domain.JobSummary, err error) {
	defer func(start time.Time) { observeQuery(opJobFindAll, start, err) }(time.Now())

	where := jobFilterClause(filter)
	query := `
		SELECT j.id, j.title, j.salary, j.equity, j.company_handle, c.name
		FROM jobs AS j
		LEFT JOIN companies AS c ON c.handle = j.company_handle` +
		where.sql() + `
		ORDER BY j.title
	`

	logger.FromContext(ctx).Debug(LogMsgListingJobs, "where", where.sql(), "params", len(where.args()))

	rows, err := r.db.Query(ctx, query, where.args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]domain.JobSummary, 0)
	for rows.Next() {
		var summary domain.JobSummary
		var salary pgtype.Int4
		var equity pgtype.Numeric
		var companyName pgtype.Text
		err := rows.Scan(
			&summary.ID,
			&summary.Title,
			&salary,
			&equity,
			&summary.CompanyHandle,
			&companyName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}

		eq, err := ptrNumeric(equity)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		summary.Salary = ptrInt(salary)
		summary.Equity = eq
		summary.CompanyName = companyName.String
		jobs = append(jobs, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return jobs, nil
}

// Get retrieves a job by id with its company embedded
func (r *JobRepository) Get(ctx context.Context, id int) (_ *domain.JobDetail, err error) {
	defer func(start time.Time) { observeQuery(opJobGet, start, err) }(time.Now())

	query := `
		SELECT id, title, salary, equity, company_handle
		FROM jobs
		WHERE id = $1
	`

	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewNotFoundError(domain.EntityJob, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	company, err := r.companies.GetByHandle(ctx, job.CompanyHandle)
	if err != nil {
		return nil, fmt.Errorf("failed to get company for job %d: %w", id, err)
	}

	return &domain.JobDetail{
		ID:      job.ID,
		Title:   job.Title,
		Salary:  job.Salary,
		Equity:  job.Equity,
		Company: *company,
	}, nil
}

// Update writes only the fields set in update and returns the updated job
func (r *JobRepository) Update(ctx context.Context, id int, update domain.JobUpdate) (_ *domain.Job, err error) {
	defer func(start time.Time) { observeQuery(opJobUpdate, start, err) }(time.Now())

	set := jobUpdateClause(update)
	if set.empty() {
		return nil, domain.ErrNoUpdateFields
	}

	query := `
		UPDATE jobs
		SET ` + set.sql() + `
		WHERE id = ` + set.next() + `
		RETURNING id, title, salary, equity, company_handle
	`

	logger.FromContext(ctx).Debug(LogMsgUpdatingJob, "job_id", id, "set", set.sql())

	job, err := scanJob(r.db.QueryRow(ctx, query, set.args(id)...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewNotFoundError(domain.EntityJob, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	return job, nil
}

// Remove deletes a job by id
func (r *JobRepository) Remove(ctx context.Context, id int) (err error) {
	defer func(start time.Time) { observeQuery(opJobRemove, start, err) }(time.Now())

	query := `
		DELETE FROM jobs
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to remove job: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityJob, id)
	}

	logger.FromContext(ctx).Debug(LogMsgJobRemoved, "job_id", id)
	return nil
}
