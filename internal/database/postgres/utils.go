package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/jobboard/internal/domain"
	"github.com/osse101/jobboard/internal/metrics"
)

// Querier is the subset of *pgxpool.Pool the repositories use.
// *pgx.Conn and pgx.Tx satisfy it as well.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// ---- Common Helper Functions ----

// ptrInt converts a pgtype.Int4 to *int.
// Returns nil if the int is not valid.
func ptrInt(i pgtype.Int4) *int {
	if !i.Valid {
		return nil
	}
	v := int(i.Int32)
	return &v
}

// ptrNumeric converts a pgtype.Numeric to *float64.
// Returns (nil, nil) for SQL NULL and an error if the value cannot be represented.
func ptrNumeric(n pgtype.Numeric) (*float64, error) {
	if !n.Valid {
		return nil, nil
	}
	val, err := n.Float64Value()
	if err != nil {
		return nil, fmt.Errorf("failed to convert numeric to float64: %w", err)
	}
	v := val.Float64
	return &v, nil
}

func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// ---- End Common Helper Functions ----

// observeQuery records duration for an operation and counts failures.
// NotFound is an expected outcome and is not counted as an error.
func observeQuery(operation string, start time.Time, err error) {
	metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		metrics.DBQueryErrors.WithLabelValues(operation, pgErrorCode(err)).Inc()
	}
}

// pgErrorCode extracts the SQLSTATE from a wrapped *pgconn.PgError, or "unknown"
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return "unknown"
}
