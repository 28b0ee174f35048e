package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/jobboard/internal/domain"
	"github.com/osse101/jobboard/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// JobResponse wraps a single job
type JobResponse struct {
	Job *domain.Job `json:"job"`
}

// JobDetailResponse wraps a job with its company embedded
type JobDetailResponse struct {
	Job *domain.JobDetail `json:"job"`
}

// JobListResponse wraps a job listing
type JobListResponse struct {
	Jobs []domain.JobSummary `json:"jobs"`
}

// DeletedResponse reports the id of a removed job
type DeletedResponse struct {
	Deleted int `json:"deleted"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a repository failure and maps it to a client response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err, "status", status)
	}

	respondError(w, status, message)
}

// User-facing error messages for repository errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgNoUpdateFieldsError   = "At least one of title, salary, equity is required"
	ErrMsgCompanyNotFoundError  = "Company does not exist"
	ErrMsgConstraintViolatedErr = "Value out of range"
	ErrMsgNotFoundFormat        = "No %s: %v"
)

// PostgreSQL SQLSTATE codes surfaced as client errors
const (
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// mapServiceErrorToUserMessage converts repository errors to HTTP status codes and messages
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound, fmt.Sprintf(ErrMsgNotFoundFormat, notFound.Entity, notFound.ID)
	}

	switch {
	case errors.Is(err, domain.ErrNoUpdateFields):
		return http.StatusBadRequest, ErrMsgNoUpdateFieldsError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return http.StatusBadRequest, ErrMsgCompanyNotFoundError
		case pgCheckViolation:
			return http.StatusBadRequest, ErrMsgConstraintViolatedErr
		}
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
