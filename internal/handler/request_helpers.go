package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/jobboard/internal/domain"
	"github.com/osse101/jobboard/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body, validates it, and writes a 400 on failure.
// Unknown fields are rejected. If this returns an error the response has been written.
//
// Example usage:
//
//	var req CreateJobRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Create job"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// parseJobID reads the {id} route parameter. If ok is false the response has been written.
func parseJobID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, URLParamID)
	id, err := strconv.Atoi(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Invalid job id", "id", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidJobID)
		return 0, false
	}
	return id, true
}

// JobListQuery is the validated form of the listing query string
type JobListQuery struct {
	MinSalary *int    `json:"minSalary" validate:"omitempty,min=0"`
	HasEquity *bool   `json:"hasEquity"`
	Title     *string `json:"title" validate:"omitempty,min=1,max=255"`
}

// Filter converts the query into a repository filter
func (q JobListQuery) Filter() domain.JobFilter {
	return domain.JobFilter{
		MinSalary: q.MinSalary,
		HasEquity: q.HasEquity,
		Title:     q.Title,
	}
}

// parseJobListQuery reads minSalary, hasEquity and title from the query string.
// Any other key, or a value that does not parse, writes a 400 and returns ok=false.
func parseJobListQuery(w http.ResponseWriter, r *http.Request) (JobListQuery, bool) {
	var q JobListQuery
	log := logger.FromContext(r.Context())

	for key, values := range r.URL.Query() {
		value := values[len(values)-1]
		switch key {
		case QueryParamMinSalary:
			n, err := strconv.Atoi(value)
			if err != nil {
				log.Warn("Invalid query parameter", "param", key, "value", value)
				respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, key))
				return q, false
			}
			q.MinSalary = &n
		case QueryParamHasEquity:
			b, err := strconv.ParseBool(value)
			if err != nil {
				log.Warn("Invalid query parameter", "param", key, "value", value)
				respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, key))
				return q, false
			}
			q.HasEquity = &b
		case QueryParamTitle:
			v := value
			q.Title = &v
		default:
			log.Warn("Unknown query parameter", "param", key)
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgUnknownQueryParam, key))
			return q, false
		}
	}

	if err := GetValidator().ValidateStruct(q); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return q, false
	}

	return q, true
}
