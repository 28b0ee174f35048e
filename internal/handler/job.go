package handler

import (
	"net/http"

	"github.com/osse101/jobboard/internal/domain"
	"github.com/osse101/jobboard/internal/logger"
	"github.com/osse101/jobboard/internal/repository"
)

// CreateJobRequest is the body of POST /jobs
type CreateJobRequest struct {
	Title         string   `json:"title" validate:"required,min=1,max=255"`
	Salary        *int     `json:"salary,omitempty" validate:"omitempty,min=0"`
	Equity        *float64 `json:"equity,omitempty" validate:"omitempty,min=0,max=1"`
	CompanyHandle string   `json:"companyHandle" validate:"required,min=1,max=25,handle"`
}

// UpdateJobRequest is the body of PATCH /jobs/{id}. The id and company cannot change.
type UpdateJobRequest struct {
	Title  *string  `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Salary *int     `json:"salary,omitempty" validate:"omitempty,min=0"`
	Equity *float64 `json:"equity,omitempty" validate:"omitempty,min=0,max=1"`
}

type JobHandler struct {
	repo repository.Job
}

func NewJobHandler(repo repository.Job) *JobHandler {
	return &JobHandler{
		repo: repo,
	}
}

// HandleCreate creates a job
// @Summary Create job
// @Description Creates a job owned by an existing company
// @Tags jobs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateJobRequest true "Job to create"
// @Success 201 {object} JobResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateJobRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create job"); err != nil {
		return
	}

	job, err := h.repo.Create(r.Context(), domain.NewJob{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.Equity,
		CompanyHandle: req.CompanyHandle,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateJobFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Job created", "job_id", job.ID, "company_handle", job.CompanyHandle)
	respondJSON(w, http.StatusCreated, JobResponse{Job: job})
}

// HandleList lists jobs, optionally filtered
// @Summary List jobs
// @Description Lists jobs ordered by title. Filters combine with AND.
// @Tags jobs
// @Produce json
// @Param minSalary query int false "Minimum salary (inclusive)"
// @Param hasEquity query bool false "Only jobs with non-zero equity when true"
// @Param title query string false "Case-insensitive title substring"
// @Success 200 {object} JobListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q, ok := parseJobListQuery(w, r)
	if !ok {
		return
	}

	jobs, err := h.repo.FindAll(r.Context(), q.Filter())
	if err != nil {
		respondServiceError(w, r, ErrMsgListJobsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, JobListResponse{Jobs: jobs})
}

// HandleGet returns one job with its company
// @Summary Get job
// @Tags jobs
// @Produce json
// @Param id path int true "Job id"
// @Success 200 {object} JobDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseJobID(w, r)
	if !ok {
		return
	}

	job, err := h.repo.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetJobFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, JobDetailResponse{Job: job})
}

// HandleUpdate applies a partial update
// @Summary Update job
// @Description Updates any subset of title, salary and equity
// @Tags jobs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Job id"
// @Param request body UpdateJobRequest true "Fields to change"
// @Success 200 {object} JobResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /jobs/{id} [patch]
func (h *JobHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseJobID(w, r)
	if !ok {
		return
	}

	var req UpdateJobRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update job"); err != nil {
		return
	}

	job, err := h.repo.Update(r.Context(), id, domain.JobUpdate{
		Title:  req.Title,
		Salary: req.Salary,
		Equity: req.Equity,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgUpdateJobFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, JobResponse{Job: job})
}

// HandleDelete removes a job
// @Summary Delete job
// @Tags jobs
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Job id"
// @Success 200 {object} DeletedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /jobs/{id} [delete]
func (h *JobHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseJobID(w, r)
	if !ok {
		return
	}

	if err := h.repo.Remove(r.Context(), id); err != nil {
		respondServiceError(w, r, ErrMsgRemoveJobFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Job removed", "job_id", id)
	respondJSON(w, http.StatusOK, DeletedResponse{Deleted: id})
}
