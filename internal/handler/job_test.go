package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/jobboard/internal/domain"
	"github.com/osse101/jobboard/internal/repository"
)

func newJobRouter(h *JobHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/jobs", h.HandleCreate)
	r.Get("/jobs", h.HandleList)
	r.Get("/jobs/{id}", h.HandleGet)
	r.Patch("/jobs/{id}", h.HandleUpdate)
	r.Delete("/jobs/{id}", h.HandleDelete)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, target, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }
func boolPtr(b bool) *bool        { return &b }

func TestHandleCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(repository.MockJob)
		router := newJobRouter(NewJobHandler(repo))

		expected := domain.NewJob{Title: "Engineer", Salary: intPtr(100), Equity: floatPtr(0.1), CompanyHandle: "c1"}
		repo.On("Create", mock.Anything, expected).
			Return(&domain.Job{ID: 7, Title: "Engineer", Salary: intPtr(100), Equity: floatPtr(0.1), CompanyHandle: "c1"}, nil)

		w := doRequest(t, router, http.MethodPost, "/jobs", map[string]any{
			"title": "Engineer", "salary": 100, "equity": 0.1, "companyHandle": "c1",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"job":{"id":7,"title":"Engineer","salary":100,"equity":0.1,"companyHandle":"c1"}}`, w.Body.String())
		repo.AssertExpectations(t)
	})

	t.Run("Validation errors name the JSON fields", func(t *testing.T) {
		repo := new(repository.MockJob)
		router := newJobRouter(NewJobHandler(repo))

		w := doRequest(t, router, http.MethodPost, "/jobs", map[string]any{
			"title": "", "salary": -1, "equity": 1.5, "companyHandle": "Bad Handle",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
		assert.Contains(t, resp.Fields, "title")
		assert.Contains(t, resp.Fields, "salary")
		assert.Contains(t, resp.Fields, "equity")
		assert.Contains(t, resp.Fields, "companyHandle")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		repo := new(repository.MockJob)
		router := newJobRouter(NewJobHandler(repo))

		w := doRequest(t, router, http.MethodPost, "/jobs", "{not json")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})

	t.Run("Unknown company", func(t *testing.T) {
		repo := new(repository.MockJob)
		router := newJobRouter(NewJobHandler(repo))

		fkErr := fmt.Errorf("failed to create job: %w", &pgconn.PgError{Code: pgForeignKeyViolation})
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, fkErr)

		w := doRequest(t, router, http.MethodPost, "/jobs", map[string]any{
			"title": "Engineer", "companyHandle": "ghost",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgCompanyNotFoundError)
	})
}

func TestHandleList(t *testing.T) {
	t.Run("No filters", func(t *testing.T) {
		repo := new(repository.MockJob)
		router := newJobRouter(NewJobHandler(repo))

		repo.On("FindAll", mock.Anything, domain.JobFilter{}).Return([]domain.JobSummary{
			{ID: 1, Title: "A", CompanyHandle: "c1", CompanyName: "C1"},
		}, nil)

		w := doRequest(t, router, http.MethodGet, "/jobs", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"jobs":[{"id":1,"title":"A","salary":null,"equity":null,"companyHandle":"c1","companyName":"C1"}]}`, w.Body.String())
	})

	t.Run("Empty result is an empty array", func(t *testing.T) {
		repo := new(repository.MockJob)
		router := newJobRouter(NewJobHandler(repo))

		repo.On("FindAll", mock.Anything, mock.Anything).Return([]domain.JobSummary{}, nil)

		w := doRequest(t, router, http.MethodGet, "/jobs?title=zzz", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"jobs":[]}`, w.Body.String())
	})

	t.Run("All filters are parsed", func(t *testing.T) {
		repo := new(repository.MockJob)
		router := newJobRouter(NewJobHandler(repo))

		expected := domain.JobFilter{MinSalary: intPtr(100000), HasEquity: boolPtr(true), Title: strPtr("eng")}
		repo.On("FindAll", mock.Anything, expected).Return([]domain.JobSummary{}, nil)

		w := doRequest(t, router, http.MethodGet, "/jobs?minSalary=100000&hasEquity=true&title=eng", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("Rejects bad input", func(t *testing.T) {
		tests := []struct {
			name  string
			query string
			want  string
		}{
			{"unknown key", "/jobs?nope=1", fmt.Sprintf(ErrMsgUnknownQueryParam, "nope")},
			{"non-numeric salary", "/jobs?minSalary=lots", fmt.Sprintf(ErrMsgInvalidQueryParam, QueryParamMinSalary)},
			{"bad boolean", "/jobs?hasEquity=maybe", fmt.Sprintf(ErrMsgInvalidQueryParam, QueryParamHasEquity)},
			{"negative salary", "/jobs?minSalary=-5", ErrMsgInvalidRequestSummary},
			{"empty title", "/jobs?title=", ErrMsgInvalidRequestSummary},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := new(repository.MockJob)
				router := newJobRouter(NewJobHandler(repo))

				w := doRequest(t, router, http.MethodGet, tt.query, nil)

				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Contains(t, w.Body.String(), tt.want)
				repo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Store failure is hidden", func(t *testing.T) {
		repo := new(repository.MockJob)
		router := newJobRouter(NewJobHandler(repo))

		repo.On("FindAll", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused on 10.0.0.5"))

		w := doRequest(t, router, http.MethodGet, "/jobs", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "10.0.0.5")
		assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
	})
}

func TestHandleGet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(repository.MockJob)
		router := newJobRouter(NewJobHandler(repo))

		repo.On("Get", mock.Anything, 3).Return(&domain.JobDetail{
			ID:    3,
			Title: "Engineer",
			Company: domain.Company{
				Handle:       "c1",
				Name:         "C1",
				Description:  "Desc",
				NumEmployees: intPtr(10),
			},
		}, nil)

		w := doRequest(t, router, http.MethodGet, "/jobs/3", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"job":{"id":3,"title":"Engineer","salary":null,"equity":null,
			"company":{"handle":"c1","name":"C1","description":"Desc","numEmployees":10,"logoUrl":null}}}`, w.Body.String())
	})

	t.Run("Not found", func(t *testing.T) {
		repo := new(repository.MockJob)
		router := newJobRouter(NewJobHandler(repo))

		repo.On("Get", mock.Anything, 42).Return(nil, domain.NewNotFoundError(domain.EntityJob, 42))

		w := doRequest(t, router, http.MethodGet, "/jobs/42", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"No job: 42"}`, w.Body.String())
	})

	t.Run("Invalid id", func(t *testing.T) {
		repo := new(repository.MockJob)
		router := newJobRouter(NewJobHandler(repo))

		w := doRequest(t, router, http.MethodGet, "/jobs/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidJobID)
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestHandleUpdate(t *testing.T) {
	t.Run("Partial update passes only supplied fields", func(t *testing.T) {
		repo := new(repository.MockJob)
		router := newJobRouter(NewJobHandler(repo))

		repo.On("Update", mock.Anything, 5, domain.JobUpdate{Salary: intPtr(5000)}).
			Return(&domain.Job{ID: 5, Title: "Engineer", Salary: intPtr(5000), CompanyHandle: "c1"}, nil)

		w := doRequest(t, router, http.MethodPatch, "/jobs/5", map[string]any{"salary": 5000})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"salary":5000`)
		repo.AssertExpectations(t)
	})

	t.Run("Zero values are still updates", func(t *testing.T) {
		repo := new(repository.MockJob)
		router := newJobRouter(NewJobHandler(repo))

		repo.On("Update", mock.Anything, 5, domain.JobUpdate{Salary: intPtr(0), Equity: floatPtr(0)}).
			Return(&domain.Job{ID: 5}, nil)

		w := doRequest(t, router, http.MethodPatch, "/jobs/5", map[string]any{"salary": 0, "equity": 0})

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("Immutable fields are rejected", func(t *testing.T) {
		for _, field := range []string{"id", "companyHandle"} {
			t.Run(field, func(t *testing.T) {
				repo := new(repository.MockJob)
				router := newJobRouter(NewJobHandler(repo))

				w := doRequest(t, router, http.MethodPatch, "/jobs/5", map[string]any{field: "x", "title": "New"})

				assert.Equal(t, http.StatusBadRequest, w.Code)
				repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Empty body", func(t *testing.T) {
		repo := new(repository.MockJob)
		router := newJobRouter(NewJobHandler(repo))

		repo.On("Update", mock.Anything, 5, domain.JobUpdate{}).Return(nil, domain.ErrNoUpdateFields)

		w := doRequest(t, router, http.MethodPatch, "/jobs/5", "{}")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNoUpdateFieldsError)
	})

	t.Run("Not found", func(t *testing.T) {
		repo := new(repository.MockJob)
		router := newJobRouter(NewJobHandler(repo))

		repo.On("Update", mock.Anything, 99, mock.Anything).Return(nil, domain.NewNotFoundError(domain.EntityJob, 99))

		w := doRequest(t, router, http.MethodPatch, "/jobs/99", map[string]any{"title": "New"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"No job: 99"}`, w.Body.String())
	})
}

func TestHandleDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(repository.MockJob)
		router := newJobRouter(NewJobHandler(repo))

		repo.On("Remove", mock.Anything, 8).Return(nil)

		w := doRequest(t, router, http.MethodDelete, "/jobs/8", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"deleted":8}`, w.Body.String())
	})

	t.Run("Not found", func(t *testing.T) {
		repo := new(repository.MockJob)
		router := newJobRouter(NewJobHandler(repo))

		repo.On("Remove", mock.Anything, 8).Return(fmt.Errorf("wrapped: %w", domain.NewNotFoundError(domain.EntityJob, 8)))

		w := doRequest(t, router, http.MethodDelete, "/jobs/8", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"No job: 8"}`, w.Body.String())
	})
}
