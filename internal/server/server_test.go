package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/jobboard/internal/domain"
	"github.com/osse101/jobboard/internal/repository"
	"github.com/osse101/jobboard/internal/testing/leaktest"
)

const testAPIKey = "test-key"

type fakePool struct {
	pingErr error
}

func (p *fakePool) Ping(context.Context) error { return p.pingErr }
func (p *fakePool) Close()                     {}

func newTestServer(repo repository.Job) *Server {
	return NewServer(0, testAPIKey, nil, "test", &fakePool{}, repo)
}

func serve(s *Server, method, path, body string, withKey bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if withKey {
		req.Header.Set(HeaderAPIKey, testAPIKey)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestServer_PublicRoutes(t *testing.T) {
	repo := new(repository.MockJob)
	repo.On("FindAll", mock.Anything, domain.JobFilter{}).Return([]domain.JobSummary{}, nil)
	repo.On("Get", mock.Anything, 1).Return(&domain.JobDetail{ID: 1}, nil)
	s := newTestServer(repo)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics", "/jobs", "/jobs/1", "/api/v1/jobs", "/api/v1/jobs/1"} {
		t.Run(path, func(t *testing.T) {
			w := serve(s, http.MethodGet, path, "", false)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestServer_WritesRequireAPIKey(t *testing.T) {
	routes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/jobs", `{"title":"T","companyHandle":"c1"}`},
		{http.MethodPatch, "/jobs/1", `{"title":"T"}`},
		{http.MethodDelete, "/jobs/1", ""},
		{http.MethodPost, "/api/v1/jobs", `{"title":"T","companyHandle":"c1"}`},
		{http.MethodPatch, "/api/v1/jobs/1", `{"title":"T"}`},
		{http.MethodDelete, "/api/v1/jobs/1", ""},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			repo := new(repository.MockJob)
			repo.On("Create", mock.Anything, mock.Anything).Return(&domain.Job{ID: 1}, nil)
			repo.On("Update", mock.Anything, 1, mock.Anything).Return(&domain.Job{ID: 1}, nil)
			repo.On("Remove", mock.Anything, 1).Return(nil)
			s := newTestServer(repo)

			w := serve(s, rt.method, rt.path, rt.body, false)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Empty(t, repo.Calls, "repository must not be reached without a key")

			w = serve(s, rt.method, rt.path, rt.body, true)
			assert.Less(t, w.Code, http.StatusBadRequest, "body: %s", w.Body.String())
		})
	}
}

func TestServer_RequestIDAndSecurityHeaders(t *testing.T) {
	repo := new(repository.MockJob)
	repo.On("FindAll", mock.Anything, mock.Anything).Return([]domain.JobSummary{}, nil)
	s := newTestServer(repo)

	w := serve(s, http.MethodGet, "/jobs", "", false)

	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))

	w = serve(s, http.MethodGet, "/healthz", "", false)
	assert.Empty(t, w.Header().Get(HeaderRequestID), "health checks are not logged")
}

func TestServer_ReadyzReportsDatabase(t *testing.T) {
	s := NewServer(0, testAPIKey, nil, "test", &fakePool{pingErr: errors.New("down")}, new(repository.MockJob))

	w := serve(s, http.MethodGet, "/readyz", "", false)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestServer_Swagger(t *testing.T) {
	s := newTestServer(new(repository.MockJob))

	w := serve(s, http.MethodGet, "/swagger/doc.json", "", false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/jobs/{id}"`)
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer(new(repository.MockJob))

	w := serve(s, http.MethodGet, "/nope", "", false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_StartStop(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	s := newTestServer(new(repository.MockJob))
	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(time.Second):
		t.Fatal("server did not stop")
	}

	checker.Check(2)
}
