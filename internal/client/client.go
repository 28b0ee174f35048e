// Package client is an HTTP client for the jobboard API
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/osse101/jobboard/internal/domain"
	"github.com/osse101/jobboard/internal/handler"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// DefaultBaseURL points at a locally running server
const DefaultBaseURL = "http://localhost:8080"

const apiKeyHeader = "X-API-Key"

// Client is the interface for the jobboard API client
type Client interface {
	ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.JobSummary, error)
	GetJob(ctx context.Context, id int) (*domain.JobDetail, error)
	CreateJob(ctx context.Context, req handler.CreateJobRequest) (*domain.Job, error)
	UpdateJob(ctx context.Context, id int, req handler.UpdateJobRequest) (*domain.Job, error)
	DeleteJob(ctx context.Context, id int) error
}

var _ Client = &APIClient{}

// Options contains configuration options for the API client
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIError is a non-2xx response from the server
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (%d): %s %v", e.StatusCode, e.Message, e.Fields)
}

// Is lets errors.Is(err, domain.ErrNotFound) match 404 responses
func (e *APIError) Is(target error) bool {
	return target == domain.ErrNotFound && e.StatusCode == http.StatusNotFound
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (*APIClient, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL: %q", opts.BaseURL)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &APIClient{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		apiKey:  opts.APIKey,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// do sends a request and decodes a 2xx JSON body into out
func (c *APIClient) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var body handler.ValidationErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
		apiErr.Fields = body.Fields
		return apiErr
	}

	// Middleware errors are plain text
	apiErr.Message = strings.TrimSpace(string(raw))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

// ListJobs lists jobs matching the filter
func (c *APIClient) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.JobSummary, error) {
	q := url.Values{}
	if filter.MinSalary != nil {
		q.Set(handler.QueryParamMinSalary, strconv.Itoa(*filter.MinSalary))
	}
	if filter.HasEquity != nil {
		q.Set(handler.QueryParamHasEquity, strconv.FormatBool(*filter.HasEquity))
	}
	if filter.Title != nil {
		q.Set(handler.QueryParamTitle, *filter.Title)
	}

	endpoint := "/jobs"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var resp handler.JobListResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Jobs, nil
}

// GetJob fetches one job with its company
func (c *APIClient) GetJob(ctx context.Context, id int) (*domain.JobDetail, error) {
	var resp handler.JobDetailResponse
	if err := c.do(ctx, http.MethodGet, jobPath(id), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Job == nil {
		return nil, errors.New("empty job in response")
	}
	return resp.Job, nil
}

// CreateJob creates a job
func (c *APIClient) CreateJob(ctx context.Context, req handler.CreateJobRequest) (*domain.Job, error) {
	var resp handler.JobResponse
	if err := c.do(ctx, http.MethodPost, "/jobs", req, &resp); err != nil {
		return nil, err
	}
	return resp.Job, nil
}

// UpdateJob applies a partial update
func (c *APIClient) UpdateJob(ctx context.Context, id int, req handler.UpdateJobRequest) (*domain.Job, error) {
	var resp handler.JobResponse
	if err := c.do(ctx, http.MethodPatch, jobPath(id), req, &resp); err != nil {
		return nil, err
	}
	return resp.Job, nil
}

// DeleteJob removes a job
func (c *APIClient) DeleteJob(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, jobPath(id), nil, nil)
}

func jobPath(id int) string {
	return "/jobs/" + strconv.Itoa(id)
}
