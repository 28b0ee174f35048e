package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidJobID          = "Invalid job id"

	// Query parameter error messages
	ErrMsgUnknownQueryParam = "Unknown query parameter: %s"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Job operation error messages
	ErrMsgCreateJobFailed = "Failed to create job"
	ErrMsgListJobsFailed  = "Failed to list jobs"
	ErrMsgGetJobFailed    = "Failed to get job"
	ErrMsgUpdateJobFailed = "Failed to update job"
	ErrMsgRemoveJobFailed = "Failed to remove job"
)

// Query parameters accepted by the job listing
const (
	QueryParamMinSalary = "minSalary"
	QueryParamHasEquity = "hasEquity"
	QueryParamTitle     = "title"
)

// Route parameters
const (
	URLParamID = "id"
)
