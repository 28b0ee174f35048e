package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric exported by the service
const Namespace = "jobboard"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Database metric names
const (
	MetricNameDBQueryDuration = "db_query_duration_seconds"
	MetricNameDBQueryErrors   = "db_query_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Database metric help text
const (
	HelpTextDBQueryDuration = "Repository operation latency in seconds, including every round-trip it makes"
	HelpTextDBQueryErrors   = "Total number of failed repository operations, not counting not-found results"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelCode      = "code"
)

// UnmatchedRoute is the path label for requests that matched no route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Buckets
// ============================================================================

var (
	HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
	DBLatencyBuckets   = []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
)
