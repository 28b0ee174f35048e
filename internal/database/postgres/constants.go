package postgres

// Job table columns
const (
	colTitle  = "title"
	colSalary = "salary"
	colEquity = "equity"
)

// Operation labels for query metrics
const (
	opJobCreate       = "job_create"
	opJobFindAll      = "job_find_all"
	opJobGet          = "job_get"
	opJobUpdate       = "job_update"
	opJobRemove       = "job_remove"
	opCompanyByHandle = "company_get_by_handle"
)

// Log Messages
const (
	LogMsgListingJobs = "Listing jobs"
	LogMsgUpdatingJob = "Updating job"
	LogMsgJobCreated  = "Job created"
	LogMsgJobRemoved  = "Job removed"
)
