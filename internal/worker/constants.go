package worker

// Log messages - worker pool
const (
	LogMsgWorkerTaskFailed = "Worker task failed"
	LogMsgWorkerSkipped    = "Worker skipped task after cancellation"
)

// DefaultWorkers is used when a caller asks for fewer than one worker
const DefaultWorkers = 1
