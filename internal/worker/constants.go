package worker

// Log messages
const (
	LogMsgWorkerJobFailed     = "Worker job failed"
	LogMsgWorkerJobPanicked   = "Worker job panicked"
	LogMsgWorkerJobsDropped   = "Worker pool stopped with queued jobs"
	LogMsgScheduledJobSkipped = "Scheduled job skipped, worker queue full"
)

// Pool sizes used by pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
