package tasks

// TaskSchedulerInterface defines the interface for background task
// scheduling. Used by the main application to keep the fetch cache warm for
// the configured sources.
// Example usage:
//
//	scheduler := NewScheduler(fetch, urls, interval, workerCount)
//	scheduler.Start()
//	defer scheduler.Stop()
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}
