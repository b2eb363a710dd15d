package tasks

import (
	"context"
	"log/slog"
)

// FetchFunc retrieves the document at url through the cache, reporting
// whether it was already cached. cache.Client.GetOrFetch satisfies this.
type FetchFunc func(ctx context.Context, url string) (string, bool, error)

var _ TaskInterface = (*WarmSourceTask)(nil)

// WarmSourceTask fetches one source URL through the cache so that a later
// request is served from a warm entry instead of waiting on the network.
// A cached document that is still fresh makes the task a no-op.
type WarmSourceTask struct {
	Task
	fetch FetchFunc
}

func NewWarmSourceTask(url string, fetch FetchFunc) *WarmSourceTask {
	return &WarmSourceTask{
		Task:  NewTask(TaskTypeWarmSource, url),
		fetch: fetch,
	}
}

func (t *WarmSourceTask) Execute(ctx context.Context) error {
	content, fromCache, err := t.fetch(ctx, t.URL)
	if err != nil {
		return err
	}

	slog.Debug("Source warmed", "url", t.URL, "bytes", len(content),
		"from_cache", fromCache, "duration", t.GetDuration().String())

	return nil
}
