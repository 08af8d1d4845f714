package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	syncService ClientSyncService

	mu   sync.Mutex
	stop context.CancelFunc
	done chan struct{}

	logger *logger.Logger
}

// NewClientSyncJob returns an idle job; nothing is pushed before Start.
func NewClientSyncJob(syncService ClientSyncService, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{syncService: syncService, logger: logger}
}

func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	jobCtx, stop := context.WithCancel(ctx)
	done := make(chan struct{})

	j.mu.Lock()
	j.stop, j.done = stop, done
	j.mu.Unlock()

	go j.loop(jobCtx, interval, done)
}

func (j *clientSyncJob) loop(ctx context.Context, interval time.Duration, done chan<- struct{}) {
	defer close(done)

	t := time.NewTicker(interval)
	defer t.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if j.syncService.Push(ctx) {
				failures = 0
				continue
			}
			failures++
			j.logger.Debug().Str("func", "*clientSyncJob.loop").
				Int("consecutive_failures", failures).Msg("background push did not complete")
		}
	}
}

// Stop is a no-op on an idle job.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	stop, done := j.stop, j.done
	j.stop, j.done = nil, nil
	j.mu.Unlock()

	if stop == nil {
		return
	}
	stop()
	<-done
}
