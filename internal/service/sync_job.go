package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/calm-journal/internal/logger"
)

const (
	defaultSyncInterval = 5 * time.Minute
	defaultPollInterval = 15 * time.Second
)

type syncJob struct {
	data         DataService
	syncInterval time.Duration
	pollInterval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSyncJob creates a job that calls data.SyncPendingChanges every
// syncInterval and additionally polls connectivity every pollInterval,
// syncing immediately when the device comes back online. Non-positive
// intervals default to 5 minutes and 15 seconds. The job is idle until Start
// is called.
func NewSyncJob(data DataService, syncInterval, pollInterval time.Duration, logger *logger.Logger) SyncJob {
	if syncInterval <= 0 {
		syncInterval = defaultSyncInterval
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &syncJob{
		data:         data,
		syncInterval: syncInterval,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine bound to ctx. The goroutine exits when ctx
// is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		syncTicker := time.NewTicker(j.syncInterval)
		defer syncTicker.Stop()
		pollTicker := time.NewTicker(j.pollInterval)
		defer pollTicker.Stop()

		online := j.data.IsOnline(jobCtx)

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-syncTicker.C:
				j.sync(jobCtx, "interval")
			case <-pollTicker.C:
				now := j.data.IsOnline(jobCtx)
				if now && !online {
					j.sync(jobCtx, "connectivity regained")
				}
				online = now
			}
		}
	}()
}

func (j *syncJob) sync(ctx context.Context, reason string) {
	report := j.data.SyncPendingChanges(ctx)
	if report.Skipped {
		j.logger.Debug().Str("reason", reason).Msg("sync skipped, device offline")
		return
	}
	j.logger.Debug().Str("reason", reason).
		Int("synced", len(report.Synced)).
		Int("failed", len(report.Failed)).
		Msg("sync pass finished")
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
