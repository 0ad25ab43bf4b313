// Package scheduler provides scheduled job management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"aula/internal/shared/logger"
)

// BatchJob is a scheduled batch processing job. Each Execute call processes
// one batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// Manager owns the process-wide gocron scheduler.
type Manager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewManager creates a scheduler manager. Jobs run on UTC.
func NewManager(log logger.Interface) (*Manager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, err
	}

	return &Manager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterEntitlementSweep schedules the lapsed-entitlement sweep. The sweep
// drops cached entitlement flags of users whose subscription period has
// ended, so access decisions stop granting paid content between provider
// events.
func (m *Manager) RegisterEntitlementSweep(sweep BatchJob, interval time.Duration) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()

			count, err := sweep.Execute(ctx)
			if err != nil {
				m.logger.Errorw("entitlement sweep failed", "error", err)
				return
			}
			if count > 0 {
				m.logger.Infow("entitlement sweep invalidated cached flags", "count", count)
			}
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName("entitlement-sweep"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered entitlement sweep", "interval", interval)
	return nil
}

// Start begins executing registered jobs.
func (m *Manager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()
	if m.started {
		return
	}
	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started")
}

// Stop shuts the scheduler down and waits for running jobs.
func (m *Manager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()
	if !m.started {
		return nil
	}
	if err := m.scheduler.Shutdown(); err != nil {
		return err
	}
	m.started = false
	m.logger.Infow("scheduler stopped")
	return nil
}
