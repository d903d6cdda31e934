package jobs

import (
	"context"
	"fmt"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop() context.Context
}

// Manager starts and stops scheduled jobs as a unit.
type Manager struct {
	jobs []Job
}

// NewManager creates a manager for jobs.
func NewManager(jobs ...Job) *Manager {
	return &Manager{jobs: jobs}
}

// StartAll starts jobs in order; on failure already started jobs are stopped.
func (m *Manager) StartAll() error {
	for i, j := range m.jobs {
		if err := j.Start(); err != nil {
			for _, started := range m.jobs[:i] {
				started.Stop()
			}
			return fmt.Errorf("start job %d: %w", i, err)
		}
	}
	return nil
}

// StopAll stops every job and waits for running ticks until ctx is done.
func (m *Manager) StopAll(ctx context.Context) {
	for _, j := range m.jobs {
		select {
		case <-j.Stop().Done():
		case <-ctx.Done():
			return
		}
	}
}
