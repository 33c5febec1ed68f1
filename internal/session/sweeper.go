package session

import (
	"context"
	"fmt"

	"github.com/founder-match/founder-match-web/internal/logging"
	"github.com/robfig/cron/v3"
)

// DefaultSweepSpec runs the sweep once a minute.
const DefaultSweepSpec = "@every 1m"

// Sweeper periodically removes idle sessions.
type Sweeper struct {
	c *cron.Cron
}

// StartSweeper schedules registry sweeps on spec and starts the scheduler.
func StartSweeper(registry *Registry, spec string) (*Sweeper, error) {
	if spec == "" {
		spec = DefaultSweepSpec
	}
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		removed := registry.Sweep()
		if removed > 0 {
			logging.New(context.Background()).LogInfof("session_sweep", "removed %d idle sessions, %d left", removed, registry.Len())
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule session sweep %q: %w", spec, err)
	}

	c.Start()
	logging.New(context.Background()).LogInfof("session_sweep", "scheduler started (%s)", spec)
	return &Sweeper{c: c}, nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *Sweeper) Stop(ctx context.Context) {
	done := s.c.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}
