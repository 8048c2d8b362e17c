// Package maintenance runs scheduled housekeeping jobs such as the periodic
// site data wipe of a public kiosk.
package maintenance

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/infrastructure/config"
	"github.com/bnema/kiosk/internal/logging"
	"github.com/robfig/cron/v3"
)

// Job is the work run on every tick. It is always called on the main thread.
type Job func(ctx context.Context)

// Scheduler runs one job on a cron schedule. Cron fires on its own goroutine,
// so every run is posted to the main thread.
type Scheduler struct {
	mu       sync.Mutex
	cron     *cron.Cron
	entry    cron.EntryID
	schedule string
	main     port.MainThread
	job      Job
	ctx      context.Context
	started  bool
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(ctx context.Context, main port.MainThread, job Job) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithParser(config.CronParser)),
		main: main,
		job:  job,
		ctx:  logging.WithComponent(ctx, "maintenance"),
	}
}

// SetSchedule replaces the schedule. An empty expression disables the job.
func (s *Scheduler) SetSchedule(expr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if expr == s.schedule {
		return nil
	}
	log := logging.FromContext(s.ctx)

	if s.entry != 0 {
		s.cron.Remove(s.entry)
		s.entry = 0
	}
	s.schedule = ""
	if expr == "" {
		log.Info().Msg("scheduled data wipe disabled")
		return nil
	}

	id, err := s.cron.AddFunc(expr, s.fire)
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", expr, err)
	}
	s.entry = id
	s.schedule = expr
	log.Info().Str("schedule", expr).Time("next", s.cron.Entry(id).Next).Msg("scheduled data wipe enabled")
	return nil
}

// Schedule returns the active expression, empty when disabled.
func (s *Scheduler) Schedule() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schedule
}

func (s *Scheduler) fire() {
	logging.FromContext(s.ctx).Info().Msg("running scheduled data wipe")
	s.main.Post(func() { s.job(s.ctx) })
}

// Start begins firing jobs.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running tick to finish posting.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	s.mu.Unlock()

	<-s.cron.Stop().Done()
}
