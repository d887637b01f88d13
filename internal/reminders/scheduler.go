package reminders

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

const DefaultSchedule = "0 0 8 * * *"

type Scheduler struct {
	job    *Job
	spec   string
	cron   *cron.Cron
	logger *slog.Logger
}

func NewScheduler(job *Job, spec string, logger *slog.Logger) *Scheduler {
	if spec == "" {
		spec = DefaultSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{job: job, spec: spec, logger: logger}
}

// Start registers the reminder pass and starts the cron loop.
func (s *Scheduler) Start(ctx context.Context) error {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(s.spec, func() {
		if _, err := s.job.Run(ctx); err != nil {
			s.logger.Error("reminder pass failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule reminders %q: %w", s.spec, err)
	}

	s.cron = c
	c.Start()
	s.logger.Info("reminder scheduler started", "schedule", s.spec)
	return nil
}

// Stop waits for a running pass to finish.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.logger.Info("reminder scheduler stopped")
}
