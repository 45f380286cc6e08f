package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/vladimiradmaev/bp-monitor/internal/interfaces"
	"github.com/vladimiradmaev/bp-monitor/internal/logger"
)

// Scheduler runs the daily reminder sweep on a cron schedule
type Scheduler struct {
	cron      *cron.Cron
	reminders interfaces.ReminderServiceInterface
	ctx       context.Context
	log       *zap.SugaredLogger
}

// New parses spec (standard five-field cron) in loc and registers the sweep
func New(spec string, loc *time.Location, reminders interfaces.ReminderServiceInterface) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}

	s := &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		reminders: reminders,
		ctx:       context.Background(),
		log:       logger.WithFields("component", "scheduler", "schedule", spec),
	}

	if _, err := s.cron.AddFunc(spec, s.Run); err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}

	return s, nil
}

// Run performs one sweep. Only the context passed to Start can cut it short.
func (s *Scheduler) Run() {
	s.log.Infow("Starting daily reminder sweep")
	if _, err := s.reminders.SendDailyReminders(s.ctx); err != nil {
		s.log.Errorw("Daily reminder sweep failed", "error", err)
	}
}

// Next returns the next planned run after Start, or the zero time before it
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// Start runs the schedule until ctx is done, then waits for a running sweep to finish
func (s *Scheduler) Start(ctx context.Context) {
	s.ctx = ctx
	s.cron.Start()
	s.log.Infow("Reminder scheduler started", "next_run", s.Next())

	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.log.Infow("Reminder scheduler stopped")
}
