package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// TokenCleaner drops verification tokens that expired before now.
type TokenCleaner interface {
	ClearExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}

type Scheduler struct {
	cron    *cron.Cron
	cleaner TokenCleaner
	log     zerolog.Logger
}

func NewScheduler(cleaner TokenCleaner, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		cleaner: cleaner,
		log:     log.With().Str("component", "jobs").Logger(),
	}
}

// ScheduleTokenCleanup registers the cleanup job. An empty schedule disables it.
func (s *Scheduler) ScheduleTokenCleanup(schedule string) error {
	if schedule == "" {
		s.log.Info().Msg("token cleanup disabled")
		return nil
	}
	if _, err := s.cron.AddFunc(schedule, s.CleanupTokens); err != nil {
		return fmt.Errorf("schedule token cleanup %q: %w", schedule, err)
	}
	return nil
}

func (s *Scheduler) CleanupTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cleared, err := s.cleaner.ClearExpiredTokens(ctx, time.Now().UTC())
	if err != nil {
		s.log.Error().Err(err).Msg("token cleanup failed")
		return
	}
	s.log.Info().Int64("cleared", cleared).Msg("expired verification tokens cleared")
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running job to return.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
