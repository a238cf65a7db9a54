package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const DefaultSweepInterval = time.Hour

// SessionSweeper drops expired staff sessions
type SessionSweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

// Scheduler runs background maintenance
type Scheduler struct {
	sessions SessionSweeper
	interval time.Duration
	logger   *zap.Logger
}

func NewScheduler(sessions SessionSweeper, interval time.Duration, logger *zap.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Scheduler{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once at start and then every interval until ctx is done
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("Starting background scheduler", zap.Duration("interval", s.interval))

	s.sweepSessions(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweepSessions(ctx)
		case <-ctx.Done():
			s.logger.Info("Background scheduler stopped")
			return nil
		}
	}
}

func (s *Scheduler) sweepSessions(ctx context.Context) {
	n, err := s.sessions.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("Failed to sweep expired sessions", zap.Error(err))
		return
	}
	if n > 0 {
		s.logger.Info("Expired sessions removed", zap.Int("count", n))
	}
}
