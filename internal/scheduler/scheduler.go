package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type sessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Scheduler periodically drops revoked sessions whose tokens have expired
// on their own.
type Scheduler struct {
	sessions sessionPurger
	interval time.Duration
	logger   logger.Logger
}

func New(
	sessions sessionPurger,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	purged, err := s.sessions.PurgeExpired(ctx)
	if err != nil {
		s.logger.Error("failed to purge revoked sessions",
			logger.String("error", err.Error()),
		)
		return
	}

	if purged > 0 {
		s.logger.Info("revoked sessions purged",
			logger.Int64("count", purged),
		)
	}
}
