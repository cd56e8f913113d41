package scheduler

import (
	"context"
	"time"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type exportReconciler interface {
	Reconcile(ctx context.Context) (domain.Divergence, error)
}

type sessionSweeper interface {
	Sweep() int
}

// Scheduler periodically repairs the export ledger and drops idle
// conversation sessions. Either dependency may be nil.
type Scheduler struct {
	reconciler exportReconciler
	sessions   sessionSweeper
	interval   time.Duration
	logger     logger.Logger
}

func New(
	reconciler exportReconciler,
	sessions sessionSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reconciler: reconciler,
		sessions:   sessions,
		interval:   interval,
		logger:     logger,
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
	if s.sessions != nil {
		if n := s.sessions.Sweep(); n > 0 {
			s.logger.Info("idle sessions expired", logger.Int("count", n))
		}
	}

	if s.reconciler == nil {
		return
	}

	div, err := s.reconciler.Reconcile(ctx)
	if err != nil {
		s.logger.Error("failed to reconcile export ledger",
			logger.String("error", err.Error()),
		)
		return
	}

	if !div.Empty() {
		s.logger.Warn("export ledger repaired",
			logger.Int("missing_created", len(div.MissingCreated)),
			logger.Int("missing_cancelled", len(div.MissingCancelled)),
		)
	}
}
