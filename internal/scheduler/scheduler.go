package scheduler

import (
	"context"
	"time"

	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type orphanSweeper interface {
	SweepOrphans(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically sweeps bookings whose space no longer exists. The
// cascade delete runs in one transaction, so the sweep normally finds
// nothing; it is the remediation path for an interrupted cascade.
type Scheduler struct {
	bookingService orphanSweeper
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService orphanSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("orphan sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("orphan sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	orphans, err := s.bookingService.SweepOrphans(ctx)
	if err != nil {
		s.logger.Error("failed to sweep orphan bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range orphans {
		s.logger.Warn("orphan booking removed",
			logger.String("booking_id", b.ID),
			logger.String("user_id", b.UserID),
			logger.String("space_id", b.CoworkingspaceID),
		)
	}
}
