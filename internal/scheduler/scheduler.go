package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingExpirer interface {
	ExpireStale(ctx context.Context) ([]*domain.Booking, error)
}

type codePurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Scheduler runs the periodic housekeeping jobs. Expiry itself is enforced at write time,
// so a missed tick only delays notifications and cleanup.
type Scheduler struct {
	bookingService      bookingExpirer
	verificationService codePurger
	interval            time.Duration
	logger              logger.Logger
}

func New(
	bookingService bookingExpirer,
	verificationService codePurger,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService:      bookingService,
		verificationService: verificationService,
		interval:            interval,
		logger:              logger,
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
	s.expireBookings(ctx)
	s.purgeCodes(ctx)
}

func (s *Scheduler) expireBookings(ctx context.Context) {
	expired, err := s.bookingService.ExpireStale(ctx)
	if err != nil {
		s.logger.Error("failed to expire stale bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range expired {
		s.logger.Info("booking expired",
			logger.String("booking_id", b.ID),
			logger.String("player_id", b.PlayerID),
			logger.String("pitch_id", b.PitchID),
		)
	}
}

func (s *Scheduler) purgeCodes(ctx context.Context) {
	n, err := s.verificationService.PurgeExpired(ctx)
	if err != nil {
		s.logger.Error("failed to purge verification codes",
			logger.String("error", err.Error()),
		)
		return
	}
	if n > 0 {
		s.logger.Debug("verification codes purged", logger.Int64("count", n))
	}
}
