package ports

import (
	"context"
	"time"

	"github.com/stpnv0/PitchBooker/internal/domain"
)

type BookingRepo interface {
	// Reserve atomically releases stale holds on the requested slots, inserts the booking
	// and claims every slot. It returns the bookings it expired on the way.
	Reserve(ctx context.Context, b *domain.Booking) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByPaymentRef(ctx context.Context, ref string) (*domain.Booking, error)
	SetPaymentRef(ctx context.Context, id, ref, link string) error
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	ExpireStale(ctx context.Context) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ClaimedSlots(ctx context.Context, pitchID string, date domain.Date) ([]domain.SlotTime, error)
}

type SettlementRepo interface {
	// Settle moves the booking to paid and appends its ledger entries in one transaction.
	Settle(ctx context.Context, s *domain.Settlement) error
	GetSettlement(ctx context.Context, bookingID string) (*domain.Settlement, error)
	Refund(ctx context.Context, bookingID string, reversals []*domain.LedgerEntry) (*domain.Booking, error)
	FlagForReview(ctx context.Context, f *domain.ReconciliationFlag) error
	ListFlags(ctx context.Context, since time.Time) ([]*domain.ReconciliationFlag, error)
}
