package ports

import (
	"context"

	"github.com/stpnv0/PitchBooker/internal/domain"
)

type LedgerRepo interface {
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.LedgerEntry, error)
	Balance(ctx context.Context, accountType domain.AccountType, accountID string) (int64, error)
	Revenue(ctx context.Context) (*domain.RevenueSummary, error)
}
