package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/service/ports"
)

type LedgerService struct {
	repo ports.LedgerRepo
}

func NewLedgerService(repo ports.LedgerRepo) *LedgerService {
	return &LedgerService{repo: repo}
}

// Balance sums every entry of the account; no running balance is ever stored.
func (s *LedgerService) Balance(ctx context.Context, accountType domain.AccountType, accountID string) (*domain.Balance, error) {
	switch accountType {
	case domain.AccountOwner, domain.AccountPlayer, domain.AccountPlatform:
	default:
		return nil, fmt.Errorf("%w: unknown account type %q", domain.ErrValidation, accountType)
	}

	amount, err := s.repo.Balance(ctx, accountType, accountID)
	if err != nil {
		return nil, fmt.Errorf("sum ledger: %w", err)
	}

	return &domain.Balance{
		AccountType: accountType,
		AccountID:   accountID,
		Amount:      amount,
	}, nil
}

func (s *LedgerService) ListByBooking(ctx context.Context, bookingID string) ([]*domain.LedgerEntry, error) {
	return s.repo.ListByBooking(ctx, bookingID)
}

func (s *LedgerService) Revenue(ctx context.Context) (*domain.RevenueSummary, error) {
	return s.repo.Revenue(ctx)
}
