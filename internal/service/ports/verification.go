package ports

import (
	"context"

	"github.com/stpnv0/PitchBooker/internal/domain"
)

type VerificationRepo interface {
	Upsert(ctx context.Context, c *domain.VerificationCode) error
	ClaimAttempt(ctx context.Context, userID, purpose string, maxAttempts int) (*domain.VerificationCode, error)
	Consume(ctx context.Context, id string) error
	PurgeExpired(ctx context.Context) (int64, error)
}
