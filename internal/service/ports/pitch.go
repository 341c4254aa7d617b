package ports

import (
	"context"

	"github.com/stpnv0/PitchBooker/internal/domain"
)

type PitchRepo interface {
	Create(ctx context.Context, p *domain.Pitch) error
	GetByID(ctx context.Context, id string) (*domain.Pitch, error)
	List(ctx context.Context) ([]*domain.Pitch, error)
	UpdateStatus(ctx context.Context, id string, status domain.PitchStatus) error
}
