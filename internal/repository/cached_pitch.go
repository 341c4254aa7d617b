package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/service/ports"
)

const pitchKeyPrefix = "pitch:"

// CachedPitchRepository keeps pitch rows in Redis. Reservations never trust it for the
// active check: the booking transaction reads the pitch row itself.
type CachedPitchRepository struct {
	primaryRepo ports.PitchRepo
	redisClient *redis.Client
	ttl         time.Duration
}

func NewCachedPitchRepository(
	primary ports.PitchRepo,
	redisClient *redis.Client,
	cacheTTL time.Duration,
) *CachedPitchRepository {
	return &CachedPitchRepository{
		primaryRepo: primary,
		redisClient: redisClient,
		ttl:         cacheTTL,
	}
}

func (r *CachedPitchRepository) GetByID(ctx context.Context, id string) (*domain.Pitch, error) {
	cacheKey := pitchKeyPrefix + id

	cached, err := r.redisClient.Get(ctx, cacheKey).Bytes()
	if err == nil {
		var pitch domain.Pitch
		if err := json.Unmarshal(cached, &pitch); err == nil {
			return &pitch, nil
		}
	}

	pitch, err := r.primaryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(pitch); err == nil {
		r.redisClient.Set(ctx, cacheKey, data, r.ttl)
	}

	return pitch, nil
}

func (r *CachedPitchRepository) Create(ctx context.Context, p *domain.Pitch) error {
	return r.primaryRepo.Create(ctx, p)
}

func (r *CachedPitchRepository) List(ctx context.Context) ([]*domain.Pitch, error) {
	return r.primaryRepo.List(ctx)
}

func (r *CachedPitchRepository) UpdateStatus(ctx context.Context, id string, status domain.PitchStatus) error {
	defer r.redisClient.Del(context.WithoutCancel(ctx), pitchKeyPrefix+id)
	return r.primaryRepo.UpdateStatus(ctx, id, status)
}
