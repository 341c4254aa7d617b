package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/service/ports"
)

type PitchService struct {
	repo     ports.PitchRepo
	userRepo ports.UserRepo
}

func NewPitchService(repo ports.PitchRepo, userRepo ports.UserRepo) *PitchService {
	return &PitchService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *PitchService) Create(ctx context.Context, input domain.CreatePitchInput) (*domain.Pitch, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	opensAt, closesAt := 0, domain.MinutesPerDay
	var err error
	if input.OpensAt != "" {
		if opensAt, err = domain.ParseMinuteOfDay(input.OpensAt); err != nil {
			return nil, err
		}
	}
	if input.ClosesAt != "" {
		if closesAt, err = domain.ParseMinuteOfDay(input.ClosesAt); err != nil {
			return nil, err
		}
	}

	owner, err := s.userRepo.GetByID(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}
	if owner.Role != domain.RoleOwner {
		return nil, fmt.Errorf("%w: only pitch owners can list pitches", domain.ErrForbidden)
	}

	now := time.Now().UTC()
	pitch := &domain.Pitch{
		ID:           uuid.New().String(),
		OwnerID:      input.OwnerID,
		Name:         input.Name,
		Location:     input.Location,
		HourlyPrice:  input.HourlyPrice,
		SlotInterval: input.SlotInterval,
		OpensAt:      opensAt,
		ClosesAt:     closesAt,
		Status:       domain.PitchStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err = pitch.Validate(); err != nil {
		return nil, err
	}

	if err = s.repo.Create(ctx, pitch); err != nil {
		return nil, fmt.Errorf("create pitch: %w", err)
	}

	return pitch, nil
}

func (s *PitchService) GetByID(ctx context.Context, id string) (*domain.Pitch, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PitchService) List(ctx context.Context) ([]*domain.Pitch, error) {
	return s.repo.List(ctx)
}

// SetStatus lists or unlists a pitch. Only its owner may do so.
func (s *PitchService) SetStatus(ctx context.Context, pitchID, ownerID string, status domain.PitchStatus) error {
	if status != domain.PitchStatusActive && status != domain.PitchStatusUnlisted {
		return fmt.Errorf("%w: unknown pitch status %q", domain.ErrValidation, status)
	}

	pitch, err := s.repo.GetByID(ctx, pitchID)
	if err != nil {
		return fmt.Errorf("get pitch: %w", err)
	}
	if pitch.OwnerID != ownerID {
		return domain.ErrForbidden
	}

	if err = s.repo.UpdateStatus(ctx, pitchID, status); err != nil {
		return fmt.Errorf("update pitch status: %w", err)
	}

	return nil
}
