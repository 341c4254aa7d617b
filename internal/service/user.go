package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/service/ports"
)

type UserService struct {
	repo        ports.UserRepo
	trialPeriod time.Duration
}

func NewUserService(repo ports.UserRepo, trialPeriod time.Duration) *UserService {
	return &UserService{repo: repo, trialPeriod: trialPeriod}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:             uuid.New().String(),
		Username:       input.Username,
		Email:          input.Email,
		Role:           input.Role,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      now,
	}

	if input.Role == domain.RoleOwner {
		trial := s.trialPeriod
		if input.TrialDays != nil {
			trial = time.Duration(*input.TrialDays) * 24 * time.Hour
		}
		trialEnd := now.Add(trial)
		user.TrialEndsAt = &trialEnd
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
