package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

const codeDigits = 6

type VerificationConfig struct {
	CodeTTL     time.Duration
	MaxAttempts int
}

// VerificationService issues short-lived one-time codes. Codes live in the database with
// an expiry so that any instance can check them and a restart does not lose them.
type VerificationService struct {
	repo     ports.VerificationRepo
	userRepo ports.UserRepo
	notifier ports.Notifier
	cfg      VerificationConfig
	logger   logger.Logger
	now      func() time.Time
}

func NewVerificationService(
	repo ports.VerificationRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	cfg VerificationConfig,
	logger logger.Logger,
) *VerificationService {
	return &VerificationService{
		repo:     repo,
		userRepo: userRepo,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *VerificationService) Send(ctx context.Context, userID, purpose string) (time.Time, error) {
	if purpose == "" {
		return time.Time{}, fmt.Errorf("%w: purpose is required", domain.ErrValidation)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return time.Time{}, fmt.Errorf("get user: %w", err)
	}

	code, err := generateCode()
	if err != nil {
		return time.Time{}, fmt.Errorf("generate code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return time.Time{}, fmt.Errorf("hash code: %w", err)
	}

	now := s.now()
	vc := &domain.VerificationCode{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Purpose:   purpose,
		CodeHash:  hash,
		ExpiresAt: now.Add(s.cfg.CodeTTL),
		CreatedAt: now,
	}
	if err = s.repo.Upsert(ctx, vc); err != nil {
		return time.Time{}, fmt.Errorf("store code: %w", err)
	}

	go s.notifier.Notify(context.WithoutCancel(ctx), user, domain.NotifyVerificationCode, map[string]string{
		"code":       code,
		"purpose":    purpose,
		"expires_at": vc.ExpiresAt.Format(time.RFC3339),
	})

	return vc.ExpiresAt, nil
}

// Check consumes the code on success. Every check spends an attempt before the code is compared,
// so parallel guesses share the same budget.
func (s *VerificationService) Check(ctx context.Context, userID, purpose, code string) error {
	vc, err := s.repo.ClaimAttempt(ctx, userID, purpose, s.cfg.MaxAttempts)
	if errors.Is(err, domain.ErrCodeInvalid) || errors.Is(err, domain.ErrCodeAttempts) {
		return err
	}
	if err != nil {
		return fmt.Errorf("claim attempt: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword(vc.CodeHash, []byte(code)); err != nil {
		s.logger.Warn("verification code mismatch",
			logger.String("user_id", userID),
			logger.Int("attempts", vc.Attempts),
		)
		return domain.ErrCodeInvalid
	}

	if err = s.repo.Consume(ctx, vc.ID); err != nil {
		if errors.Is(err, domain.ErrCodeInvalid) {
			return err
		}
		return fmt.Errorf("consume code: %w", err)
	}

	return nil
}

func (s *VerificationService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.PurgeExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge codes: %w", err)
	}
	return n, nil
}

func generateCode() (string, error) {
	limit := big.NewInt(1)
	for range codeDigits {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", codeDigits, n.Int64()), nil
}
