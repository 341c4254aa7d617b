package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// VerificationRepository stores one live code per user and purpose.
type VerificationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVerificationRepo(db *dbpg.DB) *VerificationRepository {
	return &VerificationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Upsert replaces any previous code for the same user and purpose and resets the attempt counter.
func (r *VerificationRepository) Upsert(ctx context.Context, c *domain.VerificationCode) error {
	query := `INSERT INTO verification_codes (id, user_id, purpose, code_hash, attempts, expires_at, created_at)
			  VALUES ($1, $2, $3, $4, 0, $5, $6)
			  ON CONFLICT (user_id, purpose) DO UPDATE
			  SET id = EXCLUDED.id,
			      code_hash = EXCLUDED.code_hash,
			      attempts = 0,
			      expires_at = EXCLUDED.expires_at,
			      created_at = EXCLUDED.created_at`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.UserID, c.Purpose, c.CodeHash, c.ExpiresAt, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert verification code: %w", err)
	}

	return nil
}

// ClaimAttempt spends one attempt on the live code and returns it. The counter is raised
// in the same statement that checks it, so concurrent checks never exceed maxAttempts.
func (r *VerificationRepository) ClaimAttempt(ctx context.Context, userID, purpose string, maxAttempts int) (*domain.VerificationCode, error) {
	query := `UPDATE verification_codes
			  SET attempts = attempts + 1
			  WHERE user_id = $1 AND purpose = $2 AND expires_at > now() AND attempts < $3
			  RETURNING id, user_id, purpose, code_hash, attempts, expires_at, created_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, purpose, maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("claim verification attempt: %w", err)
	}

	var c domain.VerificationCode
	err = row.Scan(&c.ID, &c.UserID, &c.Purpose, &c.CodeHash, &c.Attempts, &c.ExpiresAt, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.diagnoseClaim(ctx, userID, purpose)
	}
	if err != nil {
		return nil, fmt.Errorf("scan verification code: %w", err)
	}

	return &c, nil
}

func (r *VerificationRepository) diagnoseClaim(ctx context.Context, userID, purpose string) error {
	// Живой код есть, значит исчерпаны попытки
	query := `SELECT EXISTS(SELECT 1 FROM verification_codes
			  WHERE user_id = $1 AND purpose = $2 AND expires_at > now())`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, purpose)
	if err != nil {
		return fmt.Errorf("check verification code: %w", err)
	}

	var live bool
	if err = row.Scan(&live); err != nil {
		return fmt.Errorf("scan verification code: %w", err)
	}
	if live {
		return domain.ErrCodeAttempts
	}

	return domain.ErrCodeInvalid
}

// Consume deletes the code. Only one caller can consume a given code; the rest get domain.ErrCodeInvalid.
func (r *VerificationRepository) Consume(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM verification_codes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("consume verification code: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("consumed rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrCodeInvalid
	}

	return nil
}

func (r *VerificationRepository) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM verification_codes WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("purge verification codes: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purged rows affected: %w", err)
	}

	return n, nil
}
