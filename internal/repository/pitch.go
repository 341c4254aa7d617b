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

const pitchColumns = `id, owner_id, name, location, hourly_price, slot_interval_minutes,
	opens_at_minute, closes_at_minute, status, created_at, updated_at`

type PitchRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPitchRepo(db *dbpg.DB) *PitchRepository {
	return &PitchRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PitchRepository) Create(ctx context.Context, p *domain.Pitch) error {
	query := `INSERT INTO pitches (` + pitchColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.OwnerID, p.Name, p.Location, p.HourlyPrice, p.SlotInterval,
		p.OpensAt, p.ClosesAt, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pitch: %w", err)
	}

	return nil
}

func (r *PitchRepository) GetByID(ctx context.Context, id string) (*domain.Pitch, error) {
	query := `SELECT ` + pitchColumns + ` FROM pitches WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get pitch: %w", err)
	}

	p, err := scanPitch(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPitchNotFound
		}
		return nil, fmt.Errorf("scan pitch: %w", err)
	}

	return p, nil
}

func (r *PitchRepository) List(ctx context.Context) ([]*domain.Pitch, error) {
	query := `SELECT ` + pitchColumns + `
			  FROM pitches
			  WHERE status = $1
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.PitchStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list pitches: %w", err)
	}
	defer rows.Close()

	var res []*domain.Pitch
	for rows.Next() {
		p, err := scanPitch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pitch: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

// UpdateStatus waits for in-flight reservations, which hold the pitch row FOR SHARE.
func (r *PitchRepository) UpdateStatus(ctx context.Context, id string, status domain.PitchStatus) error {
	query := `UPDATE pitches SET status = $2, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update pitch status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pitch rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrPitchNotFound
	}

	return nil
}

func scanPitch(row rowScanner) (*domain.Pitch, error) {
	var p domain.Pitch
	if err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Location, &p.HourlyPrice, &p.SlotInterval,
		&p.OpensAt, &p.ClosesAt, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
