package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const entryColumns = `id, booking_id, account_type, account_id, amount, kind, idempotency_key, created_at`

// LedgerRepository only ever reads. Entries are written inside the settlement and refund transactions.
type LedgerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLedgerRepo(db *dbpg.DB) *LedgerRepository {
	return &LedgerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *LedgerRepository) ListByBooking(ctx context.Context, bookingID string) ([]*domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + `
			  FROM ledger_entries
			  WHERE booking_id = $1
			  ORDER BY created_at, account_type`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}

	return collectEntries(rows)
}

func (r *LedgerRepository) Balance(ctx context.Context, accountType domain.AccountType, accountID string) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0)
			  FROM ledger_entries
			  WHERE account_type = $1 AND account_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, accountType, accountID)
	if err != nil {
		return 0, fmt.Errorf("sum balance: %w", err)
	}

	var balance int64
	if err = row.Scan(&balance); err != nil {
		return 0, fmt.Errorf("scan balance: %w", err)
	}

	return balance, nil
}

func (r *LedgerRepository) Revenue(ctx context.Context) (*domain.RevenueSummary, error) {
	query := `SELECT
				COALESCE(SUM(amount) FILTER (WHERE kind = $1), 0),
				COALESCE(SUM(amount) FILTER (WHERE kind = $2), 0),
				COALESCE(SUM(amount) FILTER (WHERE kind = $3), 0),
				COALESCE(SUM(amount) FILTER (WHERE kind = $4), 0),
				(SELECT COUNT(*) FROM settlements)
			  FROM ledger_entries`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		domain.EntryCommission, domain.EntryPayout, domain.EntryCashback, domain.EntryReversal,
	)
	if err != nil {
		return nil, fmt.Errorf("revenue: %w", err)
	}

	var s domain.RevenueSummary
	if err = row.Scan(&s.Commission, &s.Payouts, &s.Cashback, &s.Reversals, &s.Settled); err != nil {
		return nil, fmt.Errorf("scan revenue: %w", err)
	}

	return &s, nil
}

// insertEntry appends one ledger row. With skipExisting a row already present for the same
// booking, kind and account is left alone, which makes replays of a refund harmless.
func insertEntry(ctx context.Context, tx *sql.Tx, e *domain.LedgerEntry, skipExisting bool) error {
	query := `INSERT INTO ledger_entries (` + entryColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if skipExisting {
		query += ` ON CONFLICT (booking_id, kind, account_type) DO NOTHING`
	}

	_, err := tx.ExecContext(
		ctx, query, e.ID, e.BookingID, e.AccountType, e.AccountID,
		e.Amount, e.Kind, e.IdempotencyKey, e.CreatedAt,
	)
	return err
}

func collectEntries(rows *sql.Rows) ([]*domain.LedgerEntry, error) {
	defer rows.Close()

	var res []*domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(
			&e.ID, &e.BookingID, &e.AccountType, &e.AccountID,
			&e.Amount, &e.Kind, &e.IdempotencyKey, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
