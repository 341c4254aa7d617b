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

type SettlementRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSettlementRepo(db *dbpg.DB) *SettlementRepository {
	return &SettlementRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Settle is the only way a booking becomes paid. The status update, the settlement row and
// the ledger entries commit together or not at all.
func (r *SettlementRepository) Settle(ctx context.Context, s *domain.Settlement) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Атомарно проверяем статус и срок холда, переводим бронь в paid
	query := `UPDATE bookings
			  SET status = $2, paid_at = $3, updated_at = now()
			  WHERE id = $1
			    AND status = $4
			    AND expires_at > now()`
	res, err := tx.ExecContext(
		ctx, query, s.BookingID, domain.BookingStatusPaid, s.SettledAt, domain.BookingStatusPending,
	)
	if err != nil {
		return fmt.Errorf("mark booking paid: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return diagnoseSettle(ctx, tx, s.BookingID)
	}

	settlementQuery := `INSERT INTO settlements (booking_id, idempotency_key, gateway_ref, amount,
	                                             commission, payout, cashback, settled_at)
	                    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err = tx.ExecContext(
		ctx, settlementQuery, s.BookingID, s.IdempotencyKey, s.GatewayRef, s.Amount,
		s.Commission, s.Payout, s.Cashback, s.SettledAt,
	); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadySettled
		}
		return fmt.Errorf("insert settlement: %w", err)
	}

	for _, e := range s.Entries {
		if err = insertEntry(ctx, tx, e, false); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrAlreadySettled
			}
			return fmt.Errorf("insert ledger entry: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func diagnoseSettle(ctx context.Context, tx *sql.Tx, bookingID string) error {
	// Определяем причину: брони нет, уже оплачена, холд истёк или статус не pending
	var (
		status  domain.BookingStatus
		expired bool
	)
	query := `SELECT status, expires_at <= now() FROM bookings WHERE id = $1`
	if err := tx.QueryRowContext(ctx, query, bookingID).Scan(&status, &expired); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("check booking: %w", err)
	}

	switch {
	case status == domain.BookingStatusPaid:
		return domain.ErrAlreadySettled
	case status == domain.BookingStatusPending && expired,
		status == domain.BookingStatusExpired:
		return domain.ErrBookingExpired
	default:
		return domain.ErrBookingNotPending
	}
}

func (r *SettlementRepository) GetSettlement(ctx context.Context, bookingID string) (*domain.Settlement, error) {
	query := `SELECT booking_id, idempotency_key, gateway_ref, amount, commission, payout, cashback, settled_at
			  FROM settlements
			  WHERE booking_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get settlement: %w", err)
	}

	var s domain.Settlement
	if err = row.Scan(
		&s.BookingID, &s.IdempotencyKey, &s.GatewayRef, &s.Amount,
		&s.Commission, &s.Payout, &s.Cashback, &s.SettledAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan settlement: %w", err)
	}

	entriesQuery := `SELECT ` + entryColumns + `
					 FROM ledger_entries
					 WHERE booking_id = $1 AND idempotency_key = $2
					 ORDER BY created_at, account_type`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, entriesQuery, bookingID, s.IdempotencyKey)
	if err != nil {
		return nil, fmt.Errorf("list settlement entries: %w", err)
	}
	if s.Entries, err = collectEntries(rows); err != nil {
		return nil, err
	}

	return &s, nil
}

// Refund cancels a paid booking, frees its slots and appends the reversal entries.
// Repeating it on an already refunded booking changes nothing. A booking cancelled
// before it was paid is not refundable.
func (r *SettlementRepository) Refund(ctx context.Context, bookingID string, reversals []*domain.LedgerEntry) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2
			  RETURNING ` + bookingColumns
	b, err := scanBooking(tx.QueryRowContext(
		ctx, query, bookingID, domain.BookingStatusPaid, domain.BookingStatusCancelled,
	))
	if errors.Is(err, sql.ErrNoRows) {
		current, getErr := scanBooking(tx.QueryRowContext(
			ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, bookingID,
		))
		if errors.Is(getErr, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		if getErr != nil {
			return nil, fmt.Errorf("check booking: %w", getErr)
		}
		if !current.Refunded() {
			return nil, domain.ErrInvalidTransition
		}
		b = current
	} else if err != nil {
		return nil, fmt.Errorf("refund booking: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM booking_slots WHERE booking_id = $1`, bookingID); err != nil {
		return nil, fmt.Errorf("release slots: %w", err)
	}

	for _, e := range reversals {
		if err = insertEntry(ctx, tx, e, true); err != nil {
			return nil, fmt.Errorf("insert reversal: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return b, nil
}

func (r *SettlementRepository) FlagForReview(ctx context.Context, f *domain.ReconciliationFlag) error {
	query := `INSERT INTO reconciliation_flags (id, booking_id, gateway_ref, reason, reported_amount, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		f.ID, f.BookingID, f.GatewayRef, f.Reason, f.ReportedAmount, f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reconciliation flag: %w", err)
	}

	return nil
}

func (r *SettlementRepository) ListFlags(ctx context.Context, since time.Time) ([]*domain.ReconciliationFlag, error) {
	query := `SELECT id, booking_id, gateway_ref, reason, reported_amount, created_at
			  FROM reconciliation_flags
			  WHERE created_at >= $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, since)
	if err != nil {
		return nil, fmt.Errorf("list reconciliation flags: %w", err)
	}
	defer rows.Close()

	var res []*domain.ReconciliationFlag
	for rows.Next() {
		var f domain.ReconciliationFlag
		if err = rows.Scan(&f.ID, &f.BookingID, &f.GatewayRef, &f.Reason, &f.ReportedAmount, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reconciliation flag: %w", err)
		}
		res = append(res, &f)
	}

	return res, rows.Err()
}
