package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, pitch_id, player_id, booking_date, slots, amount, currency, status,
	payment_ref, payment_link, expires_at, created_at, updated_at, paid_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Reserve(ctx context.Context, b *domain.Booking) ([]*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Площадку нельзя снять с публикации, пока идёт резервирование
	var status domain.PitchStatus
	lockQuery := `SELECT status FROM pitches WHERE id = $1 FOR SHARE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.PitchID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPitchNotFound
		}
		return nil, fmt.Errorf("lock pitch: %w", err)
	}
	if status != domain.PitchStatusActive {
		return nil, domain.ErrPitchInactive
	}

	slots := slotArray(b.Slots)

	// Освобождаем просроченные холды на запрошенных слотах
	releaseQuery := `
		WITH expired AS (
			UPDATE bookings
			SET status = $5, updated_at = now()
			WHERE status = $4
			  AND expires_at <= now()
			  AND id IN (SELECT booking_id FROM booking_slots
			             WHERE pitch_id = $1 AND slot_date = $2::date AND slot_start = ANY($3))
			RETURNING ` + bookingColumns + `
		), released AS (
			DELETE FROM booking_slots s USING expired e WHERE s.booking_id = e.id
		)
		SELECT ` + bookingColumns + ` FROM expired`
	rows, err := tx.QueryContext(
		ctx, releaseQuery, b.PitchID, b.Date.String(), slots,
		domain.BookingStatusPending, domain.BookingStatusExpired,
	)
	if err != nil {
		return nil, fmt.Errorf("release stale holds: %w", err)
	}
	released, err := collectBookings(rows)
	if err != nil {
		return nil, fmt.Errorf("release stale holds: %w", err)
	}

	// Создаем бронь
	insertQuery := `INSERT INTO bookings (id, pitch_id, player_id, booking_date, slots, amount, currency,
	                                      status, payment_link, expires_at, created_at, updated_at)
	                VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, '', $9, $10, $11)`
	if _, err = tx.ExecContext(
		ctx, insertQuery, b.ID, b.PitchID, b.PlayerID, b.Date.String(), slots,
		b.Amount, b.Currency, b.Status, b.ExpiresAt, b.CreatedAt, b.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	// Занимаем слоты: уникальный ключ не даст двум активным броням взять один слот
	claimQuery := `INSERT INTO booking_slots (booking_id, pitch_id, slot_date, slot_start)
	               SELECT $1, $2, $3::date, unnest($4::int[])`
	if _, err = tx.ExecContext(ctx, claimQuery, b.ID, b.PitchID, b.Date.String(), slots); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrSlotUnavailable
		}
		return nil, fmt.Errorf("claim slots: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return released, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) GetByPaymentRef(ctx context.Context, ref string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE payment_ref = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ref)
	if err != nil {
		return nil, fmt.Errorf("get booking by payment ref: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) SetPaymentRef(ctx context.Context, id, ref, link string) error {
	query := `UPDATE bookings
			  SET payment_ref = $2, payment_link = $3, updated_at = now()
			  WHERE id = $1 AND status = $4`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, ref, link, domain.BookingStatusPending)
	if err != nil {
		return fmt.Errorf("set payment ref: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("payment ref rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrBookingNotPending
	}

	return nil
}

func (r *BookingRepository) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
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
		ctx, query, id, domain.BookingStatusPending, domain.BookingStatusCancelled,
	))
	if errors.Is(err, sql.ErrNoRows) {
		// Определяем причину: брони нет или она уже не pending
		var exists bool
		if err = tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM bookings WHERE id = $1)`, id).
			Scan(&exists); err != nil {
			return nil, fmt.Errorf("check booking: %w", err)
		}
		if !exists {
			return nil, domain.ErrBookingNotFound
		}
		return nil, domain.ErrBookingNotPending
	}
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM booking_slots WHERE booking_id = $1`, id); err != nil {
		return nil, fmt.Errorf("release slots: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return b, nil
}

// ExpireStale compares against the stored expires_at, the same value every lazy check uses.
func (r *BookingRepository) ExpireStale(ctx context.Context) ([]*domain.Booking, error) {
	query := `
		WITH expired AS (
			UPDATE bookings
			SET status = $2, updated_at = now()
			WHERE status = $1 AND expires_at <= now()
			RETURNING ` + bookingColumns + `
		), released AS (
			DELETE FROM booking_slots s USING expired e WHERE s.booking_id = e.id
		)
		SELECT ` + bookingColumns + ` FROM expired`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusExpired,
	)
	if err != nil {
		return nil, fmt.Errorf("expire stale: %w", err)
	}

	return collectBookings(rows)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE player_id = $1
              ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}

	return collectBookings(rows)
}

func (r *BookingRepository) ClaimedSlots(ctx context.Context, pitchID string, date domain.Date) ([]domain.SlotTime, error) {
	query := `SELECT s.slot_start
			  FROM booking_slots s
			  JOIN bookings b ON b.id = s.booking_id
			  WHERE s.pitch_id = $1
			    AND s.slot_date = $2::date
			    AND (b.status = $3 OR (b.status = $4 AND b.expires_at > now()))
			  ORDER BY s.slot_start`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query, pitchID, date.String(),
		domain.BookingStatusPaid, domain.BookingStatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("claimed slots: %w", err)
	}
	defer rows.Close()

	var res []domain.SlotTime
	for rows.Next() {
		var start int
		if err = rows.Scan(&start); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, domain.SlotTime(start))
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b     domain.Booking
		date  time.Time
		slots pq.Int64Array
	)
	if err := row.Scan(
		&b.ID, &b.PitchID, &b.PlayerID, &date, &slots, &b.Amount, &b.Currency, &b.Status,
		&b.PaymentRef, &b.PaymentLink, &b.ExpiresAt, &b.CreatedAt, &b.UpdatedAt, &b.PaidAt,
	); err != nil {
		return nil, err
	}

	b.Date = domain.DateOf(date)
	b.Slots = make([]domain.SlotTime, len(slots))
	for i, s := range slots {
		b.Slots[i] = domain.SlotTime(s)
	}

	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func slotArray(slots []domain.SlotTime) pq.Int64Array {
	res := make(pq.Int64Array, len(slots))
	for i, s := range slots {
		res[i] = int64(s)
	}
	return res
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
