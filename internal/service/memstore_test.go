package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/stpnv0/PitchBooker/internal/domain"
)

// memStore is an in-memory BookingRepo and SettlementRepo. One mutex plays the role
// of the database transaction, so every write is all-or-nothing.
type memStore struct {
	mu          sync.Mutex
	now         func() time.Time
	bookings    map[string]*domain.Booking
	claims      map[string]string
	settlements map[string]*domain.Settlement
	entries     []*domain.LedgerEntry
	flags       []*domain.ReconciliationFlag
}

func newMemStore(now func() time.Time) *memStore {
	return &memStore{
		now:         now,
		bookings:    make(map[string]*domain.Booking),
		claims:      make(map[string]string),
		settlements: make(map[string]*domain.Settlement),
	}
}

func claimKey(pitchID string, date domain.Date, slot domain.SlotTime) string {
	return pitchID + "/" + date.String() + "/" + slot.String()
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	c := *b
	c.Slots = slices.Clone(b.Slots)
	return &c
}

func (m *memStore) Reserve(_ context.Context, b *domain.Booking) ([]*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	var stale []*domain.Booking
	for _, slot := range b.Slots {
		holderID, ok := m.claims[claimKey(b.PitchID, b.Date, slot)]
		if !ok {
			continue
		}
		holder := m.bookings[holderID]
		if holder.OccupiesSlots(now) {
			return nil, domain.ErrSlotUnavailable
		}
		if !slices.Contains(stale, holder) {
			stale = append(stale, holder)
		}
	}

	released := make([]*domain.Booking, 0, len(stale))
	for _, h := range stale {
		h.Status = domain.BookingStatusExpired
		m.release(h)
		released = append(released, cloneBooking(h))
	}

	stored := cloneBooking(b)
	m.bookings[b.ID] = stored
	for _, slot := range b.Slots {
		m.claims[claimKey(b.PitchID, b.Date, slot)] = b.ID
	}

	return released, nil
}

func (m *memStore) release(b *domain.Booking) {
	for _, slot := range b.Slots {
		key := claimKey(b.PitchID, b.Date, slot)
		if m.claims[key] == b.ID {
			delete(m.claims, key)
		}
	}
}

func (m *memStore) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

func (m *memStore) GetByPaymentRef(_ context.Context, ref string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.bookings {
		if b.PaymentRef != nil && *b.PaymentRef == ref {
			return cloneBooking(b), nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (m *memStore) SetPaymentRef(_ context.Context, id, ref, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[id]
	if !ok || b.Status != domain.BookingStatusPending {
		return domain.ErrBookingNotPending
	}
	b.PaymentRef = &ref
	b.PaymentLink = link
	return nil
}

func (m *memStore) Cancel(_ context.Context, id string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	to, err := domain.Transition(b.Status, domain.EventCancel)
	if err != nil {
		return nil, domain.ErrBookingNotPending
	}
	b.Status = to
	m.release(b)
	return cloneBooking(b), nil
}

func (m *memStore) ExpireStale(_ context.Context) ([]*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	var res []*domain.Booking
	for _, b := range m.bookings {
		if b.Status == domain.BookingStatusPending && !b.HoldActive(now) {
			b.Status = domain.BookingStatusExpired
			m.release(b)
			res = append(res, cloneBooking(b))
		}
	}
	return res, nil
}

func (m *memStore) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var res []*domain.Booking
	for _, b := range m.bookings {
		if b.PlayerID == userID {
			res = append(res, cloneBooking(b))
		}
	}
	return res, nil
}

func (m *memStore) ClaimedSlots(_ context.Context, pitchID string, date domain.Date) ([]domain.SlotTime, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	var res []domain.SlotTime
	for _, b := range m.bookings {
		if b.PitchID != pitchID || !b.Date.Equal(date.Time) || !b.OccupiesSlots(now) {
			continue
		}
		res = append(res, b.Slots...)
	}
	slices.Sort(res)
	return res, nil
}

func (m *memStore) Settle(_ context.Context, s *domain.Settlement) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[s.BookingID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if _, done := m.settlements[s.BookingID]; done || b.Status == domain.BookingStatusPaid {
		return domain.ErrAlreadySettled
	}
	if b.Status == domain.BookingStatusExpired || (b.Status == domain.BookingStatusPending && !b.HoldActive(m.now())) {
		return domain.ErrBookingExpired
	}
	to, err := domain.Transition(b.Status, domain.EventPay)
	if err != nil {
		return domain.ErrBookingNotPending
	}

	paidAt := s.SettledAt
	b.Status = to
	b.PaidAt = &paidAt
	m.settlements[s.BookingID] = s
	m.entries = append(m.entries, s.Entries...)
	return nil
}

func (m *memStore) GetSettlement(_ context.Context, bookingID string) (*domain.Settlement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.settlements[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return s, nil
}

func (m *memStore) Refund(_ context.Context, bookingID string, reversals []*domain.LedgerEntry) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if b.Refunded() {
		return cloneBooking(b), nil
	}
	to, err := domain.Transition(b.Status, domain.EventRefund)
	if err != nil {
		return nil, err
	}
	b.Status = to
	m.release(b)
	m.entries = append(m.entries, reversals...)
	return cloneBooking(b), nil
}

func (m *memStore) FlagForReview(_ context.Context, f *domain.ReconciliationFlag) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.flags = append(m.flags, f)
	return nil
}

func (m *memStore) ListFlags(_ context.Context, since time.Time) ([]*domain.ReconciliationFlag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var res []*domain.ReconciliationFlag
	for _, f := range m.flags {
		if !f.CreatedAt.Before(since) {
			res = append(res, f)
		}
	}
	return res, nil
}

func (m *memStore) ledgerEntries() []*domain.LedgerEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.entries)
}

// discardNotifier drops every notification.
type discardNotifier struct{}

func (discardNotifier) Notify(context.Context, *domain.User, domain.NotificationKind, map[string]string) {}
