package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func anyUser(_ context.Context, id string) (*domain.User, error) {
	if id == "owner1" {
		return ownerAfterTrial(), nil
	}
	return &domain.User{ID: id}, nil
}

func newStoreBookingService(t *testing.T, store *memStore) *BookingService {
	t.Helper()
	pitches := mocks.NewMockPitchRepo(t)
	users := mocks.NewMockUserRepo(t)
	pitches.EXPECT().GetByID(mock.Anything, "p1").Return(testPitch(), nil)
	users.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(anyUser)

	svc := NewBookingService(store, pitches, users, mocks.NewMockPaymentGateway(t), discardNotifier{}, BookingConfig{
		HoldWindow: 15 * time.Minute,
		Currency:   "NGN",
	}, newTestLogger(t))
	svc.now = func() time.Time { return testNow }
	return svc
}

func reserveConcurrently(svc *BookingService, requests [][]domain.SlotTime) []error {
	errs := make([]error, len(requests))
	var wg sync.WaitGroup
	for i, slots := range requests {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.Reserve(context.Background(), domain.ReserveInput{
				PitchID:  "p1",
				PlayerID: uuid.NewString(),
				Date:     tomorrow(),
				Slots:    slots,
			})
		}()
	}
	wg.Wait()
	return errs
}

func TestBookingService_Reserve_ConcurrentSameSlot(t *testing.T) {
	store := newMemStore(func() time.Time { return testNow })
	svc := newStoreBookingService(t, store)

	requests := make([][]domain.SlotTime, 20)
	for i := range requests {
		requests[i] = []domain.SlotTime{16 * 60}
	}

	var won, lost int
	for _, err := range reserveConcurrently(svc, requests) {
		switch {
		case err == nil:
			won++
		case assert.ErrorIs(t, err, domain.ErrSlotUnavailable):
			lost++
		}
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, len(requests)-1, lost)

	claimed, err := store.ClaimedSlots(context.Background(), "p1", tomorrow())
	require.NoError(t, err)
	assert.Equal(t, []domain.SlotTime{16 * 60}, claimed)
}

func TestBookingService_Reserve_ConcurrentAllOrNothing(t *testing.T) {
	store := newMemStore(func() time.Time { return testNow })
	svc := newStoreBookingService(t, store)

	_, err := svc.Reserve(context.Background(), domain.ReserveInput{
		PitchID:  "p1",
		PlayerID: "u1",
		Date:     tomorrow(),
		Slots:    []domain.SlotTime{17 * 60},
	})
	require.NoError(t, err)

	// Половина запросов задевает занятый слот 17:00, остальные спорят за 18:00
	requests := make([][]domain.SlotTime, 20)
	for i := range requests {
		if i%2 == 0 {
			requests[i] = []domain.SlotTime{16 * 60, 17 * 60}
		} else {
			requests[i] = []domain.SlotTime{18 * 60}
		}
	}

	var won int
	for i, err := range reserveConcurrently(svc, requests) {
		if err == nil {
			won++
			assert.Equal(t, []domain.SlotTime{18 * 60}, requests[i])
			continue
		}
		assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
	}
	assert.Equal(t, 1, won)

	claimed, err := store.ClaimedSlots(context.Background(), "p1", tomorrow())
	require.NoError(t, err)
	assert.Equal(t, []domain.SlotTime{17 * 60, 18 * 60}, claimed)
}

func TestSettlementService_Settle_ConcurrentCallbacks(t *testing.T) {
	store := newMemStore(func() time.Time { return testNow })
	_, err := store.Reserve(context.Background(), pendingBooking())
	require.NoError(t, err)

	pitches := mocks.NewMockPitchRepo(t)
	users := mocks.NewMockUserRepo(t)
	pitches.EXPECT().GetByID(mock.Anything, "p1").Return(testPitch(), nil)
	users.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(anyUser)

	policy := domain.CommissionPolicy{Rate: decimal.RequireFromString("0.05"), Cashback: 30}
	svc := NewSettlementService(
		store, store, mocks.NewMockLedgerRepo(t), pitches, users,
		mocks.NewMockPaymentGateway(t), discardNotifier{}, policy, newTestLogger(t),
	)
	svc.now = func() time.Time { return testNow }

	const callbacks = 20
	var (
		wg         sync.WaitGroup
		settled    atomic.Int32
		duplicates atomic.Int32
	)
	for range callbacks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.Settle(context.Background(), domain.SettleInput{
				BookingID:      "b1",
				GatewayRef:     "b1",
				ReportedAmount: 25000,
			})
			switch {
			case err == nil:
				settled.Add(1)
			case assert.ErrorIs(t, err, domain.ErrAlreadySettled):
				duplicates.Add(1)
				if assert.NotNil(t, res) {
					assert.Equal(t, domain.SettlementKey("b1"), res.IdempotencyKey)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), settled.Load())
	assert.Equal(t, int32(callbacks-1), duplicates.Load())

	entries := store.ledgerEntries()
	require.Len(t, entries, 3)
	var payout, commission int64
	for _, e := range entries {
		switch e.Kind {
		case domain.EntryPayout:
			payout += e.Amount
		case domain.EntryCommission:
			commission += e.Amount
		}
	}
	assert.Equal(t, int64(25000), payout+commission)

	booking, err := store.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPaid, booking.Status)
	assert.NotNil(t, booking.PaidAt)
}
