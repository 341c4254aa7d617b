package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type settlementFixture struct {
	bookings    *mocks.MockBookingRepo
	settlements *mocks.MockSettlementRepo
	ledger      *mocks.MockLedgerRepo
	pitches     *mocks.MockPitchRepo
	users       *mocks.MockUserRepo
	gateway     *mocks.MockPaymentGateway
	notifier    *mocks.MockNotifier
	svc         *SettlementService
}

func newSettlementFixture(t *testing.T) *settlementFixture {
	f := &settlementFixture{
		bookings:    mocks.NewMockBookingRepo(t),
		settlements: mocks.NewMockSettlementRepo(t),
		ledger:      mocks.NewMockLedgerRepo(t),
		pitches:     mocks.NewMockPitchRepo(t),
		users:       mocks.NewMockUserRepo(t),
		gateway:     mocks.NewMockPaymentGateway(t),
		notifier:    mocks.NewMockNotifier(t),
	}
	policy := domain.CommissionPolicy{Rate: decimal.RequireFromString("0.05"), Cashback: 30}
	f.svc = NewSettlementService(f.bookings, f.settlements, f.ledger, f.pitches, f.users, f.gateway, f.notifier, policy, newTestLogger(t))
	f.svc.now = func() time.Time { return testNow }
	return f
}

func ownerAfterTrial() *domain.User {
	ended := testNow.Add(-24 * time.Hour)
	return &domain.User{ID: "owner1", Role: domain.RoleOwner, TrialEndsAt: &ended}
}

func ownerInTrial() *domain.User {
	ends := testNow.Add(7 * 24 * time.Hour)
	return &domain.User{ID: "owner1", Role: domain.RoleOwner, TrialEndsAt: &ends}
}

func entryFor(entries []*domain.LedgerEntry, account domain.AccountType) *domain.LedgerEntry {
	for _, e := range entries {
		if e.AccountType == account {
			return e
		}
	}
	return nil
}

func TestSettlementService_Settle_SplitsAfterTrial(t *testing.T) {
	f := newSettlementFixture(t)

	player := &domain.User{ID: "u1"}
	owner := ownerAfterTrial()

	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.pitches.EXPECT().GetByID(mock.Anything, "p1").Return(testPitch(), nil)
	f.users.EXPECT().GetByID(mock.Anything, "owner1").Return(owner, nil)
	f.users.EXPECT().GetByID(mock.Anything, "u1").Return(player, nil)

	var stored *domain.Settlement
	f.settlements.EXPECT().Settle(mock.Anything, mock.Anything).
		Run(func(_ context.Context, s *domain.Settlement) { stored = s }).
		Return(nil)
	paid := expectNotify(f.notifier, player, domain.NotifyBookingPaid)
	credited := expectNotify(f.notifier, owner, domain.NotifyPayoutCredited)

	res, err := f.svc.Settle(context.Background(), domain.SettleInput{
		BookingID:      "b1",
		GatewayRef:     "b1",
		ReportedAmount: 25000,
	})

	require.NoError(t, err)
	require.Same(t, stored, res)
	assert.Equal(t, "b1:settlement", res.IdempotencyKey)
	assert.Equal(t, int64(1250), res.Commission)
	assert.Equal(t, int64(23750), res.Payout)
	assert.Equal(t, int64(30), res.Cashback)
	assert.Equal(t, res.Amount, res.Payout+res.Commission)

	require.Len(t, res.Entries, 3)
	ownerEntry := entryFor(res.Entries, domain.AccountOwner)
	require.NotNil(t, ownerEntry)
	assert.Equal(t, int64(23750), ownerEntry.Amount)
	assert.Equal(t, domain.EntryPayout, ownerEntry.Kind)
	assert.Equal(t, "owner1", ownerEntry.AccountID)

	platformEntry := entryFor(res.Entries, domain.AccountPlatform)
	require.NotNil(t, platformEntry)
	assert.Equal(t, int64(1250), platformEntry.Amount)
	assert.Equal(t, domain.EntryCommission, platformEntry.Kind)

	playerEntry := entryFor(res.Entries, domain.AccountPlayer)
	require.NotNil(t, playerEntry)
	assert.Equal(t, int64(30), playerEntry.Amount)
	assert.Equal(t, domain.EntryCashback, playerEntry.Kind)
	assert.Equal(t, "u1", playerEntry.AccountID)

	waitNotify(t, paid)
	waitNotify(t, credited)
}

func TestSettlementService_Settle_DuringTrialPaysOwnerInFull(t *testing.T) {
	f := newSettlementFixture(t)

	owner := ownerInTrial()
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.pitches.EXPECT().GetByID(mock.Anything, "p1").Return(testPitch(), nil)
	f.users.EXPECT().GetByID(mock.Anything, "owner1").Return(owner, nil)
	f.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.settlements.EXPECT().Settle(mock.Anything, mock.Anything).Return(nil)
	paid := expectNotify(f.notifier, mock.Anything, domain.NotifyBookingPaid)
	credited := expectNotify(f.notifier, owner, domain.NotifyPayoutCredited)

	res, err := f.svc.Settle(context.Background(), domain.SettleInput{BookingID: "b1", GatewayRef: "b1", ReportedAmount: 25000})

	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Commission)
	assert.Equal(t, int64(0), res.Cashback)
	assert.Equal(t, int64(25000), res.Payout)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, domain.AccountOwner, res.Entries[0].AccountType)

	waitNotify(t, paid)
	waitNotify(t, credited)
}

func TestSettlementService_Settle_SecondCallbackIsNoop(t *testing.T) {
	f := newSettlementFixture(t)

	paidBooking := pendingBooking()
	paidBooking.Status = domain.BookingStatusPaid
	original := &domain.Settlement{BookingID: "b1", Commission: 1250, Payout: 23750, Cashback: 30}

	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(paidBooking, nil)
	f.settlements.EXPECT().GetSettlement(mock.Anything, "b1").Return(original, nil)

	res, err := f.svc.Settle(context.Background(), domain.SettleInput{BookingID: "b1", GatewayRef: "b1", ReportedAmount: 25000})

	assert.ErrorIs(t, err, domain.ErrAlreadySettled)
	assert.Same(t, original, res)
}

func TestSettlementService_Settle_LostRaceReportsAlreadySettled(t *testing.T) {
	f := newSettlementFixture(t)

	original := &domain.Settlement{BookingID: "b1"}
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.pitches.EXPECT().GetByID(mock.Anything, "p1").Return(testPitch(), nil)
	f.users.EXPECT().GetByID(mock.Anything, "owner1").Return(ownerAfterTrial(), nil)
	f.settlements.EXPECT().Settle(mock.Anything, mock.Anything).Return(domain.ErrAlreadySettled)
	f.settlements.EXPECT().GetSettlement(mock.Anything, "b1").Return(original, nil)

	res, err := f.svc.Settle(context.Background(), domain.SettleInput{BookingID: "b1", GatewayRef: "b1", ReportedAmount: 25000})

	assert.ErrorIs(t, err, domain.ErrAlreadySettled)
	assert.Same(t, original, res)
}

func TestSettlementService_Settle_AmountMismatchFlagged(t *testing.T) {
	f := newSettlementFixture(t)

	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.settlements.EXPECT().FlagForReview(mock.Anything, mock.MatchedBy(func(fl *domain.ReconciliationFlag) bool {
		return fl.BookingID == "b1" && fl.Reason == domain.ReasonAmountMismatch && fl.ReportedAmount == 100
	})).Return(nil)

	_, err := f.svc.Settle(context.Background(), domain.SettleInput{BookingID: "b1", GatewayRef: "b1", ReportedAmount: 100})

	assert.ErrorIs(t, err, domain.ErrAmountMismatch)
}

func TestSettlementService_Settle_ExpiredHoldFlagged(t *testing.T) {
	f := newSettlementFixture(t)

	b := pendingBooking()
	b.ExpiresAt = testNow.Add(-time.Minute)
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	f.settlements.EXPECT().FlagForReview(mock.Anything, mock.MatchedBy(func(fl *domain.ReconciliationFlag) bool {
		return fl.Reason == domain.ReasonExpiredHold
	})).Return(nil)

	_, err := f.svc.Settle(context.Background(), domain.SettleInput{BookingID: "b1", GatewayRef: "b1", ReportedAmount: 25000})

	assert.ErrorIs(t, err, domain.ErrBookingExpired)
}

func TestSettlementService_Settle_ExpiredInsideTransactionFlagged(t *testing.T) {
	f := newSettlementFixture(t)

	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.pitches.EXPECT().GetByID(mock.Anything, "p1").Return(testPitch(), nil)
	f.users.EXPECT().GetByID(mock.Anything, "owner1").Return(ownerAfterTrial(), nil)
	f.settlements.EXPECT().Settle(mock.Anything, mock.Anything).Return(domain.ErrBookingExpired)
	f.settlements.EXPECT().FlagForReview(mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.Settle(context.Background(), domain.SettleInput{BookingID: "b1", GatewayRef: "b1", ReportedAmount: 25000})

	assert.ErrorIs(t, err, domain.ErrBookingExpired)
}

func TestSettlementService_Settle_CancelledFlagged(t *testing.T) {
	f := newSettlementFixture(t)

	b := pendingBooking()
	b.Status = domain.BookingStatusCancelled
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	f.settlements.EXPECT().FlagForReview(mock.Anything, mock.MatchedBy(func(fl *domain.ReconciliationFlag) bool {
		return fl.Reason == domain.ReasonNotPending
	})).Return(nil)

	_, err := f.svc.Settle(context.Background(), domain.SettleInput{BookingID: "b1", GatewayRef: "b1", ReportedAmount: 25000})

	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
}

func TestSettlementService_Settle_FlagFailureSurfaces(t *testing.T) {
	f := newSettlementFixture(t)

	dbErr := errors.New("db down")
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.settlements.EXPECT().FlagForReview(mock.Anything, mock.Anything).Return(dbErr)

	_, err := f.svc.Settle(context.Background(), domain.SettleInput{BookingID: "b1", GatewayRef: "b1", ReportedAmount: 1})

	assert.ErrorIs(t, err, dbErr)
}

func TestSettlementService_Settle_BookingNotFound(t *testing.T) {
	f := newSettlementFixture(t)

	f.bookings.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := f.svc.Settle(context.Background(), domain.SettleInput{BookingID: "missing"})

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestSettlementService_VerifyPayment_Settles(t *testing.T) {
	f := newSettlementFixture(t)

	f.bookings.EXPECT().GetByPaymentRef(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.gateway.EXPECT().Verify(mock.Anything, "b1").Return(&domain.PaymentVerification{
		Reference: "b1",
		Status:    domain.PaymentSuccess,
		Amount:    25000,
	}, nil)
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.pitches.EXPECT().GetByID(mock.Anything, "p1").Return(testPitch(), nil)
	f.users.EXPECT().GetByID(mock.Anything, "owner1").Return(ownerAfterTrial(), nil)
	f.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.settlements.EXPECT().Settle(mock.Anything, mock.Anything).Return(nil)
	paid := expectNotify(f.notifier, mock.Anything, domain.NotifyBookingPaid)
	credited := expectNotify(f.notifier, mock.Anything, domain.NotifyPayoutCredited)

	res, err := f.svc.VerifyPayment(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPaid, res.BookingStatus)
	assert.Equal(t, domain.PaymentSuccess, res.PaymentStatus)

	waitNotify(t, paid)
	waitNotify(t, credited)
}

func TestSettlementService_VerifyPayment_AlreadyPaid(t *testing.T) {
	f := newSettlementFixture(t)

	b := pendingBooking()
	b.Status = domain.BookingStatusPaid
	f.bookings.EXPECT().GetByPaymentRef(mock.Anything, "b1").Return(b, nil)

	res, err := f.svc.VerifyPayment(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPaid, res.BookingStatus)
}

func TestSettlementService_VerifyPayment_NotSuccessful(t *testing.T) {
	f := newSettlementFixture(t)

	f.bookings.EXPECT().GetByPaymentRef(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.gateway.EXPECT().Verify(mock.Anything, "b1").Return(&domain.PaymentVerification{
		Reference: "b1",
		Status:    domain.PaymentAbandoned,
	}, nil)

	res, err := f.svc.VerifyPayment(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, res.BookingStatus)
	assert.Equal(t, domain.PaymentAbandoned, res.PaymentStatus)
}

func TestSettlementService_VerifyPayment_Mismatch(t *testing.T) {
	f := newSettlementFixture(t)

	f.bookings.EXPECT().GetByPaymentRef(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.gateway.EXPECT().Verify(mock.Anything, "b1").Return(&domain.PaymentVerification{
		Reference: "b1",
		Status:    domain.PaymentSuccess,
		Amount:    20000,
	}, nil)
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.settlements.EXPECT().FlagForReview(mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.VerifyPayment(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrAmountMismatch)
}

func TestSettlementService_HandleWebhook_BadSignature(t *testing.T) {
	f := newSettlementFixture(t)

	f.gateway.EXPECT().ParseWebhook([]byte(`{}`), "forged").Return(nil, domain.ErrWebhookSignatureInvalid)

	err := f.svc.HandleWebhook(context.Background(), []byte(`{}`), "forged")

	assert.ErrorIs(t, err, domain.ErrWebhookSignatureInvalid)
}

func TestSettlementService_HandleWebhook_IgnoresOtherEvents(t *testing.T) {
	f := newSettlementFixture(t)

	f.gateway.EXPECT().ParseWebhook(mock.Anything, "sig").Return(&domain.PaymentEvent{
		Event:     "transfer.success",
		Reference: "b1",
		Status:    domain.PaymentSuccess,
	}, nil)

	err := f.svc.HandleWebhook(context.Background(), []byte(`{}`), "sig")

	assert.NoError(t, err)
}

func TestSettlementService_HandleWebhook_UnknownReference(t *testing.T) {
	f := newSettlementFixture(t)

	f.gateway.EXPECT().ParseWebhook(mock.Anything, "sig").Return(&domain.PaymentEvent{
		Event:     "charge.success",
		Reference: "nope",
		Status:    domain.PaymentSuccess,
		Amount:    25000,
	}, nil)
	f.bookings.EXPECT().GetByPaymentRef(mock.Anything, "nope").Return(nil, domain.ErrBookingNotFound)

	err := f.svc.HandleWebhook(context.Background(), []byte(`{}`), "sig")

	assert.NoError(t, err)
}

func TestSettlementService_HandleWebhook_DuplicateDelivery(t *testing.T) {
	f := newSettlementFixture(t)

	paidBooking := pendingBooking()
	paidBooking.Status = domain.BookingStatusPaid

	f.gateway.EXPECT().ParseWebhook(mock.Anything, "sig").Return(&domain.PaymentEvent{
		Event:     "charge.success",
		Reference: "b1",
		Status:    domain.PaymentSuccess,
		Amount:    25000,
	}, nil)
	f.bookings.EXPECT().GetByPaymentRef(mock.Anything, "b1").Return(paidBooking, nil)
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(paidBooking, nil)
	f.settlements.EXPECT().GetSettlement(mock.Anything, "b1").Return(&domain.Settlement{BookingID: "b1"}, nil)

	err := f.svc.HandleWebhook(context.Background(), []byte(`{}`), "sig")

	assert.NoError(t, err)
}

func TestSettlementService_HandleWebhook_TransientErrorRetried(t *testing.T) {
	f := newSettlementFixture(t)

	dbErr := errors.New("connection reset")
	f.gateway.EXPECT().ParseWebhook(mock.Anything, "sig").Return(&domain.PaymentEvent{
		Event:     "charge.success",
		Reference: "b1",
		Status:    domain.PaymentSuccess,
		Amount:    25000,
	}, nil)
	f.bookings.EXPECT().GetByPaymentRef(mock.Anything, "b1").Return(nil, dbErr)

	err := f.svc.HandleWebhook(context.Background(), []byte(`{}`), "sig")

	assert.ErrorIs(t, err, dbErr)
}

func TestSettlementService_Refund_ReversesEntries(t *testing.T) {
	f := newSettlementFixture(t)

	paidBooking := pendingBooking()
	paidBooking.Status = domain.BookingStatusPaid
	refunded := pendingBooking()
	refunded.Status = domain.BookingStatusCancelled
	player := &domain.User{ID: "u1"}

	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(paidBooking, nil)
	f.ledger.EXPECT().ListByBooking(mock.Anything, "b1").Return([]*domain.LedgerEntry{
		{BookingID: "b1", AccountType: domain.AccountOwner, AccountID: "owner1", Amount: 23750, Kind: domain.EntryPayout},
		{BookingID: "b1", AccountType: domain.AccountPlatform, AccountID: domain.PlatformAccountID, Amount: 1250, Kind: domain.EntryCommission},
		{BookingID: "b1", AccountType: domain.AccountPlayer, AccountID: "u1", Amount: 30, Kind: domain.EntryCashback},
	}, nil)

	var reversals []*domain.LedgerEntry
	f.settlements.EXPECT().Refund(mock.Anything, "b1", mock.Anything).
		Run(func(_ context.Context, _ string, r []*domain.LedgerEntry) { reversals = r }).
		Return(refunded, nil)
	f.users.EXPECT().GetByID(mock.Anything, "u1").Return(player, nil)
	f.pitches.EXPECT().GetByID(mock.Anything, "p1").Return(testPitch(), nil)
	notified := expectNotify(f.notifier, player, domain.NotifyBookingRefunded)

	res, err := f.svc.Refund(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, res.Status)
	require.Len(t, reversals, 3)

	var total int64
	for _, r := range reversals {
		assert.Equal(t, domain.EntryReversal, r.Kind)
		assert.Equal(t, "b1:refund", r.IdempotencyKey)
		total += r.Amount
	}
	assert.Equal(t, int64(-25030), total)

	waitNotify(t, notified)
}

func TestSettlementService_Refund_PendingRejected(t *testing.T) {
	f := newSettlementFixture(t)

	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)

	_, err := f.svc.Refund(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSettlementService_Refund_CancelledBeforePaymentRejected(t *testing.T) {
	f := newSettlementFixture(t)

	cancelled := pendingBooking()
	cancelled.Status = domain.BookingStatusCancelled
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(cancelled, nil)

	_, err := f.svc.Refund(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSettlementService_Refund_ReplayOnRefundedBooking(t *testing.T) {
	f := newSettlementFixture(t)

	paidAt := testNow.Add(-time.Hour)
	refunded := pendingBooking()
	refunded.Status = domain.BookingStatusCancelled
	refunded.PaidAt = &paidAt

	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(refunded, nil)
	f.ledger.EXPECT().ListByBooking(mock.Anything, "b1").Return([]*domain.LedgerEntry{
		{BookingID: "b1", AccountType: domain.AccountOwner, AccountID: "owner1", Amount: 23750, Kind: domain.EntryPayout},
		{BookingID: "b1", AccountType: domain.AccountOwner, AccountID: "owner1", Amount: -23750, Kind: domain.EntryReversal},
	}, nil)

	var reversals []*domain.LedgerEntry
	f.settlements.EXPECT().Refund(mock.Anything, "b1", mock.Anything).
		Run(func(_ context.Context, _ string, r []*domain.LedgerEntry) { reversals = r }).
		Return(refunded, nil)

	res, err := f.svc.Refund(context.Background(), "b1")

	require.NoError(t, err)
	assert.Same(t, refunded, res)
	require.Len(t, reversals, 1)
	assert.Equal(t, int64(-23750), reversals[0].Amount)
}
