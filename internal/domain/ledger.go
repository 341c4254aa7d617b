package domain

import "time"

type AccountType string

const (
	AccountOwner    AccountType = "owner"
	AccountPlatform AccountType = "platform"
	AccountPlayer   AccountType = "player"
)

// PlatformAccountID is the single account that collects commission.
const PlatformAccountID = "platform"

type EntryKind string

const (
	EntryPayout     EntryKind = "payout"
	EntryCommission EntryKind = "commission"
	EntryCashback   EntryKind = "cashback"
	EntryReversal   EntryKind = "reversal"
)

// LedgerEntry is an immutable record of one fund movement tied to one booking.
type LedgerEntry struct {
	ID             string      `json:"id"`
	BookingID      string      `json:"booking_id"`
	AccountType    AccountType `json:"account_type"`
	AccountID      string      `json:"account_id"`
	Amount         int64       `json:"amount"`
	Kind           EntryKind   `json:"kind"`
	IdempotencyKey string      `json:"idempotency_key"`
	CreatedAt      time.Time   `json:"created_at"`
}

type Balance struct {
	AccountType AccountType `json:"account_type"`
	AccountID   string      `json:"account_id"`
	Amount      int64       `json:"amount"`
}

type RevenueSummary struct {
	Commission int64 `json:"commission"`
	Payouts    int64 `json:"payouts"`
	Cashback   int64 `json:"cashback"`
	Reversals  int64 `json:"reversals"`
	Settled    int   `json:"settled_bookings"`
}

func SettlementKey(bookingID string) string {
	return bookingID + ":settlement"
}

func RefundKey(bookingID string) string {
	return bookingID + ":refund"
}

// Settlement is the exactly-once outcome of a confirmed payment.
type Settlement struct {
	BookingID      string         `json:"booking_id"`
	IdempotencyKey string         `json:"idempotency_key"`
	GatewayRef     string         `json:"gateway_ref"`
	Amount         int64          `json:"amount"`
	Commission     int64          `json:"commission"`
	Payout         int64          `json:"payout"`
	Cashback       int64          `json:"cashback"`
	SettledAt      time.Time      `json:"settled_at"`
	Entries        []*LedgerEntry `json:"entries"`
}

type SettleInput struct {
	BookingID      string
	GatewayRef     string
	ReportedAmount int64
}

type ReconciliationReason string

const (
	ReasonAmountMismatch ReconciliationReason = "amount_mismatch"
	ReasonExpiredHold    ReconciliationReason = "expired_hold"
	ReasonNotPending     ReconciliationReason = "not_pending"
)

// ReconciliationFlag marks a payment callback that needs a human to look at it.
type ReconciliationFlag struct {
	ID             string               `json:"id"`
	BookingID      string               `json:"booking_id"`
	GatewayRef     string               `json:"gateway_ref"`
	Reason         ReconciliationReason `json:"reason"`
	ReportedAmount int64                `json:"reported_amount"`
	CreatedAt      time.Time            `json:"created_at"`
}
