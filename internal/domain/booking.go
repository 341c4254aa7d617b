package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusExpired   BookingStatus = "expired"
)

// BookingEvent is something that happens to a booking and may move it to another status.
type BookingEvent string

const (
	EventPay    BookingEvent = "pay"
	EventExpire BookingEvent = "expire"
	EventCancel BookingEvent = "cancel"
	EventRefund BookingEvent = "refund"
)

// transitions lists every legal lifecycle move. Nothing ever moves back into pending.
var transitions = map[BookingStatus]map[BookingEvent]BookingStatus{
	BookingStatusPending: {
		EventPay:    BookingStatusPaid,
		EventExpire: BookingStatusExpired,
		EventCancel: BookingStatusCancelled,
	},
	BookingStatusPaid: {
		EventRefund: BookingStatusCancelled,
	},
}

// Transition returns the status a booking in from moves to on ev.
func Transition(from BookingStatus, ev BookingEvent) (BookingStatus, error) {
	to, ok := transitions[from][ev]
	if !ok {
		return from, fmt.Errorf("%w: cannot %s a %s booking", ErrInvalidTransition, ev, from)
	}
	return to, nil
}

// CanTransition reports whether ev is legal for a booking in from.
func CanTransition(from BookingStatus, ev BookingEvent) bool {
	_, ok := transitions[from][ev]
	return ok
}

type Booking struct {
	ID          string        `json:"id"`
	PitchID     string        `json:"pitch_id"`
	PlayerID    string        `json:"player_id"`
	Date        Date          `json:"date"`
	Slots       []SlotTime    `json:"slots"`
	Amount      int64         `json:"amount"`
	Currency    string        `json:"currency"`
	Status      BookingStatus `json:"status"`
	PaymentRef  *string       `json:"payment_ref,omitempty"`
	PaymentLink string        `json:"payment_link,omitempty"`
	ExpiresAt   time.Time     `json:"expires_at"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	PaidAt      *time.Time    `json:"paid_at,omitempty"`
}

// HoldActive reports whether a pending booking still occupies its slots at the given instant.
func (b *Booking) HoldActive(now time.Time) bool {
	return b.Status == BookingStatusPending && now.Before(b.ExpiresAt)
}

// OccupiesSlots reports whether the booking excludes its slots from availability.
func (b *Booking) OccupiesSlots(now time.Time) bool {
	return b.Status == BookingStatusPaid || b.HoldActive(now)
}

// Refunded reports whether the booking was paid and then cancelled.
func (b *Booking) Refunded() bool {
	return b.Status == BookingStatusCancelled && b.PaidAt != nil
}

type ReserveInput struct {
	PitchID  string
	PlayerID string
	Date     Date
	Slots    []SlotTime
}
