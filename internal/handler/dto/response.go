package dto

import (
	"time"

	"github.com/stpnv0/PitchBooker/internal/domain"
)

type ReserveResponse struct {
	BookingID   string `json:"booking_id"`
	Status      string `json:"status"`
	ExpiresAt   string `json:"expires_at"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	PaymentLink string `json:"payment_link"`
}

type BookingResponse struct {
	ID          string   `json:"id"`
	PitchID     string   `json:"pitch_id"`
	PlayerID    string   `json:"player_id"`
	Date        string   `json:"date"`
	Slots       []string `json:"slots"`
	Amount      int64    `json:"amount"`
	Currency    string   `json:"currency"`
	Status      string   `json:"status"`
	PaymentRef  string   `json:"payment_ref,omitempty"`
	PaymentLink string   `json:"payment_link,omitempty"`
	ExpiresAt   string   `json:"expires_at"`
	CreatedAt   string   `json:"created_at"`
}

type PitchResponse struct {
	ID                  string `json:"id"`
	OwnerID             string `json:"owner_id"`
	Name                string `json:"name"`
	Location            string `json:"location"`
	HourlyPrice         int64  `json:"hourly_price"`
	SlotIntervalMinutes int    `json:"slot_interval_minutes"`
	OpensAt             string `json:"opens_at"`
	ClosesAt            string `json:"closes_at"`
	Status              string `json:"status"`
	CreatedAt           string `json:"created_at"`
}

type AvailabilityResponse struct {
	PitchID   string   `json:"pitch_id"`
	Date      string   `json:"date"`
	Available []string `json:"available"`
	SlotPrice int64    `json:"slot_price"`
}

type UserResponse struct {
	ID             string  `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	TelegramChatID *int64  `json:"telegram_chat_id,omitempty"`
	TrialEndsAt    *string `json:"trial_ends_at,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

type VerifyResponse struct {
	BookingID     string `json:"booking_id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

type LedgerEntryResponse struct {
	ID          string `json:"id"`
	AccountType string `json:"account_type"`
	AccountID   string `json:"account_id"`
	Amount      int64  `json:"amount"`
	Kind        string `json:"kind"`
	CreatedAt   string `json:"created_at"`
}

type BalanceResponse struct {
	AccountType string `json:"account_type"`
	AccountID   string `json:"account_id"`
	Balance     int64  `json:"balance"`
}

type RevenueResponse struct {
	Commission      int64 `json:"commission"`
	Payouts         int64 `json:"payouts"`
	Cashback        int64 `json:"cashback"`
	Reversals       int64 `json:"reversals"`
	SettledBookings int   `json:"settled_bookings"`
}

type ReconciliationFlagResponse struct {
	ID             string `json:"id"`
	BookingID      string `json:"booking_id"`
	GatewayRef     string `json:"gateway_ref"`
	Reason         string `json:"reason"`
	ReportedAmount int64  `json:"reported_amount"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToReserveResponse(b *domain.Booking) ReserveResponse {
	return ReserveResponse{
		BookingID:   b.ID,
		Status:      string(b.Status),
		ExpiresAt:   b.ExpiresAt.Format(time.RFC3339),
		Amount:      b.Amount,
		Currency:    b.Currency,
		PaymentLink: b.PaymentLink,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:          b.ID,
		PitchID:     b.PitchID,
		PlayerID:    b.PlayerID,
		Date:        b.Date.String(),
		Slots:       slotStrings(b.Slots),
		Amount:      b.Amount,
		Currency:    b.Currency,
		Status:      string(b.Status),
		PaymentLink: b.PaymentLink,
		ExpiresAt:   b.ExpiresAt.Format(time.RFC3339),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
	if b.PaymentRef != nil {
		resp.PaymentRef = *b.PaymentRef
	}
	return resp
}

func ToPitchResponse(p *domain.Pitch) PitchResponse {
	return PitchResponse{
		ID:                  p.ID,
		OwnerID:             p.OwnerID,
		Name:                p.Name,
		Location:            p.Location,
		HourlyPrice:         p.HourlyPrice,
		SlotIntervalMinutes: p.SlotInterval,
		OpensAt:             domain.SlotTime(p.OpensAt).String(),
		ClosesAt:            domain.SlotTime(p.ClosesAt).String(),
		Status:              string(p.Status),
		CreatedAt:           p.CreatedAt.Format(time.RFC3339),
	}
}

func ToAvailabilityResponse(a *domain.PitchAvailability) AvailabilityResponse {
	return AvailabilityResponse{
		PitchID:   a.PitchID,
		Date:      a.Date.String(),
		Available: slotStrings(a.Available),
		SlotPrice: a.SlotPrice,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	resp := UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Role:           string(u.Role),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
	if u.TrialEndsAt != nil {
		trial := u.TrialEndsAt.Format(time.RFC3339)
		resp.TrialEndsAt = &trial
	}
	return resp
}

func ToVerifyResponse(r *domain.VerifyResult) VerifyResponse {
	return VerifyResponse{
		BookingID:     r.BookingID,
		Status:        string(r.BookingStatus),
		PaymentStatus: string(r.PaymentStatus),
	}
}

func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:          e.ID,
		AccountType: string(e.AccountType),
		AccountID:   e.AccountID,
		Amount:      e.Amount,
		Kind:        string(e.Kind),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToBalanceResponse(b *domain.Balance) BalanceResponse {
	return BalanceResponse{
		AccountType: string(b.AccountType),
		AccountID:   b.AccountID,
		Balance:     b.Amount,
	}
}

func ToRevenueResponse(s *domain.RevenueSummary) RevenueResponse {
	return RevenueResponse{
		Commission:      s.Commission,
		Payouts:         s.Payouts,
		Cashback:        s.Cashback,
		Reversals:       s.Reversals,
		SettledBookings: s.Settled,
	}
}

func ToReconciliationFlagResponse(f *domain.ReconciliationFlag) ReconciliationFlagResponse {
	return ReconciliationFlagResponse{
		ID:             f.ID,
		BookingID:      f.BookingID,
		GatewayRef:     f.GatewayRef,
		Reason:         string(f.Reason),
		ReportedAmount: f.ReportedAmount,
		CreatedAt:      f.CreatedAt.Format(time.RFC3339),
	}
}

func slotStrings(slots []domain.SlotTime) []string {
	res := make([]string, 0, len(slots))
	for _, s := range slots {
		res = append(res, s.String())
	}
	return res
}
