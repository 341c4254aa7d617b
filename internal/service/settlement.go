package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const eventChargeSuccess = "charge.success"

type SettlementService struct {
	bookingRepo    ports.BookingRepo
	settlementRepo ports.SettlementRepo
	ledgerRepo     ports.LedgerRepo
	pitchRepo      ports.PitchRepo
	userRepo       ports.UserRepo
	gateway        ports.PaymentGateway
	notifier       ports.Notifier
	policy         domain.CommissionPolicy
	logger         logger.Logger
	now            func() time.Time
}

func NewSettlementService(
	bookingRepo ports.BookingRepo,
	settlementRepo ports.SettlementRepo,
	ledgerRepo ports.LedgerRepo,
	pitchRepo ports.PitchRepo,
	userRepo ports.UserRepo,
	gateway ports.PaymentGateway,
	notifier ports.Notifier,
	policy domain.CommissionPolicy,
	logger logger.Logger,
) *SettlementService {
	return &SettlementService{
		bookingRepo:    bookingRepo,
		settlementRepo: settlementRepo,
		ledgerRepo:     ledgerRepo,
		pitchRepo:      pitchRepo,
		userRepo:       userRepo,
		gateway:        gateway,
		notifier:       notifier,
		policy:         policy,
		logger:         logger,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Settle turns a confirmed payment into a paid booking and its ledger entries, exactly once.
// A repeated call returns the original settlement together with domain.ErrAlreadySettled.
func (s *SettlementService) Settle(ctx context.Context, in domain.SettleInput) (*domain.Settlement, error) {
	booking, err := s.bookingRepo.GetByID(ctx, in.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	switch {
	case booking.Status == domain.BookingStatusPaid:
		return s.duplicate(ctx, in)
	case !domain.CanTransition(booking.Status, domain.EventPay):
		return nil, s.reject(ctx, in, domain.ReasonNotPending, domain.ErrBookingNotPending)
	case in.ReportedAmount != booking.Amount:
		return nil, s.reject(ctx, in, domain.ReasonAmountMismatch, domain.ErrAmountMismatch)
	}

	now := s.now()
	if !booking.HoldActive(now) {
		return nil, s.reject(ctx, in, domain.ReasonExpiredHold, domain.ErrBookingExpired)
	}

	pitch, err := s.pitchRepo.GetByID(ctx, booking.PitchID)
	if err != nil {
		return nil, fmt.Errorf("get pitch: %w", err)
	}
	owner, err := s.userRepo.GetByID(ctx, pitch.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("get owner: %w", err)
	}

	split := s.policy.Split(owner.TrialEndsAt, now, booking.Amount)
	settlement := &domain.Settlement{
		BookingID:      booking.ID,
		IdempotencyKey: domain.SettlementKey(booking.ID),
		GatewayRef:     in.GatewayRef,
		Amount:         booking.Amount,
		Commission:     split.Commission,
		Payout:         split.Payout,
		Cashback:       split.Cashback,
		SettledAt:      now,
		Entries:        settlementEntries(booking, owner.ID, split, now),
	}

	err = s.settlementRepo.Settle(ctx, settlement)
	switch {
	case errors.Is(err, domain.ErrAlreadySettled):
		return s.duplicate(ctx, in)
	case errors.Is(err, domain.ErrBookingExpired):
		return nil, s.reject(ctx, in, domain.ReasonExpiredHold, err)
	case errors.Is(err, domain.ErrBookingNotPending):
		return nil, s.reject(ctx, in, domain.ReasonNotPending, err)
	case err != nil:
		return nil, fmt.Errorf("settle booking: %w", err)
	}

	s.logger.Info("booking settled",
		logger.String("booking_id", booking.ID),
		logger.String("gateway_ref", in.GatewayRef),
		logger.Int64("amount", settlement.Amount),
		logger.Int64("commission", settlement.Commission),
		logger.Int64("payout", settlement.Payout),
		logger.Int64("cashback", settlement.Cashback),
	)

	go s.notifySettled(context.WithoutCancel(ctx), booking, pitch, owner, settlement)

	return settlement, nil
}

func (s *SettlementService) duplicate(ctx context.Context, in domain.SettleInput) (*domain.Settlement, error) {
	s.logger.Info("duplicate settlement callback",
		logger.String("booking_id", in.BookingID),
		logger.String("gateway_ref", in.GatewayRef),
	)

	existing, err := s.settlementRepo.GetSettlement(ctx, in.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get settlement: %w", err)
	}
	return existing, domain.ErrAlreadySettled
}

// reject records the callback for manual reconciliation and returns cause.
func (s *SettlementService) reject(ctx context.Context, in domain.SettleInput, reason domain.ReconciliationReason, cause error) error {
	s.logger.Warn("settlement rejected, flagged for review",
		logger.String("booking_id", in.BookingID),
		logger.String("gateway_ref", in.GatewayRef),
		logger.String("reason", string(reason)),
		logger.Int64("reported_amount", in.ReportedAmount),
	)

	flag := &domain.ReconciliationFlag{
		ID:             uuid.New().String(),
		BookingID:      in.BookingID,
		GatewayRef:     in.GatewayRef,
		Reason:         reason,
		ReportedAmount: in.ReportedAmount,
		CreatedAt:      s.now(),
	}
	if err := s.settlementRepo.FlagForReview(ctx, flag); err != nil {
		return fmt.Errorf("flag for review: %w", err)
	}

	return cause
}

// VerifyPayment is the client-initiated path: it asks the gateway about the reference and settles on success.
func (s *SettlementService) VerifyPayment(ctx context.Context, reference string) (*domain.VerifyResult, error) {
	booking, err := s.bookingRepo.GetByPaymentRef(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.Status == domain.BookingStatusPaid {
		return &domain.VerifyResult{
			BookingID:     booking.ID,
			BookingStatus: booking.Status,
			PaymentStatus: domain.PaymentSuccess,
		}, nil
	}

	v, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("verify payment: %w", err)
	}

	if v.Status != domain.PaymentSuccess {
		return &domain.VerifyResult{
			BookingID:     booking.ID,
			BookingStatus: booking.Status,
			PaymentStatus: v.Status,
		}, nil
	}

	_, err = s.Settle(ctx, domain.SettleInput{
		BookingID:      booking.ID,
		GatewayRef:     reference,
		ReportedAmount: v.Amount,
	})
	if err != nil && !errors.Is(err, domain.ErrAlreadySettled) {
		return nil, err
	}

	return &domain.VerifyResult{
		BookingID:     booking.ID,
		BookingStatus: domain.BookingStatusPaid,
		PaymentStatus: v.Status,
	}, nil
}

// HandleWebhook is the gateway-initiated path. It returns an error only when the gateway should retry
// or, for domain.ErrWebhookSignatureInvalid, when the request must be rejected.
func (s *SettlementService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	ev, err := s.gateway.ParseWebhook(payload, signature)
	if err != nil {
		if errors.Is(err, domain.ErrWebhookSignatureInvalid) {
			s.logger.Warn("security: webhook signature rejected",
				logger.Int("payload_bytes", len(payload)),
			)
			return err
		}
		s.logger.Warn("malformed webhook ignored",
			logger.String("error", err.Error()),
		)
		return nil
	}

	if ev.Event != eventChargeSuccess || ev.Status != domain.PaymentSuccess {
		s.logger.Debug("webhook event ignored",
			logger.String("event", ev.Event),
			logger.String("reference", ev.Reference),
		)
		return nil
	}

	booking, err := s.bookingRepo.GetByPaymentRef(ctx, ev.Reference)
	if errors.Is(err, domain.ErrBookingNotFound) {
		s.logger.Warn("webhook for unknown reference",
			logger.String("reference", ev.Reference),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	_, err = s.Settle(ctx, domain.SettleInput{
		BookingID:      booking.ID,
		GatewayRef:     ev.Reference,
		ReportedAmount: ev.Amount,
	})
	switch {
	case err == nil,
		errors.Is(err, domain.ErrAlreadySettled),
		errors.Is(err, domain.ErrAmountMismatch),
		errors.Is(err, domain.ErrBookingExpired),
		errors.Is(err, domain.ErrBookingNotPending):
		return nil
	default:
		return err
	}
}

// Refund moves a paid booking to cancelled and appends entries reversing its settlement.
func (s *SettlementService) Refund(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	// Повторный возврат допустим только для брони, которая была оплачена
	if !booking.Refunded() {
		if _, err = domain.Transition(booking.Status, domain.EventRefund); err != nil {
			return nil, err
		}
	}

	entries, err := s.ledgerRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}

	now := s.now()
	reversals := make([]*domain.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if e.Kind == domain.EntryReversal {
			continue
		}
		reversals = append(reversals, &domain.LedgerEntry{
			ID:             uuid.New().String(),
			BookingID:      bookingID,
			AccountType:    e.AccountType,
			AccountID:      e.AccountID,
			Amount:         -e.Amount,
			Kind:           domain.EntryReversal,
			IdempotencyKey: domain.RefundKey(bookingID),
			CreatedAt:      now,
		})
	}

	refunded, err := s.settlementRepo.Refund(ctx, bookingID, reversals)
	if err != nil {
		return nil, fmt.Errorf("refund booking: %w", err)
	}

	s.logger.Info("booking refunded",
		logger.String("booking_id", bookingID),
		logger.Int("reversals", len(reversals)),
	)

	if booking.Status == domain.BookingStatusPaid {
		go s.notifyPlayer(context.WithoutCancel(ctx), refunded, domain.NotifyBookingRefunded)
	}

	return refunded, nil
}

func (s *SettlementService) ListFlags(ctx context.Context, since time.Time) ([]*domain.ReconciliationFlag, error) {
	return s.settlementRepo.ListFlags(ctx, since)
}

func (s *SettlementService) notifySettled(ctx context.Context, b *domain.Booking, p *domain.Pitch, owner *domain.User, st *domain.Settlement) {
	player, err := s.userRepo.GetByID(ctx, b.PlayerID)
	if err != nil {
		s.logger.Error("failed to get player for notification",
			logger.String("user_id", b.PlayerID),
		)
	} else {
		data := bookingData(b, p)
		data["cashback"] = strconv.FormatInt(st.Cashback, 10)
		s.notifier.Notify(ctx, player, domain.NotifyBookingPaid, data)
	}

	data := bookingData(b, p)
	data["payout"] = strconv.FormatInt(st.Payout, 10)
	data["commission"] = strconv.FormatInt(st.Commission, 10)
	s.notifier.Notify(ctx, owner, domain.NotifyPayoutCredited, data)
}

func (s *SettlementService) notifyPlayer(ctx context.Context, b *domain.Booking, kind domain.NotificationKind) {
	player, err := s.userRepo.GetByID(ctx, b.PlayerID)
	if err != nil {
		s.logger.Error("failed to get player for notification",
			logger.String("user_id", b.PlayerID),
		)
		return
	}
	pitch, err := s.pitchRepo.GetByID(ctx, b.PitchID)
	if err != nil {
		s.logger.Error("failed to get pitch for notification",
			logger.String("pitch_id", b.PitchID),
		)
		return
	}
	s.notifier.Notify(ctx, player, kind, bookingData(b, pitch))
}

func settlementEntries(b *domain.Booking, ownerID string, split domain.Split, now time.Time) []*domain.LedgerEntry {
	key := domain.SettlementKey(b.ID)
	entries := []*domain.LedgerEntry{{
		ID:             uuid.New().String(),
		BookingID:      b.ID,
		AccountType:    domain.AccountOwner,
		AccountID:      ownerID,
		Amount:         split.Payout,
		Kind:           domain.EntryPayout,
		IdempotencyKey: key,
		CreatedAt:      now,
	}}

	if split.Commission > 0 {
		entries = append(entries, &domain.LedgerEntry{
			ID:             uuid.New().String(),
			BookingID:      b.ID,
			AccountType:    domain.AccountPlatform,
			AccountID:      domain.PlatformAccountID,
			Amount:         split.Commission,
			Kind:           domain.EntryCommission,
			IdempotencyKey: key,
			CreatedAt:      now,
		})
	}

	if split.Cashback > 0 {
		entries = append(entries, &domain.LedgerEntry{
			ID:             uuid.New().String(),
			BookingID:      b.ID,
			AccountType:    domain.AccountPlayer,
			AccountID:      b.PlayerID,
			Amount:         split.Cashback,
			Kind:           domain.EntryCashback,
			IdempotencyKey: key,
			CreatedAt:      now,
		})
	}

	return entries
}
