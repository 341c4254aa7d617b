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

type BookingConfig struct {
	HoldWindow  time.Duration
	Currency    string
	CallbackURL string
	// Location is the zone pitch opening hours and slot times are written in. Defaults to UTC.
	Location *time.Location
}

type BookingService struct {
	bookingRepo ports.BookingRepo
	pitchRepo   ports.PitchRepo
	userRepo    ports.UserRepo
	gateway     ports.PaymentGateway
	notifier    ports.Notifier
	cfg         BookingConfig
	logger      logger.Logger
	now         func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	pitchRepo ports.PitchRepo,
	userRepo ports.UserRepo,
	gateway ports.PaymentGateway,
	notifier ports.Notifier,
	cfg BookingConfig,
	logger logger.Logger,
) *BookingService {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &BookingService{
		bookingRepo: bookingRepo,
		pitchRepo:   pitchRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		notifier:    notifier,
		cfg:         cfg,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Reserve places a pending hold on every requested slot or on none of them.
func (s *BookingService) Reserve(ctx context.Context, input domain.ReserveInput) (*domain.Booking, error) {
	pitch, err := s.pitchRepo.GetByID(ctx, input.PitchID)
	if err != nil {
		return nil, fmt.Errorf("check pitch: %w", err)
	}
	if pitch.Status != domain.PitchStatusActive {
		return nil, domain.ErrPitchInactive
	}

	player, err := s.userRepo.GetByID(ctx, input.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("check player: %w", err)
	}

	slots, err := domain.ValidateSlots(pitch, input.Slots)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for _, slot := range slots {
		if slotStarted(input.Date, slot, now, s.cfg.Location) {
			return nil, fmt.Errorf("%w: slot %s on %s has already started", domain.ErrValidation, slot, input.Date)
		}
	}

	booking := &domain.Booking{
		ID:        uuid.New().String(),
		PitchID:   pitch.ID,
		PlayerID:  player.ID,
		Date:      input.Date,
		Slots:     slots,
		Amount:    pitch.SlotPrice() * int64(len(slots)),
		Currency:  s.cfg.Currency,
		Status:    domain.BookingStatusPending,
		ExpiresAt: now.Add(s.cfg.HoldWindow),
		CreatedAt: now,
		UpdatedAt: now,
	}

	released, err := s.bookingRepo.Reserve(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("reserve slots: %w", err)
	}

	s.logger.Info("booking reserved",
		logger.String("booking_id", booking.ID),
		logger.String("pitch_id", pitch.ID),
		logger.String("player_id", player.ID),
		logger.String("date", booking.Date.String()),
		logger.Int("slots", len(slots)),
		logger.Int64("amount", booking.Amount),
	)

	if len(released) > 0 {
		s.logger.Info("stale holds released on reserve",
			logger.Int("count", len(released)),
		)
		go s.notifyStatus(context.WithoutCancel(ctx), released, domain.NotifyBookingExpired)
	}

	go s.notifier.Notify(context.WithoutCancel(ctx), player, domain.NotifyBookingReserved, bookingData(booking, pitch))

	return booking, nil
}

// Checkout opens a gateway charge for a pending booking. No lock is held while the gateway is called;
// if the call fails the booking simply stays pending until its hold expires.
func (s *BookingService) Checkout(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if !domain.CanTransition(booking.Status, domain.EventPay) {
		return nil, domain.ErrBookingNotPending
	}
	if !booking.HoldActive(s.now()) {
		return nil, domain.ErrBookingExpired
	}
	if booking.PaymentRef != nil && booking.PaymentLink != "" {
		return booking, nil
	}

	player, err := s.userRepo.GetByID(ctx, booking.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}

	charge, err := s.gateway.InitializeCharge(ctx, domain.ChargeRequest{
		Amount:      booking.Amount,
		Currency:    booking.Currency,
		Reference:   booking.ID,
		Email:       player.Email,
		RedirectURL: s.cfg.CallbackURL,
		BookingID:   booking.ID,
	})
	if err != nil {
		s.logger.Warn("charge initialization failed, booking stays pending",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("initialize charge: %w", err)
	}

	if err = s.bookingRepo.SetPaymentRef(ctx, booking.ID, charge.Reference, charge.PaymentLink); err != nil {
		return nil, fmt.Errorf("store payment reference: %w", err)
	}

	booking.PaymentRef = &charge.Reference
	booking.PaymentLink = charge.PaymentLink

	return booking, nil
}

// Cancel releases a pending booking. Cancelling an already cancelled booking is a no-op.
func (s *BookingService) Cancel(ctx context.Context, bookingID, actorID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if err = s.authorizeCancel(ctx, booking, actorID); err != nil {
		return nil, err
	}

	if booking.Status == domain.BookingStatusCancelled {
		return booking, nil
	}
	if !domain.CanTransition(booking.Status, domain.EventCancel) {
		return nil, domain.ErrBookingNotPending
	}

	cancelled, err := s.bookingRepo.Cancel(ctx, bookingID)
	if errors.Is(err, domain.ErrBookingNotPending) {
		current, getErr := s.bookingRepo.GetByID(ctx, bookingID)
		if getErr == nil && current.Status == domain.BookingStatusCancelled {
			return current, nil
		}
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("actor_id", actorID),
	)

	go s.notifyStatus(context.WithoutCancel(ctx), []*domain.Booking{cancelled}, domain.NotifyBookingCancelled)

	return cancelled, nil
}

func (s *BookingService) authorizeCancel(ctx context.Context, booking *domain.Booking, actorID string) error {
	if booking.PlayerID == actorID {
		return nil
	}

	pitch, err := s.pitchRepo.GetByID(ctx, booking.PitchID)
	if err != nil {
		return fmt.Errorf("get pitch: %w", err)
	}
	if pitch.OwnerID == actorID {
		return nil
	}

	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("get actor: %w", err)
	}
	if actor.Role == domain.RoleAdmin {
		return nil
	}

	return domain.ErrForbidden
}

// ExpireStale moves every pending booking past its stored hold expiry to expired.
func (s *BookingService) ExpireStale(ctx context.Context) ([]*domain.Booking, error) {
	expired, err := s.bookingRepo.ExpireStale(ctx)
	if err != nil {
		return nil, fmt.Errorf("expire stale: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("stale bookings expired",
			logger.Int("count", len(expired)),
		)

		go s.notifyStatus(context.WithoutCancel(ctx), expired, domain.NotifyBookingExpired)
	}

	return expired, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *BookingService) notifyStatus(ctx context.Context, bookings []*domain.Booking, kind domain.NotificationKind) {
	for _, b := range bookings {
		user, err := s.userRepo.GetByID(ctx, b.PlayerID)
		if err != nil {
			s.logger.Error("failed to get player for notification",
				logger.String("user_id", b.PlayerID),
				logger.String("kind", string(kind)),
			)
			continue
		}

		pitch, err := s.pitchRepo.GetByID(ctx, b.PitchID)
		if err != nil {
			s.logger.Error("failed to get pitch for notification",
				logger.String("pitch_id", b.PitchID),
				logger.String("kind", string(kind)),
			)
			continue
		}

		s.notifier.Notify(ctx, user, kind, bookingData(b, pitch))
	}
}

// slotStarted reports whether the slot's start instant in loc is not in the future.
func slotStarted(date domain.Date, slot domain.SlotTime, now time.Time, loc *time.Location) bool {
	return !slot.StartsAt(date, loc).After(now)
}

func bookingData(b *domain.Booking, p *domain.Pitch) map[string]string {
	slots := ""
	for i, s := range b.Slots {
		if i > 0 {
			slots += ", "
		}
		slots += s.String()
	}

	return map[string]string{
		"booking_id": b.ID,
		"pitch":      p.Name,
		"location":   p.Location,
		"date":       b.Date.String(),
		"slots":      slots,
		"amount":     strconv.FormatInt(b.Amount, 10),
		"currency":   b.Currency,
		"expires_at": b.ExpiresAt.Format(time.RFC3339),
	}
}
