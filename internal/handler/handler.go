package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Reserve(ctx context.Context, input domain.ReserveInput) (*domain.Booking, error)
	Checkout(ctx context.Context, bookingID string) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, actorID string) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}

type SettlementSvc interface {
	VerifyPayment(ctx context.Context, reference string) (*domain.VerifyResult, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	Refund(ctx context.Context, bookingID string) (*domain.Booking, error)
	ListFlags(ctx context.Context, since time.Time) ([]*domain.ReconciliationFlag, error)
}

type AvailabilitySvc interface {
	ListAvailable(ctx context.Context, pitchID string, date domain.Date) (*domain.PitchAvailability, error)
}

type PitchSvc interface {
	Create(ctx context.Context, input domain.CreatePitchInput) (*domain.Pitch, error)
	GetByID(ctx context.Context, id string) (*domain.Pitch, error)
	List(ctx context.Context) ([]*domain.Pitch, error)
	SetStatus(ctx context.Context, pitchID, ownerID string, status domain.PitchStatus) error
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type LedgerSvc interface {
	Balance(ctx context.Context, accountType domain.AccountType, accountID string) (*domain.Balance, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.LedgerEntry, error)
	Revenue(ctx context.Context) (*domain.RevenueSummary, error)
}

type VerificationSvc interface {
	Send(ctx context.Context, userID, purpose string) (time.Time, error)
	Check(ctx context.Context, userID, purpose, code string) error
}

type Handler struct {
	bookingService      BookingSvc
	settlementService   SettlementSvc
	availabilityService AvailabilitySvc
	pitchService        PitchSvc
	userService         UserSvc
	ledgerService       LedgerSvc
	verificationService VerificationSvc
}

func NewHandler(
	bookingService BookingSvc,
	settlementService SettlementSvc,
	availabilityService AvailabilitySvc,
	pitchService PitchSvc,
	userService UserSvc,
	ledgerService LedgerSvc,
	verificationService VerificationSvc,
) *Handler {
	return &Handler{
		bookingService:      bookingService,
		settlementService:   settlementService,
		availabilityService: availabilityService,
		pitchService:        pitchService,
		userService:         userService,
		ledgerService:       ledgerService,
		verificationService: verificationService,
	}
}

const slotTakenMessage = "this slot was just taken, please pick another"

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: slotTakenMessage})

	case errors.Is(err, domain.ErrPitchNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPitchInactive),
		errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrBookingExpired),
		errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCodeInvalid):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCodeAttempts):
		c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrWebhookSignatureInvalid):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid signature"})

	case errors.Is(err, domain.ErrGateway):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "payment provider unavailable, please try again"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
