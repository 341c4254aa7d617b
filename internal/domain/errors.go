package domain

import "errors"

var (
	ErrPitchNotFound   = errors.New("pitch not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrSlotUnavailable   = errors.New("slot unavailable")
	ErrPitchInactive     = errors.New("pitch is not active")
	ErrBookingNotPending = errors.New("booking is not in pending status")
	ErrBookingExpired    = errors.New("booking hold has expired")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrForbidden         = errors.New("operation not allowed for this user")
)

var (
	ErrAlreadySettled          = errors.New("booking already settled")
	ErrAmountMismatch          = errors.New("reported amount does not match booking amount")
	ErrWebhookSignatureInvalid = errors.New("webhook signature invalid")
	ErrPaymentNotSuccessful    = errors.New("payment not successful")
	ErrGateway                 = errors.New("payment gateway error")
)

var (
	ErrCodeInvalid  = errors.New("verification code invalid or expired")
	ErrCodeAttempts = errors.New("too many verification attempts")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
