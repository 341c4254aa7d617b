package domain

type NotificationKind string

const (
	NotifyBookingReserved  NotificationKind = "booking_reserved"
	NotifyBookingPaid      NotificationKind = "booking_paid"
	NotifyBookingExpired   NotificationKind = "booking_expired"
	NotifyBookingCancelled NotificationKind = "booking_cancelled"
	NotifyBookingRefunded  NotificationKind = "booking_refunded"
	NotifyPayoutCredited   NotificationKind = "payout_credited"
	NotifyVerificationCode NotificationKind = "verification_code"
)
