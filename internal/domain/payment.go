package domain

type ChargeRequest struct {
	Amount      int64
	Currency    string
	Reference   string
	Email       string
	RedirectURL string
	BookingID   string
}

type Charge struct {
	Reference   string
	PaymentLink string
}

type PaymentStatus string

const (
	PaymentSuccess   PaymentStatus = "success"
	PaymentFailed    PaymentStatus = "failed"
	PaymentAbandoned PaymentStatus = "abandoned"
	PaymentPending   PaymentStatus = "pending"
)

// PaymentVerification is what the gateway reports about a charge.
type PaymentVerification struct {
	Reference string
	Status    PaymentStatus
	Amount    int64
	Currency  string
	Method    string
}

// PaymentEvent is a decoded, signature-checked gateway webhook.
type PaymentEvent struct {
	Event     string
	Reference string
	Status    PaymentStatus
	Amount    int64
	Currency  string
}

// VerifyResult is what a client learns after asking to verify a payment reference.
type VerifyResult struct {
	BookingID     string
	BookingStatus BookingStatus
	PaymentStatus PaymentStatus
}
