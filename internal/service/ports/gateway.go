package ports

import (
	"context"

	"github.com/stpnv0/PitchBooker/internal/domain"
)

type PaymentGateway interface {
	InitializeCharge(ctx context.Context, req domain.ChargeRequest) (*domain.Charge, error)
	Verify(ctx context.Context, reference string) (*domain.PaymentVerification, error)
	ParseWebhook(payload []byte, signature string) (*domain.PaymentEvent, error)
}
