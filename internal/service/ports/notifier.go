package ports

import (
	"context"

	"github.com/stpnv0/PitchBooker/internal/domain"
)

// Notifier delivers a message to a user. Implementations log failures and never return them.
type Notifier interface {
	Notify(ctx context.Context, user *domain.User, kind domain.NotificationKind, data map[string]string)
}
