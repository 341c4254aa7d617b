package notification

import (
	"context"

	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/service/ports"
)

// MultiNotifier fans a notification out to every channel in order.
type MultiNotifier struct {
	notifiers []ports.Notifier
}

func NewMultiNotifier(notifiers ...ports.Notifier) *MultiNotifier {
	return &MultiNotifier{notifiers: notifiers}
}

func (m *MultiNotifier) Notify(ctx context.Context, user *domain.User, kind domain.NotificationKind, data map[string]string) {
	for _, n := range m.notifiers {
		n.Notify(ctx, user, kind, data)
	}
}
