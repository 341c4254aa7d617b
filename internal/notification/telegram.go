package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, user *domain.User, kind domain.NotificationKind, data map[string]string) {
	text, ok := renderMessage(kind, data)
	if !ok {
		n.logger.Debug("notification skipped (no telegram template)", logger.String("kind", string(kind)))
		return
	}
	n.send(ctx, user.TelegramChatID, text)
}

// renderMessage builds the Markdown text for a notification kind. Times are UTC.
func renderMessage(kind domain.NotificationKind, d map[string]string) (string, bool) {
	switch kind {
	case domain.NotifyBookingReserved:
		return fmt.Sprintf(
			"*Slot held!*\n\nPitch: %s (%s)\nDate: %s\nSlots (UTC): %s\nAmount: %s %s\n"+
				"Pay before %s or the hold is released.",
			d["pitch"], d["location"], d["date"], d["slots"], d["amount"], d["currency"], d["expires_at"],
		), true
	case domain.NotifyBookingPaid:
		return fmt.Sprintf(
			"*Booking confirmed!*\n\nPitch: %s\nDate: %s\nSlots (UTC): %s\nCashback: %s %s",
			d["pitch"], d["date"], d["slots"], d["cashback"], d["currency"],
		), true
	case domain.NotifyBookingExpired:
		return fmt.Sprintf(
			"*Hold expired (payment not received)*\n\nPitch: %s\nDate: %s\nSlots (UTC): %s",
			d["pitch"], d["date"], d["slots"],
		), true
	case domain.NotifyBookingCancelled:
		return fmt.Sprintf(
			"*Booking cancelled*\n\nPitch: %s\nDate: %s\nSlots (UTC): %s",
			d["pitch"], d["date"], d["slots"],
		), true
	case domain.NotifyBookingRefunded:
		return fmt.Sprintf(
			"*Booking refunded*\n\nPitch: %s\nDate: %s\nAmount: %s %s",
			d["pitch"], d["date"], d["amount"], d["currency"],
		), true
	case domain.NotifyPayoutCredited:
		return fmt.Sprintf(
			"*New booking paid*\n\nPitch: %s\nDate: %s\nSlots (UTC): %s\nPayout: %s %s (commission %s)",
			d["pitch"], d["date"], d["slots"], d["payout"], d["currency"], d["commission"],
		), true
	case domain.NotifyVerificationCode:
		return fmt.Sprintf(
			"Your verification code is *%s*. It expires at %s.",
			d["code"], d["expires_at"],
		), true
	default:
		return "", false
	}
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)")
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)")
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
