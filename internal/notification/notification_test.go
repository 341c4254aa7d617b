package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stpnv0/PitchBooker/internal/domain"
	portmocks "github.com/stpnv0/PitchBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func testUser() *domain.User {
	chatID := int64(42)
	return &domain.User{ID: "u1", Username: "tunde", Email: "tunde@example.com", TelegramChatID: &chatID}
}

func bookingData() map[string]string {
	return map[string]string{
		"pitch":      "Onikan Arena",
		"location":   "Lagos Island",
		"date":       "2026-10-17",
		"slots":      "18:00, 19:00",
		"amount":     "50000",
		"currency":   "NGN",
		"expires_at": "2026-10-16T10:15:00Z",
	}
}

func TestRenderMessage(t *testing.T) {
	tests := []struct {
		name     string
		kind     domain.NotificationKind
		data     map[string]string
		contains []string
	}{
		{"reserved", domain.NotifyBookingReserved, bookingData(), []string{"Onikan Arena", "Lagos Island", "18:00, 19:00", "50000 NGN", "2026-10-16T10:15:00Z"}},
		{"paid", domain.NotifyBookingPaid, map[string]string{"pitch": "Onikan Arena", "cashback": "30", "currency": "NGN"}, []string{"confirmed", "30 NGN"}},
		{"expired", domain.NotifyBookingExpired, bookingData(), []string{"expired", "2026-10-17"}},
		{"payout", domain.NotifyPayoutCredited, map[string]string{"payout": "23750", "commission": "1250", "currency": "NGN"}, []string{"23750 NGN", "commission 1250"}},
		{"code", domain.NotifyVerificationCode, map[string]string{"code": "123456", "expires_at": "x"}, []string{"*123456*"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := renderMessage(tt.kind, tt.data)

			require.True(t, ok)
			for _, s := range tt.contains {
				assert.Contains(t, text, s)
			}
		})
	}
}

func TestRenderMessage_UnknownKind(t *testing.T) {
	_, ok := renderMessage(domain.NotificationKind("unknown"), nil)

	assert.False(t, ok)
}

func TestTelegramNotifier_Disabled(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		n.Notify(context.Background(), testUser(), domain.NotifyBookingReserved, bookingData())
	})
}

func TestKafkaNotifier_Publishes(t *testing.T) {
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewAsyncProducer(t, cfg)

	producer.ExpectInputWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "u1" {
			return errors.New("unexpected key " + string(key))
		}
		return nil
	})

	n := NewKafkaNotifier(producer, "pitchbooker.notifications", newTestLogger(t))
	n.Notify(context.Background(), testUser(), domain.NotifyBookingReserved, bookingData())

	msg := <-producer.Successes()
	assert.Equal(t, "pitchbooker.notifications", msg.Topic)

	raw, err := msg.Value.Encode()
	require.NoError(t, err)

	var ev Event
	require.NoError(t, json.Unmarshal(raw, &ev))
	assert.Equal(t, domain.NotifyBookingReserved, ev.Kind)
	assert.Equal(t, "u1", ev.UserID)
	assert.Equal(t, "Onikan Arena", ev.Data["pitch"])
	assert.False(t, ev.OccurredAt.IsZero())

	require.NoError(t, n.Close())
}

func TestKafkaNotifier_SkipsVerificationCodes(t *testing.T) {
	producer := mocks.NewAsyncProducer(t, mocks.NewTestConfig())

	n := NewKafkaNotifier(producer, "pitchbooker.notifications", newTestLogger(t))
	n.Notify(context.Background(), testUser(), domain.NotifyVerificationCode, map[string]string{"code": "123456"})

	// без ожиданий: любой отправленный код провалит Close
	require.NoError(t, n.Close())
}

func TestKafkaNotifier_PublishFailureIsLogged(t *testing.T) {
	producer := mocks.NewAsyncProducer(t, mocks.NewTestConfig())
	producer.ExpectInputAndFail(sarama.ErrOutOfBrokers)

	n := NewKafkaNotifier(producer, "pitchbooker.notifications", newTestLogger(t))

	assert.NotPanics(t, func() {
		n.Notify(context.Background(), testUser(), domain.NotifyBookingCancelled, bookingData())
	})
	assert.NoError(t, n.Close())
}

// stalledProducer never drains its input.
type stalledProducer struct {
	sarama.AsyncProducer
	input  chan *sarama.ProducerMessage
	errors chan *sarama.ProducerError
}

func newStalledProducer() *stalledProducer {
	return &stalledProducer{
		input:  make(chan *sarama.ProducerMessage),
		errors: make(chan *sarama.ProducerError),
	}
}

func (p *stalledProducer) Input() chan<- *sarama.ProducerMessage { return p.input }
func (p *stalledProducer) Errors() <-chan *sarama.ProducerError { return p.errors }
func (p *stalledProducer) Close() error {
	close(p.errors)
	return nil
}

func TestKafkaNotifier_StalledProducerDoesNotBlock(t *testing.T) {
	n := NewKafkaNotifier(newStalledProducer(), "notifications", newTestLogger(t))
	n.timeout = 50 * time.Millisecond
	t.Cleanup(func() { _ = n.Close() })

	done := make(chan struct{})
	go func() {
		n.Notify(context.WithoutCancel(context.Background()), testUser(), domain.NotifyBookingPaid, bookingData())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a stalled producer")
	}
}

func TestKafkaNotifier_NotifyAfterClose(t *testing.T) {
	producer := mocks.NewAsyncProducer(t, mocks.NewTestConfig())
	n := NewKafkaNotifier(producer, "notifications", newTestLogger(t))

	require.NoError(t, n.Close())
	require.NoError(t, n.Close())

	assert.NotPanics(t, func() {
		n.Notify(context.Background(), testUser(), domain.NotifyBookingPaid, bookingData())
	})
}

func TestMultiNotifier_FansOut(t *testing.T) {
	first := portmocks.NewMockNotifier(t)
	second := portmocks.NewMockNotifier(t)
	user := testUser()
	data := bookingData()

	first.EXPECT().Notify(context.Background(), user, domain.NotifyBookingPaid, data).Once()
	second.EXPECT().Notify(context.Background(), user, domain.NotifyBookingPaid, data).Once()

	NewMultiNotifier(first, second).Notify(context.Background(), user, domain.NotifyBookingPaid, data)
}
