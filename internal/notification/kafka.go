package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Event is the record published for every notification. Downstream consumers
// (email, SMS, analytics) subscribe to the topic instead of being called directly.
type Event struct {
	Kind       domain.NotificationKind `json:"kind"`
	UserID     string                  `json:"user_id"`
	Email      string                  `json:"email,omitempty"`
	Data       map[string]string       `json:"data"`
	OccurredAt time.Time               `json:"occurred_at"`
}

// publishTimeout bounds how long Notify waits for room in the producer's input.
const publishTimeout = 5 * time.Second

type KafkaNotifier struct {
	producer sarama.AsyncProducer
	topic    string
	logger   logger.Logger
	timeout  time.Duration

	mu     sync.RWMutex
	closed bool
}

func NewKafkaProducer(brokers []string) (sarama.AsyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Flush.Frequency = 500 * time.Millisecond
	config.Producer.Retry.Max = 5

	producer, err := sarama.NewAsyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("start kafka producer: %w", err)
	}
	return producer, nil
}

func NewKafkaNotifier(producer sarama.AsyncProducer, topic string, log logger.Logger) *KafkaNotifier {
	n := &KafkaNotifier{producer: producer, topic: topic, logger: log, timeout: publishTimeout}

	go func() {
		for err := range producer.Errors() {
			n.logger.Error("failed to publish notification",
				logger.String("topic", topic),
				logger.String("error", err.Error()),
			)
		}
	}()

	return n
}

// Notify enqueues the event keyed by user so that one user's events stay ordered.
// Verification codes never leave the process through Kafka.
func (n *KafkaNotifier) Notify(ctx context.Context, user *domain.User, kind domain.NotificationKind, data map[string]string) {
	if kind == domain.NotifyVerificationCode {
		return
	}

	payload, err := json.Marshal(Event{
		Kind:       kind,
		UserID:     user.ID,
		Email:      user.Email,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		n.logger.Error("failed to encode notification", logger.String("error", err.Error()))
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(user.ID),
		Value: sarama.ByteEncoder(payload),
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	// Close ждёт, пока отправка не завершится, поэтому в закрытый канал мы не пишем
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		n.logger.Warn("notification dropped (producer closed)",
			logger.String("kind", string(kind)),
			logger.String("user_id", user.ID),
		)
		return
	}

	select {
	case n.producer.Input() <- msg:
	case <-ctx.Done():
		n.logger.Warn("notification dropped",
			logger.String("kind", string(kind)),
			logger.String("user_id", user.ID),
			logger.String("error", ctx.Err().Error()),
		)
	}
}

// Close stops accepting notifications and flushes the producer. It is safe to call more than once.
func (n *KafkaNotifier) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	n.mu.Unlock()

	return n.producer.Close()
}
