package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/15augustjon-tech/tapshop-delivery/internal/config"

	"github.com/segmentio/kafka-go"
)

// KafkaNotifier публикует события жизненного цикла заказа (уведомления
// продавцу и покупателю собирает отдельный сервис-потребитель).
// Fire-and-forget: ошибка публикации логируется и не возвращается,
// бизнес-операция от неё не зависит.
type KafkaNotifier struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafka(logger *slog.Logger, cfg config.Kafka) *KafkaNotifier {
	return &KafkaNotifier{
		logger: logger.With(slog.String("notifier", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.EventsTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

type envelope struct {
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

func (n *KafkaNotifier) Notify(ctx context.Context, event string, payload any) {
	value, err := json.Marshal(envelope{
		Event:     event,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
	if err != nil {
		n.logger.Error("failed to marshal event", slog.String("event", event), slog.Any("error", err))
		return
	}

	// В библиотеке уже есть retry
	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event),
		Value: value,
	})
	if err != nil {
		n.logger.Error("failed to publish event", slog.String("event", event), slog.Any("error", err))
		return
	}
	n.logger.Debug("event published", slog.String("event", event))
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
