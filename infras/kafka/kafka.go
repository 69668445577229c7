package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"hms/config"
	"hms/infras/otel"
	"hms/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type Message struct {
	Key   string
	Value any
}

func (m Message) toKafkaMessage() (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{Key: []byte(m.Key), Value: value}, nil
}

// DecodeMessage unmarshals the JSON value of msg into T.
func DecodeMessage[T any](msg kafkaGo.Message) (string, T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return string(msg.Key), value, fmt.Errorf("failed to unmarshal Kafka message value from JSON: %w", err)
	}

	return string(msg.Key), value, nil
}

// Handler processes one consumed message. Messages are handled in order.
type Handler func(ctx context.Context, message kafkaGo.Message) error

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	Consume(ctx context.Context, consumerGroup, topic string, handler Handler) error
	Close() error
}

type kafkaClientImpl struct {
	config    *config.Config
	dialer    *kafkaGo.Dialer
	transport *kafkaGo.Transport
	otel      otel.Otel

	mu      sync.Mutex
	writers map[string]*kafkaGo.Writer
}

func New(cfg *config.Config, ot otel.Otel) Client {
	dialer := &kafkaGo.Dialer{DualStack: true}
	transport := &kafkaGo.Transport{}

	if cfg.Kafka.SASL.Username != constant.Empty {
		mechanism := plain.Mechanism{
			Username: cfg.Kafka.SASL.Username,
			Password: cfg.Kafka.SASL.Password,
		}
		dialer.SASLMechanism = mechanism
		transport.SASL = mechanism
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Bool("enabled", cfg.Kafka.Enable).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		config:    cfg,
		dialer:    dialer,
		transport: transport,
		otel:      ot,
		writers:   make(map[string]*kafkaGo.Writer),
	}
}

func (k *kafkaClientImpl) writer(topic string) *kafkaGo.Writer {
	k.mu.Lock()
	defer k.mu.Unlock()

	if w, ok := k.writers[topic]; ok {
		return w
	}

	w := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(k.config.Kafka.Brokers...),
		Topic:                  topic,
		Transport:              k.transport,
		Balancer:               &kafkaGo.Hash{},
		AllowAutoTopicCreation: true,
	}
	k.writers[topic] = w

	return w
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	ctx, scope := k.otel.NewScope(ctx, constant.OtelKafkaScopeName, constant.OtelKafkaScopeName+".SendMessages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("topic", topic)

	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.toKafkaMessage()
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to convert message to Kafka message")

			return err
		}

		msgs = append(msgs, msg)
	}

	if err = k.writer(topic).WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Debug().Str("topic", topic).Int("count", len(msgs)).Msg("Sent Kafka messages")

	return nil
}

// Consume reads topic until ctx is done. Handler errors are logged and the
// offset is still committed.
func (k *kafkaClientImpl) Consume(ctx context.Context, consumerGroup, topic string, handler Handler) error {
	if topic == constant.Empty {
		return errors.New("kafka topic cannot be empty")
	}

	groupID := k.config.Kafka.ConsumerGroup
	if consumerGroup != constant.Empty {
		groupID = consumerGroup
	}

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.config.Kafka.Brokers,
		Topic:       topic,
		GroupID:     groupID,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.FirstOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka reader")
		}
	}()

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Str("topic", topic).Msg("Kafka consumer stopped")

				return nil
			}

			log.Error().Err(err).Str("topic", topic).Msg("Failed to read message from Kafka")

			continue
		}

		if err = handler(ctx, msg); err != nil {
			log.Error().Err(err).Str("topic", topic).Str("key", string(msg.Key)).Msg("Failed to handle Kafka message")
		}

		if err = reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to commit Kafka offset")
		}
	}
}

func (k *kafkaClientImpl) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	var errs []error

	for topic, w := range k.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing writer for %s: %w", topic, err))
		}
	}

	return errors.Join(errs...)
}
