package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	writeTimeout          = 10 * time.Second
	defaultHandleAttempts = 3
	headerContentType     = "content-type"
)

var retryDelay = time.Second

// Message is a keyed JSON event. Messages sharing a key land on the same
// partition, so events of one appointment keep their order.
type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to encode message %s: %w", m.Key, err)
	}

	return kafkaGo.Message{
		Key:     []byte(m.Key),
		Value:   value,
		Headers: []kafkaGo.Header{{Key: headerContentType, Value: []byte(constant.ContentTypeJSON)}},
	}, nil
}

// Decode unmarshals the JSON payload of a consumed message into T.
func Decode[T any](msg kafkaGo.Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return value, fmt.Errorf("failed to decode message %s: %w", string(msg.Key), err)
	}

	return value, nil
}

type Handler func(ctx context.Context, message kafkaGo.Message) error

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	Consume(ctx context.Context, consumerGroup, topic string, handler Handler)
	Close() error
}

type kafkaClientImpl struct {
	brokers        []string
	defaultGroup   string
	handleAttempts int
	dialer         *kafkaGo.Dialer
	writer         *kafkaGo.Writer
}

func New(cfg *config.Config) Client {
	kafkaConfig := cfg.Kafka

	var mechanism sasl.Mechanism
	if kafkaConfig.SASL.Username != "" {
		mechanism = plain.Mechanism{
			Username: kafkaConfig.SASL.Username,
			Password: kafkaConfig.SASL.Password,
		}
	}

	var tlsConfig *tls.Config
	if kafkaConfig.TLS {
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	attempts := kafkaConfig.HandleAttempts
	if attempts <= 0 {
		attempts = defaultHandleAttempts
	}

	log.Info().Strs("brokers", kafkaConfig.Brokers).Bool("tls", kafkaConfig.TLS).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		brokers:        kafkaConfig.Brokers,
		defaultGroup:   kafkaConfig.ConsumerGroup,
		handleAttempts: attempts,
		dialer: &kafkaGo.Dialer{
			DualStack:     true,
			SASLMechanism: mechanism,
			TLS:           tlsConfig,
		},
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(kafkaConfig.Brokers...),
			Transport:              &kafkaGo.Transport{SASL: mechanism, TLS: tlsConfig},
			Balancer:               &kafkaGo.Hash{},
			AllowAutoTopicCreation: true,
			WriteTimeout:           writeTimeout,
			RequiredAcks:           kafkaGo.RequireOne,
		},
	}
}

// SendMessages writes synchronously so the caller learns about delivery failures.
func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) error {
	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			return err
		}

		msg.Topic = topic
		msgs = append(msgs, msg)
	}

	if err := k.writer.WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Str("topic", topic).Int("count", len(msgs)).Msg("Failed to publish to Kafka")

		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	log.Debug().Str("topic", topic).Int("count", len(msgs)).Msg("Published to Kafka")

	return nil
}

// Consume blocks until ctx is done. Offsets are committed only after the
// handler ran, so a crash redelivers the message. A handler error is
// retried a few times before the message is skipped.
func (k *kafkaClientImpl) Consume(ctx context.Context, consumerGroup, topic string, handler Handler) {
	if consumerGroup == "" {
		consumerGroup = k.defaultGroup
	}

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.brokers,
		Topic:       topic,
		GroupID:     consumerGroup,
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
				return
			}

			log.Error().Err(err).Str("topic", topic).Msg("Failed to fetch from Kafka")

			if !sleep(ctx, retryDelay) {
				return
			}

			continue
		}

		if !k.handle(ctx, msg, handler) {
			return
		}

		if err := reader.CommitMessages(context.WithoutCancel(ctx), msg); err != nil {
			log.Error().Err(err).Str("topic", topic).Int64("offset", msg.Offset).Msg("Failed to commit Kafka offset")
		}
	}
}

// handle reports false when ctx ended before the message was settled,
// leaving its offset uncommitted.
func (k *kafkaClientImpl) handle(ctx context.Context, msg kafkaGo.Message, handler Handler) bool {
	logger := log.With().Str("topic", msg.Topic).Str("key", string(msg.Key)).Int64("offset", msg.Offset).Logger()

	for attempt := 1; ; attempt++ {
		err := handler(ctx, msg)
		if err == nil {
			return true
		}

		logger.Warn().Err(err).Int("attempt", attempt).Msg("Failed to handle Kafka message")

		if attempt >= k.handleAttempts {
			logger.Error().Int("attempts", attempt).Msg("Skipping Kafka message")

			return true
		}

		if !sleep(ctx, time.Duration(attempt)*retryDelay) {
			return false
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (k *kafkaClientImpl) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}

	return nil
}
