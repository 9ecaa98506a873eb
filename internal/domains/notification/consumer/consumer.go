package consumer

import (
	"context"
	"fmt"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/infras/kafka"
	"github.com/NikQuila/website-gocar-sub000/infras/mailer"
	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/notification/model"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Consumer drains the notification topic into the mailer.
type Consumer struct {
	kafka  kafka.Client
	mailer mailer.Mailer
	cfg    *config.Config
	otel   otel.Otel
}

func New(kafka kafka.Client, mailer mailer.Mailer, cfg *config.Config, otel otel.Otel) *Consumer {
	return &Consumer{
		kafka:  kafka,
		mailer: mailer,
		cfg:    cfg,
		otel:   otel,
	}
}

// Run blocks until ctx is done, then flushes pending spans.
func (c *Consumer) Run(ctx context.Context) {
	defer otel.Shutdown(context.WithoutCancel(ctx), c.otel)

	log.Info().Str("topic", c.cfg.Kafka.NotificationTopic).Msg("notification consumer started")

	c.kafka.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.NotificationTopic, c.Handle)
}

func (c *Consumer) Handle(ctx context.Context, msg kafkaGo.Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification.Handle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email, err := kafka.Decode[model.Email](msg)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if err = c.mailer.Send(ctx, email.To, email.Subject, email.HTML); err != nil {
		return fmt.Errorf("failed to deliver %s email for appointment %s: %w", email.Kind, email.AppointmentID, err)
	}

	log.Info().
		Str("appointment_id", email.AppointmentID).
		Str("kind", string(email.Kind)).
		Str("audience", string(email.Audience)).
		Msg("notification delivered")

	return nil
}
