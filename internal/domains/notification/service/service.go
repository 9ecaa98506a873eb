package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/infras/kafka"
	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/notification/model"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"

	"github.com/rs/zerolog/log"
)

var errNoRecipients = errors.New("email has no recipients")

// Notifier queues emails for delivery. A failure is reported in the
// result and never returned, so callers cannot be failed by it.
type Notifier interface {
	Send(ctx context.Context, email model.Email) model.Result
}

type serviceImpl struct {
	kafka kafka.Client
	topic string
	otel  otel.Otel
}

func New(kafka kafka.Client, cfg *config.Config, otel otel.Otel) Notifier {
	return &serviceImpl{
		kafka: kafka,
		topic: cfg.Kafka.NotificationTopic,
		otel:  otel,
	}
}

func (s *serviceImpl) Send(ctx context.Context, email model.Email) model.Result {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification.Send")
	defer scope.End()

	if len(email.To) == 0 {
		scope.TraceError(errNoRecipients)

		return model.Result{Error: errNoRecipients.Error()}
	}

	err := s.kafka.SendMessages(ctx, s.topic, kafka.Message{Key: email.AppointmentID, Value: email})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).
			Str("appointment_id", email.AppointmentID).
			Str("kind", string(email.Kind)).
			Str("audience", string(email.Audience)).
			Msg("failed to queue notification")

		return model.Result{Error: err.Error()}
	}

	return model.Result{Success: true}
}
