package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"

	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

var ErrNoRecipients = errors.New("email has no recipients")

type Mailer interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
}

type smtpMailer struct {
	config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Mailer {
	return &smtpMailer{
		config: cfg,
		otel:   otel,
	}
}

func (m *smtpMailer) client() (*mail.Client, error) {
	options := []mail.Option{
		mail.WithPort(m.config.SMTP.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}

	if m.config.SMTP.Username != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.config.SMTP.Username),
			mail.WithPassword(m.config.SMTP.Password),
		)
	}

	client, err := mail.NewClient(m.config.SMTP.Host, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return client, nil
}

func (m *smtpMailer) Send(ctx context.Context, to []string, subject, htmlBody string) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".smtp.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(to) == 0 {
		return ErrNoRecipients
	}

	msg := mail.NewMsg()

	if err = msg.From(m.config.SMTP.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	if err = msg.To(to...); err != nil {
		return fmt.Errorf("failed to set recipients: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := m.client()
	if err != nil {
		return err
	}

	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Error().Err(err).Strs("to", to).Str("subject", subject).Msg("failed to deliver email")

		return fmt.Errorf("failed to deliver email: %w", err)
	}

	log.Info().Strs("to", to).Str("subject", subject).Msg("email delivered")

	return nil
}
