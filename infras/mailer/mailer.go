package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

var ErrNotConfigured = errors.New("smtp is not configured")

type Message struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpMailer struct {
	dialer dialer
	from   string
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Mailer {
	smtp := cfg.External.SMTP

	var d dialer
	if smtp.Host != "" {
		d = gomail.NewDialer(smtp.Host, smtp.Port, smtp.Username, smtp.Password)
	} else {
		log.Warn().Msg("SMTP host not configured, confirmation emails will not be sent")
	}

	from := smtp.From
	if from == "" {
		from = smtp.Username
	}

	return &smtpMailer{
		dialer: d,
		from:   from,
		otel:   otel,
	}
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if m.dialer == nil {
		return ErrNotConfigured
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/plain", msg.Body)

	if err = m.dialer.DialAndSend(mail); err != nil {
		log.Error().Err(err).Str("to", msg.To).Msg("failed to send email")

		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("email sent")

	return nil
}
