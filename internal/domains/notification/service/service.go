package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/mailer"
	"hotel/infras/otel"
	bookingRepository "hotel/internal/domains/booking/repository"
	"hotel/internal/domains/notification/model"
	"hotel/shared/constant"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Notification sends booking confirmations without holding up the request that created the booking.
type Notification interface {
	// Dispatch hands msg off and returns immediately. Failures are only logged.
	Dispatch(ctx context.Context, msg model.Confirmation)
	// Deliver sends the mail and flags the booking as notified.
	Deliver(ctx context.Context, msg model.Confirmation) error
	// Consume delivers queued confirmations until ctx is done. It is a no-op for the inline driver.
	Consume(ctx context.Context)
}

type serviceImpl struct {
	bookingRepo bookingRepository.Booking
	mailer      mailer.Mailer
	kafka       kafka.Client
	cfg         *config.Config
	otel        otel.Otel
}

func New(bookingRepo bookingRepository.Booking, mailer mailer.Mailer, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		mailer:      mailer,
		kafka:       kafka,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) queued() bool {
	return s.cfg.Notification.Driver == model.DriverKafka
}

func (s *serviceImpl) Dispatch(ctx context.Context, msg model.Confirmation) {
	if msg.To == constant.Empty {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if s.queued() {
			err := s.kafka.SendMessages(c, s.cfg.Notification.Kafka.Topic, kafka.Message{Key: msg.BookingID, Value: msg})
			if err == nil {
				return
			}

			log.Error().Err(err).Str("bookingId", msg.BookingID).Msg("failed to queue confirmation, delivering inline")
		}

		if err := s.Deliver(c, msg); err != nil {
			log.Error().Err(err).Str("bookingId", msg.BookingID).Msg("failed to deliver booking confirmation")
		}
	}()
}

func (s *serviceImpl) Deliver(ctx context.Context, msg model.Confirmation) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.Deliver")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("bookingId", msg.BookingID)

	err = s.mailer.Send(ctx, mailer.Message{
		To:      msg.To,
		Subject: model.ConfirmationSubject,
		Body:    msg.Body(s.cfg.Mail.Currency),
	})
	if err != nil {
		return fmt.Errorf("failed to send confirmation: %w", err)
	}

	if err = s.bookingRepo.MarkEmailSent(ctx, msg.BookingID, timezone.Now()); err != nil {
		log.Error().Err(err).Str("bookingId", msg.BookingID).Msg("failed to mark confirmation as sent")

		return fmt.Errorf("failed to mark confirmation as sent: %w", err)
	}

	log.Info().Str("bookingId", msg.BookingID).Int("bookingNumber", msg.BookingNumber).Msg("booking confirmation delivered")

	return nil
}

func (s *serviceImpl) Consume(ctx context.Context) {
	if !s.queued() {
		return
	}

	topic := s.cfg.Notification.Kafka.Topic
	log.Info().Str("topic", topic).Msg("consuming booking confirmations")

	s.kafka.Consume(ctx, s.cfg.Notification.Kafka.ConsumerGroup, topic, s.handle)
}

func (s *serviceImpl) handle(ctx context.Context, message kafkaGo.Message) error {
	msg, err := kafka.Decode[model.Confirmation](message)
	if err != nil {
		// committed and skipped
		log.Error().Err(err).Msg("dropping malformed confirmation message")

		return nil
	}

	return s.Deliver(ctx, msg)
}
