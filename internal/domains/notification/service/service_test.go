package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/mailer"
	mailerMocks "hotel/infras/mailer/mocks"
	"hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/notification/model"
	"hotel/internal/domains/notification/service"
)

const waitTimeout = 2 * time.Second

func confirmation() model.Confirmation {
	return model.Confirmation{
		BookingID:     "4f5b3c0e-8a4d-4c55-9a55-0c4b3f3f0a01",
		BookingNumber: 12345,
		To:            "anna@example.com",
		GuestName:     "Anna",
		RoomTitle:     "Double room",
		CheckIn:       "2025-01-10",
		CheckOut:      "2025-01-12",
		TotalPrice:    "400",
	}
}

func newConfig(driver string) *config.Config {
	cfg := &config.Config{}
	cfg.Notification.Driver = driver
	cfg.Notification.Kafka.Topic = "booking.confirmation"
	cfg.Notification.Kafka.ConsumerGroup = "hotel-notification"
	cfg.Mail.Currency = "PLN"

	return cfg
}

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for asynchronous delivery")
	}
}

func TestNotificationService_Deliver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockMailer := mailerMocks.NewMockMailer(ctrl)

	svc := service.New(mockRepo, mockMailer, kafkaMocks.NewMockClient(ctrl), newConfig(model.DriverInline), mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "mail sent and booking flagged",
			setupMock: func() {
				mockMailer.EXPECT().
					Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msg mailer.Message) error {
						assert.Equal(t, "anna@example.com", msg.To)
						assert.Equal(t, model.ConfirmationSubject, msg.Subject)
						assert.Contains(t, msg.Body, "Total price: 400 PLN")

						return nil
					})
				mockRepo.EXPECT().MarkEmailSent(gomock.Any(), confirmation().BookingID, gomock.Any()).Return(nil)
			},
		},
		{
			name: "mail failure leaves flag unset",
			setupMock: func() {
				mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
			},
			wantErr: true,
		},
		{
			name: "flag update failure",
			setupMock: func() {
				mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
				mockRepo.EXPECT().MarkEmailSent(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Deliver(context.Background(), confirmation())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotificationService_DispatchInline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockMailer := mailerMocks.NewMockMailer(ctrl)

	svc := service.New(mockRepo, mockMailer, kafkaMocks.NewMockClient(ctrl), newConfig(model.DriverInline), mocks.NewOtel())

	done := make(chan struct{})

	mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().
		MarkEmailSent(gomock.Any(), confirmation().BookingID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ time.Time) error {
			close(done)

			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	svc.Dispatch(ctx, confirmation())
	// The request finishing must not abort delivery.
	cancel()

	wait(t, done)
}

func TestNotificationService_DispatchSkipsMissingEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.New(bookingMocks.NewMockBooking(ctrl), mailerMocks.NewMockMailer(ctrl), kafkaMocks.NewMockClient(ctrl), newConfig(model.DriverInline), mocks.NewOtel())

	msg := confirmation()
	msg.To = ""

	svc.Dispatch(context.Background(), msg)
}

func TestNotificationService_DispatchKafka(t *testing.T) {
	tests := []struct {
		name     string
		sendErr  error
		wantSMTP bool
	}{
		{name: "queued"},
		{name: "queue failure falls back to inline", sendErr: errors.New("broker down"), wantSMTP: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := bookingMocks.NewMockBooking(ctrl)
			mockMailer := mailerMocks.NewMockMailer(ctrl)
			mockKafka := kafkaMocks.NewMockClient(ctrl)

			svc := service.New(mockRepo, mockMailer, mockKafka, newConfig(model.DriverKafka), mocks.NewOtel())

			done := make(chan struct{})

			mockKafka.EXPECT().
				SendMessages(gomock.Any(), "booking.confirmation", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, msgs ...kafka.Message) error {
					assert.Len(t, msgs, 1)
					assert.Equal(t, confirmation().BookingID, msgs[0].Key)

					if tt.sendErr == nil {
						close(done)
					}

					return tt.sendErr
				})

			if tt.wantSMTP {
				mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
				mockRepo.EXPECT().
					MarkEmailSent(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ time.Time) error {
						close(done)

						return nil
					})
			}

			svc.Dispatch(context.Background(), confirmation())

			wait(t, done)
		})
	}
}

func TestNotificationService_Consume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockMailer := mailerMocks.NewMockMailer(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	svc := service.New(mockRepo, mockMailer, mockKafka, newConfig(model.DriverKafka), mocks.NewOtel())

	queued, err := (&kafka.Message{Key: "k", Value: confirmation()}).ToKafkaMessage()
	assert.NoError(t, err)

	mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().MarkEmailSent(gomock.Any(), confirmation().BookingID, gomock.Any()).Return(nil)

	mockKafka.EXPECT().
		Consume(gomock.Any(), "hotel-notification", "booking.confirmation", gomock.Any()).
		Do(func(ctx context.Context, _, _ string, handler kafka.Handler) {
			assert.NoError(t, handler(ctx, queued))
			// Malformed payloads are dropped rather than retried forever.
			assert.NoError(t, handler(ctx, kafkaGo.Message{Value: []byte("{")}))
		})

	svc.Consume(context.Background())
}

func TestNotificationService_ConsumeInlineIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.New(bookingMocks.NewMockBooking(ctrl), mailerMocks.NewMockMailer(ctrl), kafkaMocks.NewMockClient(ctrl), newConfig(model.DriverInline), mocks.NewOtel())

	svc.Consume(context.Background())
}
