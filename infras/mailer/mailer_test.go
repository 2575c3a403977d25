package mailer

import (
	"context"
	"errors"
	"hotel/infras/otel/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}

	f.sent = append(f.sent, m...)

	return nil
}

func TestSend(t *testing.T) {
	tests := []struct {
		name    string
		dialer  *fakeDialer
		wantErr bool
	}{
		{name: "delivered", dialer: &fakeDialer{}},
		{name: "smtp failure", dialer: &fakeDialer{err: errors.New("535 auth failed")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &smtpMailer{dialer: tt.dialer, from: "desk@hotel.test", otel: mocks.NewOtel()}

			err := m.Send(context.Background(), Message{
				To:      "guest@example.com",
				Subject: "Booking confirmation",
				Body:    "Hello",
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Len(t, tt.dialer.sent, 1)
			assert.Equal(t, []string{"guest@example.com"}, tt.dialer.sent[0].GetHeader("To"))
			assert.Equal(t, []string{"desk@hotel.test"}, tt.dialer.sent[0].GetHeader("From"))
			assert.Equal(t, []string{"Booking confirmation"}, tt.dialer.sent[0].GetHeader("Subject"))
		})
	}
}

func TestSend_NotConfigured(t *testing.T) {
	m := &smtpMailer{otel: mocks.NewOtel()}

	err := m.Send(context.Background(), Message{To: "guest@example.com"})

	assert.ErrorIs(t, err, ErrNotConfigured)
}
