package notification

import (
	"context"
	"testing"

	"elevenstore/internal/domain/entity"
	domainerrors "elevenstore/internal/domain/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSender struct {
	sent   []*messaging.Message
	dryRun []*messaging.Message
	err    error
}

func (s *stubSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	s.sent = append(s.sent, message)

	return "projects/p/messages/1", s.err
}

func (s *stubSender) SendDryRun(_ context.Context, message *messaging.Message) (string, error) {
	s.dryRun = append(s.dryRun, message)

	return "", s.err
}

func TestValidateToken(t *testing.T) {
	t.Run("accepted token", func(t *testing.T) {
		sender := &stubSender{}
		svc := newFirebaseService(sender)

		require.NoError(t, svc.ValidateToken(context.Background(), "tok"))
		require.Len(t, sender.dryRun, 1)
		assert.Equal(t, "tok", sender.dryRun[0].Token)
		assert.Empty(t, sender.sent)
	})

	t.Run("transport failure is not a token rejection", func(t *testing.T) {
		svc := newFirebaseService(&stubSender{err: errors.New("dial tcp: timeout")})

		err := svc.ValidateToken(context.Background(), "tok")

		require.Error(t, err)
		assert.False(t, errors.Is(err, domainerrors.ErrTokenInvalid))
	})
}

func TestSendPush(t *testing.T) {
	sender := &stubSender{}
	svc := newFirebaseService(sender)

	err := svc.SendPush(context.Background(), "tok", &entity.PushPayload{
		Title: "T",
		Body:  "B",
		Data:  map[string]string{"orderId": "77"},
	})

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "tok", msg.Token)
	assert.Equal(t, "T", msg.Notification.Title)
	assert.Equal(t, "77", msg.Data["orderId"])
	assert.Equal(t, "order-77", msg.Webpush.Notification.Tag)
}
