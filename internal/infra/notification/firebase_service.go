package notification

import (
	"context"

	"elevenstore/internal/domain/entity"
	domainerrors "elevenstore/internal/domain/errors"
	"elevenstore/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

// Sender is the subset of the messaging client the service needs.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendDryRun(ctx context.Context, message *messaging.Message) (string, error)
}

// FirebaseService validates device tokens and sends device pushes.
type FirebaseService interface {
	service.TokenValidator
	service.PushSender
}

type firebaseService struct {
	client Sender
}

// NewFirebaseService creates a new Firebase messaging service instance
func NewFirebaseService(client *messaging.Client) FirebaseService {
	return newFirebaseService(client)
}

func newFirebaseService(client Sender) *firebaseService {
	return &firebaseService{
		client: client,
	}
}

// ValidateToken performs a dry-run send; unregistered or malformed tokens are rejected
func (s *firebaseService) ValidateToken(ctx context.Context, token string) error {
	_, err := s.client.SendDryRun(ctx, &messaging.Message{Token: token})
	if err == nil {
		return nil
	}

	if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
		return errors.WithStack(domainerrors.ErrTokenInvalid.WithDetails(err.Error()))
	}

	return errors.Wrap(err, "failed to validate token")
}

// SendPush sends a web push to a single device token
func (s *firebaseService) SendPush(ctx context.Context, token string, payload *entity.PushPayload) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title:    payload.Title,
			Body:     payload.Body,
			ImageURL: payload.Icon,
		},
		Data: payload.Data,
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title: payload.Title,
				Body:  payload.Body,
				Icon:  payload.Icon,
				Tag:   pushTag(payload),
			},
		},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

func pushTag(payload *entity.PushPayload) string {
	if id := payload.OrderID(); id != "" {
		return "order-" + id
	}

	return ""
}
