package firestore

import (
	"context"

	"elevenstore/config"
	"elevenstore/internal/domain/entity"
	"elevenstore/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	fcmTokenField          = "fcmToken"
	fcmTokenUpdatedAtField = "fcmTokenUpdatedAt"
)

type userRepository struct {
	client     *firestore.Client
	collection string
}

// NewUserRepository creates a repository over user records
func NewUserRepository(client *firestore.Client, cfg *config.Config) repository.UserRepository {
	return &userRepository{
		client:     client,
		collection: cfg.Collections.Users,
	}
}

// SavePushToken merges the token fields onto users/{uid}; the record is created if missing.
func (r *userRepository) SavePushToken(ctx context.Context, token *entity.PushToken) error {
	_, err := r.client.Collection(r.collection).Doc(token.UserID).Set(ctx, map[string]any{
		fcmTokenField:          token.Token,
		fcmTokenUpdatedAtField: firestore.ServerTimestamp,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Wrapf(err, "save push token for user %s", token.UserID)
	}

	return nil
}

// FindPushToken reads the stored token of a user
func (r *userRepository) FindPushToken(ctx context.Context, userID string) (*entity.PushToken, error) {
	doc, err := r.client.Collection(r.collection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrPushTokenNotFound
		}

		return nil, errors.Wrapf(err, "read user %s", userID)
	}

	data := doc.Data()
	token := stringField(data, fcmTokenField)
	if token == "" {
		return nil, repository.ErrPushTokenNotFound
	}

	return &entity.PushToken{
		Token:     token,
		UserID:    userID,
		UpdatedAt: timeField(data, fcmTokenUpdatedAtField),
	}, nil
}
