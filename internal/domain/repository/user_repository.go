package repository

import (
	"context"

	"elevenstore/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPushTokenNotFound is returned when a user has no stored push token.
var ErrPushTokenNotFound = errors.New("push token not found")

// UserRepository defines writes against user records.
type UserRepository interface {
	// SavePushToken merges the token onto the user's record, stamping server time.
	// Other fields of the record are left untouched.
	SavePushToken(ctx context.Context, token *entity.PushToken) error

	// FindPushToken returns the token last stored for userID.
	FindPushToken(ctx context.Context, userID string) (*entity.PushToken, error)
}
