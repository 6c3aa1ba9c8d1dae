package usecase

import (
	"context"

	"elevenstore/internal/domain/entity"
)

// PushRegistrar obtains and persists a session's push token and handles
// push messages that arrive while the page is open.
type PushRegistrar interface {
	// Initialize reports whether push messaging can work for this session.
	Initialize(ctx context.Context) bool

	// RequestPermission runs the permission gate and fetches a token on grant.
	RequestPermission(ctx context.Context) entity.PermissionState

	// GetToken returns the device token; ok is false when none could be obtained or stored.
	GetToken(ctx context.Context) (token string, ok bool)

	// HandleForegroundMessage shows an in-page notice for a push payload.
	HandleForegroundMessage(ctx context.Context, payload *entity.PushPayload)
}
