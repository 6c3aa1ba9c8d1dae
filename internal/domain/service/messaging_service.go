package service

import (
	"context"

	"elevenstore/internal/domain/entity"
)

// TokenValidator checks that a push token is accepted by the messaging backend.
type TokenValidator interface {
	// ValidateToken returns nil for a deliverable token.
	ValidateToken(ctx context.Context, token string) error
}

// PushSender delivers a push message to a device that has no open page.
type PushSender interface {
	SendPush(ctx context.Context, token string, payload *entity.PushPayload) error
}
