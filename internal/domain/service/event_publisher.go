package service

import (
	"context"

	"elevenstore/internal/domain/entity"
)

// PushPublisher publishes foreground messages to the topic the notifier consumes.
type PushPublisher interface {
	// Publish hands msg to the message queue for delivery to the user's pages.
	Publish(ctx context.Context, msg *entity.ForegroundMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
