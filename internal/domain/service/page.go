// Package service defines collaborators that the use cases drive but do not own.
package service

import (
	"context"
	"time"

	"elevenstore/internal/domain/entity"
)

// Toaster shows a transient in-page message.
type Toaster interface {
	ShowToast(ctx context.Context, message string, severity entity.Severity, duration time.Duration) error
}

// SystemNotifier shows an operating-system notification.
// A notification with the tag of a visible one replaces it.
type SystemNotifier interface {
	ShowNotification(ctx context.Context, notification *entity.SystemNotification) error
}

// AudioCue plays the short notification chime.
type AudioCue interface {
	PlayChime(ctx context.Context) error
}

// OrderListRefresher asks the order listing to re-fetch and re-render.
type OrderListRefresher interface {
	RefreshOrders(ctx context.Context) error
}

// PermissionPrompter exposes the host's notification permission primitives.
type PermissionPrompter interface {
	// NotificationsSupported reports whether the host can show system notifications at all.
	NotificationsSupported() bool

	// CurrentPermission reports the host's standing decision.
	CurrentPermission() entity.PermissionState

	// RequestPermission shows the interactive prompt and returns the answer.
	RequestPermission(ctx context.Context) (entity.PermissionState, error)
}

// TokenSource obtains a device push token from the host's messaging SDK.
type TokenSource interface {
	// MessagingSupported reports whether the host can receive push messages.
	MessagingSupported() bool

	// PushToken returns the device token issued for the given public key; empty when none is available.
	PushToken(ctx context.Context, vapidKey string) (string, error)
}

// Page bundles every side effect a storefront page performs on request.
type Page interface {
	Toaster
	SystemNotifier
	AudioCue
	OrderListRefresher
	PermissionPrompter
	TokenSource
}
