package usecase

import (
	"context"

	"elevenstore/internal/domain/entity"
)

// NotificationFanout renders one notification intent across the enabled channels.
type NotificationFanout interface {
	// Deliver never fails; channel errors are logged and dropped.
	Deliver(ctx context.Context, intent *entity.NotificationIntent)
}

// PermissionGate owns a session's consent state for system notifications.
type PermissionGate interface {
	// EnsurePermission returns granted, denied or unsupported, prompting at most once while undecided.
	EnsurePermission(ctx context.Context) entity.PermissionState

	// State returns the cached state without prompting.
	State() entity.PermissionState
}
