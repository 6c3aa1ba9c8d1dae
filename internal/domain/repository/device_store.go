package repository

import (
	"context"

	"elevenstore/internal/domain/entity"
)

// DeviceStore persists per-device flags across sessions.
type DeviceStore interface {
	// Load returns the remembered state; unknown devices yield an undecided zero state.
	Load(ctx context.Context, deviceID string) (*entity.DeviceState, error)

	// SavePermission remembers the notification decision of a device.
	SavePermission(ctx context.Context, deviceID string, state entity.PermissionState) error

	// SaveAdmin remembers whether the device last ran an admin session.
	SaveAdmin(ctx context.Context, deviceID string, admin bool) error
}
