package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"elevenstore/internal/domain/entity"
	"elevenstore/internal/domain/repository"
	"elevenstore/internal/domain/service"
	"elevenstore/internal/usecase"
)

type permissionGate struct {
	logger   *slog.Logger
	prompter service.PermissionPrompter
	devices  repository.DeviceStore
	deviceID string

	// promptMu serialises prompts; state is read lock-free by the fan-out.
	promptMu sync.Mutex
	prompted bool         // The page has been asked once this session; guarded by promptMu.
	state    atomic.Value // entity.PermissionState
}

// NewPermissionGate creates a gate seeded with the page's standing decision,
// falling back to the decision remembered for the device.
func NewPermissionGate(
	logger *slog.Logger,
	prompter service.PermissionPrompter,
	devices repository.DeviceStore,
	deviceID string,
	stored entity.PermissionState,
) usecase.PermissionGate {
	g := &permissionGate{
		logger:   logger,
		prompter: prompter,
		devices:  devices,
		deviceID: deviceID,
	}

	initial := entity.PermissionDefault
	switch {
	case !prompter.NotificationsSupported():
		initial = entity.PermissionUnsupported
	case prompter.CurrentPermission().Decided():
		initial = prompter.CurrentPermission()
	case stored.Decided():
		initial = stored
	}
	g.state.Store(initial)

	return g
}

// State returns the cached decision
func (g *permissionGate) State() entity.PermissionState {
	return g.state.Load().(entity.PermissionState)
}

// EnsurePermission prompts at most once per session. A denial is final for the
// session, and so is a prompt that was dismissed or never reached the page.
func (g *permissionGate) EnsurePermission(ctx context.Context) entity.PermissionState {
	if g.State() == entity.PermissionUnsupported {
		return entity.PermissionUnsupported
	}
	if state := g.State(); state.Decided() {
		return state
	}

	g.promptMu.Lock()
	defer g.promptMu.Unlock()

	// Another caller may have prompted while we waited.
	if state := g.State(); state.Decided() {
		return state
	}

	if g.prompted {
		return entity.PermissionDenied
	}
	g.prompted = true

	answer, err := g.prompter.RequestPermission(ctx)
	if err != nil {
		g.logger.Warn("[Permission] Prompt failed", slog.String("device_id", g.deviceID), slog.Any("error", err))

		return entity.PermissionDenied
	}

	if !answer.Decided() {
		// Dismissed without an answer; a later session may ask again.
		g.logger.Info("[Permission] Prompt dismissed", slog.String("device_id", g.deviceID))

		return entity.PermissionDenied
	}

	g.state.Store(answer)
	g.logger.Info("[Permission] Decision recorded",
		slog.String("device_id", g.deviceID),
		slog.String("permission", string(answer)),
	)

	if g.devices != nil && g.deviceID != "" {
		if err := g.devices.SavePermission(ctx, g.deviceID, answer); err != nil {
			g.logger.Warn("[Permission] Failed to persist decision", slog.Any("error", err))
		}
	}

	return answer
}
