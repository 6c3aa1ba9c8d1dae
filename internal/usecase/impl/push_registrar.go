package impl

import (
	"context"
	"log/slog"
	"sync"

	"elevenstore/internal/domain/entity"
	"elevenstore/internal/domain/repository"
	"elevenstore/internal/domain/service"
	"elevenstore/internal/usecase"
)

// PushRegistrarDeps are the collaborators of a session's push registrar.
type PushRegistrarDeps struct {
	Session   *entity.Session
	Gate      usecase.PermissionGate
	Tokens    service.TokenSource
	Validator service.TokenValidator // Optional.
	Users     repository.UserRepository
	Toaster   service.Toaster
	Refresher service.OrderListRefresher
	VapidKey  string
}

type pushRegistrar struct {
	logger *slog.Logger
	deps   PushRegistrarDeps

	mu          sync.Mutex
	initialized bool
	token       string
}

// NewPushRegistrar creates the push-token registrar of a session
func NewPushRegistrar(logger *slog.Logger, deps PushRegistrarDeps) usecase.PushRegistrar {
	return &pushRegistrar{
		logger: logger,
		deps:   deps,
	}
}

// Initialize checks that the page can receive pushes and that a public key is configured
func (r *pushRegistrar) Initialize(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return true
	}

	if r.deps.Tokens == nil || !r.deps.Tokens.MessagingSupported() {
		r.logger.Info("[Registrar] Push messaging not supported by page", slog.String("session_id", r.deps.Session.ID))

		return false
	}

	if r.deps.VapidKey == "" {
		r.logger.Warn("[Registrar] No VAPID key configured; push messaging disabled")

		return false
	}

	r.initialized = true

	return true
}

// RequestPermission runs the gate and refreshes the token when notifications are allowed
func (r *pushRegistrar) RequestPermission(ctx context.Context) entity.PermissionState {
	state := r.deps.Gate.EnsurePermission(ctx)
	if state == entity.PermissionGranted {
		r.GetToken(ctx)
	}

	return state
}

// GetToken asks the page for its push token and stores it on the user's record.
// Guests get a token but nothing is persisted for them.
func (r *pushRegistrar) GetToken(ctx context.Context) (string, bool) {
	if !r.Initialize(ctx) {
		return "", false
	}

	token, err := r.deps.Tokens.PushToken(ctx, r.deps.VapidKey)
	if err != nil {
		r.logger.Warn("[Registrar] Failed to obtain push token",
			slog.String("session_id", r.deps.Session.ID),
			slog.Any("error", err),
		)

		return "", false
	}

	if token == "" {
		r.logger.Info("[Registrar] No registration token available", slog.String("session_id", r.deps.Session.ID))

		return "", false
	}

	if r.deps.Validator != nil {
		if err := r.deps.Validator.ValidateToken(ctx, token); err != nil {
			r.logger.Warn("[Registrar] Push token rejected",
				slog.String("session_id", r.deps.Session.ID),
				slog.Any("error", err),
			)

			return "", false
		}
	}

	r.mu.Lock()
	r.token = token
	r.mu.Unlock()

	if !r.deps.Session.Authenticated() {
		return token, true
	}

	if err := r.deps.Users.SavePushToken(ctx, &entity.PushToken{
		Token:  token,
		UserID: r.deps.Session.UserID,
	}); err != nil {
		r.logger.Error("[Registrar] Failed to persist push token",
			slog.String("user_id", r.deps.Session.UserID),
			slog.Any("error", err),
		)

		return "", false
	}

	r.logger.Info("[Registrar] Push token stored", slog.String("user_id", r.deps.Session.UserID))

	return token, true
}

// HandleForegroundMessage shows an in-page notice only: the system does not display
// pushes for a page in the foreground, and a second system notification would duplicate it.
func (r *pushRegistrar) HandleForegroundMessage(ctx context.Context, payload *entity.PushPayload) {
	if payload == nil {
		return
	}

	r.logger.Info("[Registrar] Foreground message received",
		slog.String("session_id", r.deps.Session.ID),
		slog.String("title", payload.Title),
	)

	message := payload.Body
	if message == "" {
		message = payload.Title
	}

	if r.deps.Toaster != nil && message != "" {
		if err := r.deps.Toaster.ShowToast(ctx, message, entity.SeverityInfo, 0); err != nil {
			r.logger.Warn("[Registrar] Foreground toast failed", slog.Any("error", err))
		}
	}

	if payload.OrderID() != "" && r.deps.Refresher != nil {
		if err := r.deps.Refresher.RefreshOrders(ctx); err != nil {
			r.logger.Warn("[Registrar] Order list refresh failed", slog.Any("error", err))
		}
	}
}
