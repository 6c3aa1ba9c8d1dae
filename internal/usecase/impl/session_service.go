package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"elevenstore/config"
	"elevenstore/internal/domain/entity"
	domainerrors "elevenstore/internal/domain/errors"
	"elevenstore/internal/domain/repository"
	"elevenstore/internal/domain/service"
	"elevenstore/internal/errors"
	"elevenstore/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// SessionServiceParams holds dependencies for the session service, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Identity   service.IdentityVerifier `optional:"true"`
	Validator  service.TokenValidator   `optional:"true"`
	Pusher     service.PushSender       `optional:"true"`
	Orders     repository.OrderRepository
	Promotions repository.PromotionRepository
	Users      repository.UserRepository
	Devices    repository.DeviceStore
	Clock      func() time.Time `optional:"true"`
}

// sessionRuntime is everything one open session owns.
type sessionRuntime struct {
	session   *entity.Session
	ctx       context.Context
	cancel    context.CancelFunc
	registrar usecase.PushRegistrar
	bootstrap *bootstrap
}

type sessionService struct {
	cfg        *config.Config
	logger     *slog.Logger
	identity   service.IdentityVerifier
	validator  service.TokenValidator
	pusher     service.PushSender
	orders     repository.OrderRepository
	promotions repository.PromotionRepository
	users      repository.UserRepository
	devices    repository.DeviceStore
	now        func() time.Time

	mu       sync.RWMutex
	sessions map[string]*sessionRuntime
	byUser   map[string]map[string]struct{}
}

// NewSessionService creates the service hosting page notification sessions
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	now := params.Clock
	if now == nil {
		now = time.Now
	}

	return &sessionService{
		cfg:        params.Config,
		logger:     params.Logger,
		identity:   params.Identity,
		validator:  params.Validator,
		pusher:     params.Pusher,
		orders:     params.Orders,
		promotions: params.Promotions,
		users:      params.Users,
		devices:    params.Devices,
		now:        now,
		sessions:   make(map[string]*sessionRuntime),
		byUser:     make(map[string]map[string]struct{}),
	}
}

// Open builds a session for the page. The session lives until Close or until ctx ends.
func (s *sessionService) Open(ctx context.Context, req *usecase.SessionRequest, page service.Page) (*entity.Session, error) {
	session := &entity.Session{
		ID:       uuid.New().String(),
		DeviceID: req.DeviceID,
		Guest:    true,
	}

	if req.IDToken != "" {
		if s.identity == nil {
			return nil, errors.WithStack(domainerrors.ErrInvalidIDToken.WithDetails("identity verification unavailable"))
		}

		identity, err := s.identity.VerifyIDToken(ctx, req.IDToken)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrInvalidIDToken, err.Error())
		}

		session.UserID = identity.UserID
		session.Guest = identity.Guest
		session.AdminClaim = identity.Admin
	}

	device := s.loadDevice(ctx, req.DeviceID)
	session.StoredAdmin = device.Admin

	if session.AdminClaim != nil && req.DeviceID != "" && *session.AdminClaim != device.Admin {
		if err := s.devices.SaveAdmin(ctx, req.DeviceID, *session.AdminClaim); err != nil {
			s.logger.Warn("[Session] Failed to remember admin flag", slog.Any("error", err))
		}
	}

	runtime := s.buildRuntime(ctx, session, page, device)

	s.mu.Lock()
	s.sessions[session.ID] = runtime
	if session.UserID != "" {
		if s.byUser[session.UserID] == nil {
			s.byUser[session.UserID] = make(map[string]struct{})
		}
		s.byUser[session.UserID][session.ID] = struct{}{}
	}
	s.mu.Unlock()

	s.logger.Info("[Session] Opened",
		slog.String("session_id", session.ID),
		slog.String("user_id", session.UserID),
		slog.Bool("guest", session.Guest),
		slog.Bool("admin", session.IsAdmin()),
	)

	return session, nil
}

func (s *sessionService) loadDevice(ctx context.Context, deviceID string) *entity.DeviceState {
	if deviceID == "" {
		return &entity.DeviceState{Permission: entity.PermissionDefault}
	}

	device, err := s.devices.Load(ctx, deviceID)
	if err != nil {
		s.logger.Warn("[Session] Failed to load device state",
			slog.String("device_id", deviceID),
			slog.Any("error", err),
		)

		return &entity.DeviceState{Permission: entity.PermissionDefault}
	}

	return device
}

func (s *sessionService) buildRuntime(ctx context.Context, session *entity.Session, page service.Page, device *entity.DeviceState) *sessionRuntime {
	// Watchers outlive the request that opened the session; Close ends them.
	sessionCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	logger := s.logger.With(slog.String("session_id", session.ID))

	gate := NewPermissionGate(logger, page, s.devices, session.DeviceID, device.Permission)

	fanout := NewFanoutService(logger, FanoutChannels{
		Toaster:  page,
		Notifier: page,
		Audio:    page,
	}, gate, FanoutOptions{
		DefaultIcon: s.cfg.Notification.DefaultIcon,
		Vibrate:     s.cfg.Notification.Vibrate,
	})

	var vapidKey string
	if s.cfg.Firebase != nil {
		vapidKey = s.cfg.Firebase.VapidKey
	}

	registrar := NewPushRegistrar(logger, PushRegistrarDeps{
		Session:   session,
		Gate:      gate,
		Tokens:    page,
		Validator: s.validator,
		Users:     s.users,
		Toaster:   page,
		Refresher: page,
		VapidKey:  vapidKey,
	})

	customer := []usecase.Watcher{
		NewOrderStatusWatcher(logger, session, s.orders, fanout, page),
		NewPromotionWatcher(logger, s.promotions, fanout,
			s.cfg.Watchers.PromotionFreshness, s.cfg.Notification.PromotionToastDuration, s.now),
	}
	admin := []usecase.Watcher{
		NewAdminOrderWatcher(logger, s.orders, fanout, s.cfg.Watchers.AdminFreshness, s.now),
	}

	return &sessionRuntime{
		session:   session,
		ctx:       sessionCtx,
		cancel:    cancel,
		registrar: registrar,
		bootstrap: newBootstrap(logger, session, registrar, customer, admin),
	}
}

// InitAll starts the session's pipeline; repeated signals are no-ops.
func (s *sessionService) InitAll(_ context.Context, sessionID string) error {
	runtime, ok := s.lookup(sessionID)
	if !ok {
		return errors.WithStack(domainerrors.ErrSessionNotFound)
	}

	runtime.registrar.Initialize(runtime.ctx)
	runtime.bootstrap.InitAll(runtime.ctx)

	return nil
}

// Close tears the session down and waits for its watchers.
func (s *sessionService) Close(sessionID string) {
	s.mu.Lock()
	runtime, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
		if userSessions := s.byUser[runtime.session.UserID]; userSessions != nil {
			delete(userSessions, sessionID)
			if len(userSessions) == 0 {
				delete(s.byUser, runtime.session.UserID)
			}
		}
	}
	s.mu.Unlock()

	if !ok {
		return
	}

	runtime.cancel()
	runtime.bootstrap.Shutdown()

	s.logger.Info("[Session] Closed", slog.String("session_id", sessionID))
}

// DispatchForeground routes a push message to the user's open sessions.
// A user without an open page gets it as a device push instead.
func (s *sessionService) DispatchForeground(ctx context.Context, msg *entity.ForegroundMessage) int {
	s.mu.RLock()
	targets := make([]*sessionRuntime, 0, len(s.byUser[msg.UserID]))
	for id := range s.byUser[msg.UserID] {
		targets = append(targets, s.sessions[id])
	}
	s.mu.RUnlock()

	payload := msg.Payload()
	for _, runtime := range targets {
		runtime.registrar.HandleForegroundMessage(ctx, payload)
	}

	if len(targets) == 0 {
		s.pushToDevice(ctx, msg.UserID, payload)
	}

	return len(targets)
}

func (s *sessionService) pushToDevice(ctx context.Context, userID string, payload *entity.PushPayload) {
	if s.pusher == nil {
		s.logger.Debug("[Session] No open session for foreground message", slog.String("user_id", userID))

		return
	}

	token, err := s.users.FindPushToken(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrPushTokenNotFound) {
			s.logger.Warn("[Session] Failed to look up push token", slog.String("user_id", userID), slog.Any("error", err))
		}

		return
	}

	if err := s.pusher.SendPush(ctx, token.Token, payload); err != nil {
		s.logger.Warn("[Session] Device push failed", slog.String("user_id", userID), slog.Any("error", err))

		return
	}

	s.logger.Info("[Session] Delivered message as device push", slog.String("user_id", userID))
}

func (s *sessionService) lookup(sessionID string) (*sessionRuntime, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runtime, ok := s.sessions[sessionID]

	return runtime, ok
}
