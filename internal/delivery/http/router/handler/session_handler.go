package handler

import (
	"bufio"
	"io"
	"log/slog"
	"net/http"
	"time"

	"elevenstore/config"
	deliverycontext "elevenstore/internal/delivery/context"
	"elevenstore/internal/delivery/http/middleware"
	"elevenstore/internal/delivery/http/response"
	"elevenstore/internal/delivery/sse"
	"elevenstore/internal/domain/entity"
	"elevenstore/internal/infra/audio"
	"elevenstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const heartbeatInterval = 25 * time.Second

// StreamRequest is what a page reports about itself when it connects.
type StreamRequest struct {
	DeviceID      string `query:"deviceId"`
	Permission    string `query:"permission"`
	Notifications bool   `query:"notifications"`
	Messaging     bool   `query:"messaging"`
}

// LifecycleRequest is a page lifecycle signal.
type LifecycleRequest struct {
	Event string `json:"event" validate:"required,oneof=ready load"`
}

type SessionHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Sessions usecase.SessionUsecase
	Registry *sse.Registry
}

// SessionHandler serves the page-facing session endpoints.
type SessionHandler struct {
	logger      *slog.Logger
	sessions    usecase.SessionUsecase
	registry    *sse.Registry
	chimePath   string
	eventBuffer int
	chime       []byte
}

func NewSessionHandler(params SessionHandlerParams) (*SessionHandler, error) {
	chime, err := audio.DefaultChime.WAV()
	if err != nil {
		return nil, err
	}

	return &SessionHandler{
		logger:      params.Logger,
		sessions:    params.Sessions,
		registry:    params.Registry,
		chimePath:   params.Config.Notification.ChimePath,
		eventBuffer: params.Config.Session.EventBuffer,
		chime:       chime,
	}, nil
}

// Stream opens a notification session and relays its page effects until the client disconnects.
func (h *SessionHandler) Stream(c echo.Context) error {
	var req StreamRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}

	bridge := sse.NewBridge(sse.Capabilities{
		Notifications: req.Notifications,
		Messaging:     req.Messaging,
		Permission:    entity.ParsePermissionState(req.Permission),
	}, h.chimePath, h.eventBuffer)
	defer bridge.Close()

	ctx := c.Request().Context()
	session, err := h.sessions.Open(ctx, &usecase.SessionRequest{
		IDToken:  middleware.IDToken(c),
		DeviceID: req.DeviceID,
	}, bridge)
	if err != nil {
		return err
	}

	h.registry.Add(session.ID, bridge)
	defer func() {
		h.registry.Remove(session.ID)
		h.sessions.Close(session.ID)
	}()

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(slog.String("session_id", session.ID))

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	w := bufio.NewWriter(res)
	flush := func() error {
		if err := w.Flush(); err != nil {
			return errors.WithStack(err)
		}
		res.Flush()

		return nil
	}

	hello := sse.Event{Type: sse.EventSession, Data: map[string]any{
		"sessionId": session.ID,
		"userId":    session.UserID,
		"guest":     session.Guest,
		"admin":     session.IsAdmin(),
	}}
	if _, err := hello.WriteTo(w); err != nil {
		return err
	}
	if err := flush(); err != nil {
		return err
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("[Session] Page disconnected")

			return nil
		case <-bridge.Done():
			return nil
		case <-heartbeat.C:
			if _, err := io.WriteString(w, ": ping\n\n"); err != nil {
				return errors.WithStack(err)
			}
		case evt := <-bridge.Events():
			if _, err := evt.WriteTo(w); err != nil {
				logger.Warn("[Session] Failed to write event", slog.String("type", evt.Type), slog.Any("error", err))

				return nil
			}
		}

		if err := flush(); err != nil {
			logger.Info("[Session] Stream closed", slog.Any("error", err))

			return nil
		}
	}
}

// Reply resolves a pending permission or token call.
func (h *SessionHandler) Reply(c echo.Context) error {
	var reply sse.Reply
	if err := c.Bind(&reply); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&reply); err != nil {
		return err
	}

	bridge, err := h.registry.Get(c.Param("id"))
	if err != nil {
		return err
	}

	if err := bridge.Resolve(reply); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Lifecycle runs the session bootstrap on the page's ready and load signals.
func (h *SessionHandler) Lifecycle(c echo.Context) error {
	var req LifecycleRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sessionID := c.Param("id")
	ctx := deliverycontext.WithSessionID(c.Request().Context(), sessionID)
	c.SetRequest(c.Request().WithContext(ctx))
	if err := h.sessions.InitAll(ctx, sessionID); err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, map[string]string{
		"sessionId": sessionID,
		"event":     req.Event,
	})
}

// Chime serves the synthesized notification sound.
func (h *SessionHandler) Chime(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Blob(http.StatusOK, "audio/wav", h.chime)
}
