package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"elevenstore/config"
	deliverycontext "elevenstore/internal/delivery/context"
	"elevenstore/internal/domain/constants"
	"elevenstore/internal/infra/pubsub"
	"elevenstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const pubSubIssuer = "accounts.google.com"

// TokenValidator verifies a Google-signed OIDC token for an audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Sessions usecase.SessionUsecase
}

// PushHandler accepts Pub/Sub push deliveries of foreground messages.
type PushHandler struct {
	verifyPushAuth bool
	validate       TokenValidator
	logger         *slog.Logger
	sessions       usecase.SessionUsecase
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validate:       idtoken.Validate,
		logger:         params.Logger,
		sessions:       params.Sessions,
	}
}

// HandlePush decodes the envelope and routes the message to the user's pages.
// Malformed messages are acknowledged with 400 so Pub/Sub does not redeliver them forever.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Push] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Push] Failed to parse push envelope", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	if err != nil {
		h.logger.Error("[Push] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	msg, err := usecase.ParseForegroundMessage(data)
	if err != nil {
		h.logger.Error("[Push] Invalid foreground message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &envelope)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	delivered := h.sessions.DispatchForeground(ctx, msg)

	reqLogger.Info("[Push] Foreground message dispatched",
		slog.String("message_id", envelope.Message.MessageID),
		slog.String("user_id", msg.UserID),
		slog.Int("sessions", delivered),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the message attribute, then the inbound header, then a new UUID
func extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope) string {
	if requestID := envelope.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken checks the OIDC token Pub/Sub attaches to authenticated push requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != pubSubIssuer && payload.Issuer != "https://"+pubSubIssuer {
		return errors.Errorf("unexpected token issuer: %s", payload.Issuer)
	}

	return nil
}
