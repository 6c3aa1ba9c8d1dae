// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"elevenstore/config"
	"elevenstore/internal/delivery/http/middleware"
	"elevenstore/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	HealthHandler  *handler.HealthHandler
	SessionHandler *handler.SessionHandler
	PushHandler    *handler.PushHandler
	AuthMiddleware *middleware.AuthMiddleware
}

type router struct {
	chimePath      string
	healthHandler  *handler.HealthHandler
	sessionHandler *handler.SessionHandler
	pushHandler    *handler.PushHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		chimePath:      params.Config.Notification.ChimePath,
		healthHandler:  params.HealthHandler,
		sessionHandler: params.SessionHandler,
		pushHandler:    params.PushHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)
	e.GET(r.chimePath, r.sessionHandler.Chime)

	v1 := e.Group("/v1")

	sessions := v1.Group("/sessions")
	{
		sessions.GET("/stream", r.sessionHandler.Stream, r.authMiddleware.ExtractIDToken)
		sessions.POST("/:id/replies", r.sessionHandler.Reply)
		sessions.POST("/:id/lifecycle", r.sessionHandler.Lifecycle)
	}

	// Pub/Sub push subscription endpoint
	v1.POST("/push", r.pushHandler.HandlePush)
}
