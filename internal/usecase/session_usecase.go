package usecase

import (
	"context"
	"encoding/json"

	"elevenstore/internal/domain/entity"
	domainerrors "elevenstore/internal/domain/errors"
	"elevenstore/internal/domain/service"
	"elevenstore/internal/errors"
)

// SessionRequest carries what a page presents when it opens a session.
type SessionRequest struct {
	IDToken  string // Empty for guests.
	DeviceID string
}

// ParseForegroundMessage decodes a foreground message published by the backend.
func ParseForegroundMessage(raw []byte) (*entity.ForegroundMessage, error) {
	var msg entity.ForegroundMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidPushMessage.WithDetails(err.Error()))
	}
	if msg.UserID == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidPushMessage.WithDetails("missing userId"))
	}

	return &msg, nil
}

// SessionUsecase hosts notification sessions for connected pages.
type SessionUsecase interface {
	// Open verifies the caller and builds the session's notification pipeline.
	Open(ctx context.Context, req *SessionRequest, page service.Page) (*entity.Session, error)

	// InitAll handles the page's ready/load signals; safe to call repeatedly.
	InitAll(ctx context.Context, sessionID string) error

	// Close stops the session's watchers and waits for them to exit.
	Close(sessionID string)

	// DispatchForeground hands a push message to every open session of its user.
	// It returns the number of sessions that received it.
	DispatchForeground(ctx context.Context, msg *entity.ForegroundMessage) int
}
