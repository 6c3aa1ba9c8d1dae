package service

import (
	"context"
)

// Identity is the verified caller behind a session.
type Identity struct {
	UserID string
	Guest  bool
	// Admin is nil when the identity carries no role claim.
	Admin *bool
}

// IdentityVerifier verifies an ID token issued by the authentication backend.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}
