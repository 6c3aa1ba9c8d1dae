// Package identity verifies storefront ID tokens against Firebase Authentication.
package identity

import (
	"context"

	"elevenstore/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

const (
	anonymousProvider = "anonymous"
	adminClaim        = "admin"
)

type firebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier creates an identity verifier backed by the auth client
func NewFirebaseVerifier(client *auth.Client) service.IdentityVerifier {
	return &firebaseVerifier{client: client}
}

// VerifyIDToken checks signature and expiry and extracts the guest and admin markers
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "verify ID token")
	}

	return identityFromToken(token), nil
}

func identityFromToken(token *auth.Token) *service.Identity {
	identity := &service.Identity{
		UserID: token.UID,
		Guest:  token.Firebase.SignInProvider == anonymousProvider,
	}

	if raw, ok := token.Claims[adminClaim]; ok {
		if admin, ok := raw.(bool); ok {
			identity.Admin = &admin
		}
	}

	return identity
}
