package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	// KeyIDToken is the echo.Context key holding the caller's raw ID token.
	KeyIDToken = "id_token"

	idTokenQueryParam = "idToken"
	bearerPrefix      = "Bearer "
)

// AuthMiddleware extracts the storefront ID token. Verification happens when
// the session is opened, since a missing token is a valid guest session.
type AuthMiddleware struct{}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{}
}

// ExtractIDToken reads a bearer token or, for EventSource clients that cannot
// set headers, the idToken query parameter.
func (m *AuthMiddleware) ExtractIDToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.QueryParam(idTokenQueryParam)

		if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token format, must be Bearer token")
			}
			token = strings.TrimPrefix(authHeader, bearerPrefix)
		}

		c.Set(KeyIDToken, token)

		return next(c)
	}
}

// IDToken returns the token stored by ExtractIDToken; empty for guests.
func IDToken(c echo.Context) string {
	token, _ := c.Get(KeyIDToken).(string)

	return token
}
