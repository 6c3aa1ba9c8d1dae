package identity

import (
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityFromToken(t *testing.T) {
	t.Run("password user with admin claim", func(t *testing.T) {
		token := &auth.Token{
			UID:      "u-1",
			Firebase: auth.FirebaseInfo{SignInProvider: "password"},
			Claims:   map[string]any{"admin": true},
		}

		identity := identityFromToken(token)

		assert.Equal(t, "u-1", identity.UserID)
		assert.False(t, identity.Guest)
		require.NotNil(t, identity.Admin)
		assert.True(t, *identity.Admin)
	})

	t.Run("anonymous user is a guest", func(t *testing.T) {
		token := &auth.Token{
			UID:      "anon",
			Firebase: auth.FirebaseInfo{SignInProvider: "anonymous"},
		}

		identity := identityFromToken(token)

		assert.True(t, identity.Guest)
		assert.Nil(t, identity.Admin)
	})

	t.Run("non boolean admin claim is ignored", func(t *testing.T) {
		token := &auth.Token{
			UID:    "u-2",
			Claims: map[string]any{"admin": "yes"},
		}

		assert.Nil(t, identityFromToken(token).Admin)
	})
}
