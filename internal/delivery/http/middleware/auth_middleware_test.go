package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractIDToken(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		header  string
		want    string
		wantErr bool
	}{
		{name: "guest", target: "/", want: ""},
		{name: "query parameter", target: "/?idToken=q-tok", want: "q-tok"},
		{name: "bearer header wins", target: "/?idToken=q-tok", header: "Bearer h-tok", want: "h-tok"},
		{name: "malformed header", target: "/", header: "Basic abc", wantErr: true},
	}

	m := NewAuthMiddleware()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			var got string
			err := m.ExtractIDToken(func(c echo.Context) error {
				got = IDToken(c)

				return nil
			})(c)

			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
