package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "elevenstore/internal/delivery/context"
	domainerrors "elevenstore/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_CarriesSessionMeta(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s1/replies", nil)
	req = req.WithContext(deliverycontext.WithSessionID(req.Context(), "s1"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-1")

	require.NoError(t, AppError(c, domainerrors.ErrCallNotFound.WithDetails("c-9")))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "CALL_NOT_FOUND", body.Error.Code)
	assert.Equal(t, "c-9", body.Error.Details)
	assert.Equal(t, &domainerrors.MetaInfo{RequestID: "req-1", SessionID: "s1"}, body.Meta)
}

func TestSuccess_OmitsSessionOutsideSessionRoutes(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	require.NoError(t, Success(c, http.StatusOK, map[string]int{"sessions": 0}))

	assert.NotContains(t, rec.Body.String(), "session_id")
}
