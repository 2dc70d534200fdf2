package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "belleza/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m.HandleHTTPError(err, c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError_AppError(t *testing.T) {
	t.Parallel()

	rec, body := handleError(t, domainerrors.ErrPaymentNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Payment not found", body["message"])
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	t.Parallel()

	// Wrapping for context must not change what the client sees.
	err := errors.Wrap(domainerrors.ErrPaymentNotFound.WrapMessage("cannot confirm unknown payment"), "confirm failed")
	rec, body := handleError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Payment not found", body["message"])
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	t.Parallel()

	rec, body := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "bad input"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad input", body["message"])
}

func TestHandleHTTPError_UnknownErrorHidesDetail(t *testing.T) {
	t.Parallel()

	rec, body := handleError(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", body["message"])
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
