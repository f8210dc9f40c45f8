package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lifeline/internal/delivery/http/validator"
	"lifeline/internal/domain/entity"
	mockSvc "lifeline/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDonorHandler_Register_ValidationError(t *testing.T) {
	e := newTestEcho()
	body := `{"name":"Asha2","address":"12 Park Road","mobile":"9876543210","age":"26","blood_group":"A+"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/donors", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("account", &entity.Account{UID: "user-1"})

	h := &DonorHandler{logger: newDiscardLogger()}
	err := h.Register(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestDonorHandler_Register_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/donors", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := &DonorHandler{logger: newDiscardLogger()}
	err := h.Register(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_INVALID")
}

func TestProfileHandler_GetProfile(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("account", &entity.Account{UID: "user-1"})

	identitySvc := mockSvc.NewMockIdentityService(t)
	identitySvc.EXPECT().
		FetchAccount(mock.Anything, "user-1").
		Return(&entity.Account{
			UID:   "user-1",
			Email: "asha@example.com",
		}, nil)

	h := &ProfileHandler{identitySvc: identitySvc, logger: newDiscardLogger()}
	err := h.GetProfile(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "asha@example.com")
	assert.Contains(t, rec.Body.String(), "Joined")
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
