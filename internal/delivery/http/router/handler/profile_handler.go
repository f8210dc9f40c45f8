package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lifeline/internal/delivery/http/middleware"
	"lifeline/internal/delivery/http/response"
	"lifeline/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	IdentitySvc service.IdentityService
	Logger      *slog.Logger
}

// ProfileHandler holds dependencies for account profile handlers
type ProfileHandler struct {
	identitySvc service.IdentityService
	logger      *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		identitySvc: params.IdentitySvc,
		logger:      params.Logger,
	}
}

// ProfileResponse is the account profile view
type ProfileResponse struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	Joined      string `json:"joined"`
}

// GetProfile serves the caller's account profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	account, ok := middleware.GetAccount(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_INVALID", "User not logged in")
	}

	// Token claims lack the creation time; load the full account record.
	full, err := h.identitySvc.FetchAccount(c.Request().Context(), account.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{
		Email:       full.Email,
		DisplayName: full.DisplayName,
		Joined:      full.JoinedLabel(time.Now()),
	})
}
