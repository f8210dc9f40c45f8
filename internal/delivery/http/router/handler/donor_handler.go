// Package handler contains the HTTP request handlers.
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"lifeline/internal/delivery/http/middleware"
	"lifeline/internal/delivery/http/response"
	"lifeline/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DonorHandlerParams holds dependencies for DonorHandler, injected by Fx.
type DonorHandlerParams struct {
	fx.In

	DonorUC usecase.DonorUsecase
	Logger  *slog.Logger
}

// DonorHandler holds dependencies for donor-record handlers
type DonorHandler struct {
	donorUC usecase.DonorUsecase
	logger  *slog.Logger
}

// NewDonorHandler is the constructor for DonorHandler
func NewDonorHandler(params DonorHandlerParams) *DonorHandler {
	return &DonorHandler{
		donorUC: params.DonorUC,
		logger:  params.Logger,
	}
}

// RegisterDonorRequest represents the request body for registering a donor
type RegisterDonorRequest struct {
	Name       string `json:"name" validate:"required,donorname"`
	Address    string `json:"address" validate:"required"`
	Mobile     string `json:"mobile" validate:"required,len=10,numeric"`
	Age        string `json:"age" validate:"required,donorage"`
	BloodGroup string `json:"blood_group" validate:"required,oneof=A+ A- B+ B- O+ O- AB+ AB-"`
}

// UpdateDonorRequest represents the request body for editing a donor record
type UpdateDonorRequest struct {
	Name       *string `json:"name" validate:"omitempty,donorname"`
	BloodGroup *string `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- O+ O- AB+ AB-"`
	Mobile     *string `json:"mobile" validate:"omitempty,len=10,numeric"`
}

// Register handles donor registration
func (h *DonorHandler) Register(c echo.Context) error {
	account, ok := middleware.GetAccount(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_INVALID", "User not logged in")
	}

	var req RegisterDonorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donor input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.RegisterDonorInput{
		Name:       req.Name,
		Address:    req.Address,
		Mobile:     req.Mobile,
		Age:        req.Age,
		BloodGroup: req.BloodGroup,
	}

	donor, err := h.donorUC.Register(c.Request().Context(), account.UID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, donor)
}

// History handles retrieving the caller's donor records
func (h *DonorHandler) History(c echo.Context) error {
	account, ok := middleware.GetAccount(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_INVALID", "User not logged in")
	}

	donors, err := h.donorUC.History(c.Request().Context(), account.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donors)
}

// WatchHistory streams the caller's donor records as server-sent events.
// Every event carries the full record set; clients replace their view
// with each snapshot rather than merging.
func (h *DonorHandler) WatchHistory(c echo.Context) error {
	account, ok := middleware.GetAccount(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_INVALID", "User not logged in")
	}

	ctx := c.Request().Context()
	snapshots, err := h.donorUC.WatchHistory(ctx, account.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot, ok := <-snapshots:
			if !ok {
				return nil
			}

			payload, err := json.Marshal(snapshot)
			if err != nil {
				h.logger.Error("failed to encode history snapshot", slog.Any("error", err))

				return nil
			}

			if _, err := fmt.Fprintf(res, "event: history\ndata: %s\n\n", payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

// Update handles editing a donor record
func (h *DonorHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.BadRequest(c, "INVALID_ID", "Missing donor record ID")
	}

	var req UpdateDonorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donor input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateDonorInput{
		Name:       req.Name,
		BloodGroup: req.BloodGroup,
		Mobile:     req.Mobile,
	}

	if err := h.donorUC.Update(c.Request().Context(), id, input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Donor record updated successfully"})
}

// Delete handles removing a single donor record
func (h *DonorHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.BadRequest(c, "INVALID_ID", "Missing donor record ID")
	}

	if err := h.donorUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Donor record deleted successfully"})
}

// PurgeHistory handles deleting the caller's entire donor history
func (h *DonorHandler) PurgeHistory(c echo.Context) error {
	account, ok := middleware.GetAccount(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_INVALID", "User not logged in")
	}

	deleted, err := h.donorUC.PurgeHistory(c.Request().Context(), account.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Donor history deleted successfully",
		"deleted": deleted,
	})
}

// ContactQR serves a donor's contact card as a QR code PNG
func (h *DonorHandler) ContactQR(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.BadRequest(c, "INVALID_ID", "Missing donor record ID")
	}

	png, err := h.donorUC.ContactQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
