package handler

import (
	"log/slog"
	"net/http"

	"lifeline/internal/delivery/http/middleware"
	"lifeline/internal/delivery/http/response"
	"lifeline/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler holds dependencies for report export handlers
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// ExportHistory renders the caller's donor history as a PDF on the server
func (h *ReportHandler) ExportHistory(c echo.Context) error {
	account, ok := middleware.GetAccount(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_INVALID", "User not logged in")
	}

	result, err := h.reportUC.ExportHistory(c.Request().Context(), account)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}
