// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lifeline/config"
	"lifeline/internal/delivery/http/middleware"
	"lifeline/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DonorHandler     *handler.DonorHandler
	SearchHandler    *handler.SearchHandler
	InventoryHandler *handler.InventoryHandler
	ReportHandler    *handler.ReportHandler
	ProfileHandler   *handler.ProfileHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	donorHandler     *handler.DonorHandler
	searchHandler    *handler.SearchHandler
	inventoryHandler *handler.InventoryHandler
	reportHandler    *handler.ReportHandler
	profileHandler   *handler.ProfileHandler
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		donorHandler:     params.DonorHandler,
		searchHandler:    params.SearchHandler,
		inventoryHandler: params.InventoryHandler,
		reportHandler:    params.ReportHandler,
		profileHandler:   params.ProfileHandler,
		authMiddleware:   params.AuthMiddleware,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes, all require a valid session
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	// Donor record routes
	donorsGroup := apiV1.Group("/donors")
	{
		donorsGroup.POST("", r.donorHandler.Register)
		donorsGroup.GET("/history", r.donorHandler.History)
		donorsGroup.GET("/history/watch", r.donorHandler.WatchHistory)
		donorsGroup.DELETE("/history", r.donorHandler.PurgeHistory)
		donorsGroup.GET("/search", r.searchHandler.Search)
		donorsGroup.PUT("/:id", r.donorHandler.Update)
		donorsGroup.DELETE("/:id", r.donorHandler.Delete)
		donorsGroup.GET("/:id/qrcode", r.donorHandler.ContactQR)
	}

	// Blood stock dashboard
	inventoryGroup := apiV1.Group("/inventory")
	{
		inventoryGroup.GET("/blood-stock", r.inventoryHandler.BloodStock)
	}

	// Report export
	reportsGroup := apiV1.Group("/reports")
	{
		reportsGroup.POST("/history", r.reportHandler.ExportHistory)
	}

	// Account profile
	apiV1.GET("/profile", r.profileHandler.GetProfile)
}
