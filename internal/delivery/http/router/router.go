// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/Fire-Devils/filaman-system/internal/delivery/http/middleware"
	"github.com/Fire-Devils/filaman-system/internal/delivery/http/router/handler"
	"github.com/Fire-Devils/filaman-system/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
	CSRFMiddleware *middleware.CSRFMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	deviceHandler  *handler.DeviceHandler
	authMiddleware *middleware.AuthMiddleware
	csrfMiddleware *middleware.CSRFMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		deviceHandler:  params.DeviceHandler,
		authMiddleware: params.AuthMiddleware,
		csrfMiddleware: params.CSRFMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint, allowlisted from authentication
	e.GET("/health", handler.HealthCheck)

	// Identity resolution and CSRF guarding apply to everything below.
	e.Use(r.authMiddleware.Resolve)
	e.Use(r.csrfMiddleware.Guard)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me)
	}

	// Device routes
	deviceGroup := e.Group("/api/v1/devices")
	{
		// Registration authenticates with a one-time code, not a token.
		deviceGroup.POST("/register", r.deviceHandler.Register)

		// Device-token endpoints, called by the devices themselves.
		deviceOnly := r.authMiddleware.RequireAuthType(entity.AuthTypeDevice)
		deviceGroup.POST("/heartbeat", r.deviceHandler.Heartbeat, deviceOnly)
		deviceGroup.POST("/rfid-result", r.deviceHandler.RfidResult, deviceOnly)
		deviceGroup.POST("/scale/weight", r.deviceHandler.ScaleWeight, deviceOnly)

		// Frontend-facing endpoints, driven by a logged-in user or API key.
		userOnly := r.authMiddleware.RequireAuthType(entity.AuthTypeSession, entity.AuthTypeAPIKey)
		deviceGroup.GET("/active", r.deviceHandler.ListActive, userOnly)
		deviceGroup.POST("/:id/write-tag", r.deviceHandler.WriteTag, userOnly)
		deviceGroup.GET("/:id/write-status", r.deviceHandler.WriteStatus, userOnly)
	}
}
