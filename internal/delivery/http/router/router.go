// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"infinitybasket/internal/delivery/http/middleware"
	"infinitybasket/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CatalogHandler *handler.CatalogHandler
	InboxHandler   *handler.InboxHandler
	ContactHandler *handler.ContactHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	catalogHandler *handler.CatalogHandler
	inboxHandler   *handler.InboxHandler
	contactHandler *handler.ContactHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		catalogHandler: params.CatalogHandler,
		inboxHandler:   params.InboxHandler,
		contactHandler: params.ContactHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	requireAdmin := r.authMiddleware.RequireAdmin

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Admin authentication routes
	adminGroup := e.Group("/admin")
	{
		adminGroup.POST("/login", r.authHandler.Login)
		adminGroup.POST("/reset-password-request", r.authHandler.RequestPasswordReset)
		adminGroup.POST("/reset-password", r.authHandler.ResetPassword, requireAdmin)
		adminGroup.POST("/reset-password/confirm", r.authHandler.ConfirmPasswordReset)
	}

	// Product catalog routes; the reorder route is registered before the
	// parameterized ones so "reorder" is never captured as an id.
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.List)
		productGroup.POST("", r.catalogHandler.Create, requireAdmin)
		productGroup.PUT("/reorder", r.catalogHandler.Reorder, requireAdmin)
		productGroup.GET("/:id", r.catalogHandler.Get)
		productGroup.PUT("/:id", r.catalogHandler.Update, requireAdmin)
		productGroup.DELETE("/:id", r.catalogHandler.Delete, requireAdmin)
		productGroup.PUT("/:id/toggle-featured", r.catalogHandler.ToggleFeatured, requireAdmin)
	}

	// Contact details plus the legacy email-only contact relay
	e.GET("/contact/details", r.contactHandler.GetDetails)
	e.PUT("/contact/details", r.contactHandler.UpdateDetails, requireAdmin)
	e.POST("/contact", r.contactHandler.RelayForm)

	// Enquiry inbox routes
	messageGroup := e.Group("/messages")
	{
		messageGroup.POST("", r.inboxHandler.Submit)
		messageGroup.GET("", r.inboxHandler.List, requireAdmin)
		messageGroup.DELETE("/multiple", r.inboxHandler.DeleteMany, requireAdmin)
		messageGroup.POST("/:id/reply", r.inboxHandler.Reply, requireAdmin)
	}
}
