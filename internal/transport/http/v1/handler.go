// Package v1 provides the HTTP handlers for the certibot API.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/certibot/certibot/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers API routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Authentication
	e.POST("/api/auth/register", h.Register)
	e.POST("/api/auth/login", h.Login)
	e.GET("/api/auth/user", h.CurrentUser, h.RequireAuth)

	// Admin
	e.GET("/api/admin/users", h.ListUsers, h.RequireAuth, h.RequireAdmin)

	// Chat
	e.POST("/api/chat/session", h.CreateSession, h.OptionalAuth)
	e.POST("/api/chat/message", h.SendMessage)
	e.GET("/api/chat/welcome", h.Welcome)
	e.GET("/api/chat/:session_id/messages", h.GetSessionMessages)

	// Certification catalog
	e.GET("/api/certifications", h.ListCertifications)
	e.GET("/api/certifications/search", h.SearchCertifications)
	e.GET("/api/certifications/category/:category", h.CertificationsByCategory)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
