package v1

import (
	"errors"
	"log"
	"net/http"
	"net/mail"

	"github.com/labstack/echo/v4"

	"github.com/certibot/certibot/internal/domain"
	"github.com/certibot/certibot/internal/service"
)

// Register creates a new account.
// POST /api/auth/register
func (h *Handler) Register(c echo.Context) error {
	var req domain.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if req.Username == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Username is required"})
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid email address"})
	}
	if len(req.Password) < 6 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Password must be at least 6 characters"})
	}

	user, token, err := h.service.Register(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "User already exists with this email"})
		}
		log.Printf("ERROR: registration failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Registration failed"})
	}

	return c.JSON(http.StatusCreated, domain.AuthResponse{
		Message: "User registered successfully",
		User:    user,
		Token:   token,
	})
}

// Login verifies credentials and issues a token.
// POST /api/auth/login
func (h *Handler) Login(c echo.Context) error {
	var req domain.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Email and password are required"})
	}

	user, token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid email or password"})
		}
		log.Printf("ERROR: login failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Login failed"})
	}

	return c.JSON(http.StatusOK, domain.AuthResponse{
		Message: "Login successful",
		User:    user,
		Token:   token,
	})
}

// CurrentUser returns the authenticated user.
// GET /api/auth/user
func (h *Handler) CurrentUser(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Not authenticated"})
	}
	return c.JSON(http.StatusOK, map[string]*domain.User{"user": user})
}

// ListUsers returns all registered users. Admin only.
// GET /api/admin/users
func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		log.Printf("ERROR: failed to list users: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to get users"})
	}
	return c.JSON(http.StatusOK, map[string][]domain.User{"users": users})
}
