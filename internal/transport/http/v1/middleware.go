package v1

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/certibot/certibot/internal/domain"
)

// userContextKey is the echo context key holding the authenticated user.
const userContextKey = "auth.user"

// RequireAuth rejects requests without a valid bearer token.
func (h *Handler) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Access token required"})
		}

		user, err := h.service.Authenticate(c.Request().Context(), token)
		if err != nil {
			return c.JSON(http.StatusForbidden, map[string]string{"message": "Invalid or expired token"})
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

// OptionalAuth attaches the user when a valid bearer token is present and
// proceeds anonymously otherwise.
func (h *Handler) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token != "" {
			if user, err := h.service.Authenticate(c.Request().Context(), token); err == nil {
				c.Set(userContextKey, user)
			}
		}
		return next(c)
	}
}

// RequireAdmin enforces the admin access policy. Must run after RequireAuth.
func (h *Handler) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := currentUser(c)
		if user == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Authentication required"})
		}
		if err := h.service.AuthorizeAdmin(c.Request().Context(), user); err != nil {
			return c.JSON(http.StatusForbidden, map[string]string{"message": "Admin access required"})
		}
		return next(c)
	}
}

// currentUser returns the authenticated user from the context, or nil.
func currentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
