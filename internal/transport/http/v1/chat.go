package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/certibot/certibot/internal/domain"
	"github.com/certibot/certibot/internal/service"
)

// maxMessageLength caps the length of a chat message body.
const maxMessageLength = 1000

// CreateSession allocates a fresh chat session. With a valid bearer token
// the session is associated with the user; anonymous sessions are allowed.
// POST /api/chat/session
func (h *Handler) CreateSession(c echo.Context) error {
	var userID *int64
	if user := currentUser(c); user != nil {
		userID = &user.ID
	}

	session, err := h.service.CreateSession(c.Request().Context(), userID)
	if err != nil {
		log.Printf("ERROR: session creation failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to create chat session"})
	}

	return c.JSON(http.StatusOK, map[string]string{"sessionId": session.SessionID})
}

// SendMessage submits a user message and returns the bot reply with its
// recommended certifications.
// POST /api/chat/message
func (h *Handler) SendMessage(c echo.Context) error {
	var req domain.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if len(req.Message) == 0 || len(req.Message) > maxMessageLength {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Message must be between 1 and 1000 characters"})
	}

	resp, err := h.service.SendMessage(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Chat session not found"})
		}
		log.Printf("ERROR: chat message failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to process message"})
	}

	return c.JSON(http.StatusOK, resp)
}

// Welcome returns a short greeting for new users.
// GET /api/chat/welcome
func (h *Handler) Welcome(c echo.Context) error {
	message := h.service.GenerateWelcomeMessage(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]string{"message": message})
}

// GetSessionMessages returns the messages of a session in insertion order.
// GET /api/chat/:session_id/messages
func (h *Handler) GetSessionMessages(c echo.Context) error {
	sessionID := c.Param("session_id")

	messages, err := h.service.GetMessages(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Chat session not found"})
		}
		log.Printf("ERROR: failed to get messages: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to get messages"})
	}

	return c.JSON(http.StatusOK, messages)
}
