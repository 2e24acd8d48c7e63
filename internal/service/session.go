package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/certibot/certibot/internal/domain"
)

// CreateSession allocates a fresh session, optionally associated with a user.
func (s *Service) CreateSession(ctx context.Context, userID *int64) (*domain.Session, error) {
	session := &domain.Session{
		SessionID: uuid.New().String(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// GetSession looks up a session by its id.
func (s *Service) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}
