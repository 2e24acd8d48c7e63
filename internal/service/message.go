package service

import (
	"context"
	"fmt"
	"time"

	"github.com/certibot/certibot/internal/domain"
)

// AppendMessage appends a message to an existing session with a
// server-assigned timestamp. Fails with ErrSessionNotFound when the session
// does not exist.
func (s *Service) AppendMessage(ctx context.Context, sessionID string, sender domain.Sender, content string, metadata *domain.MessageMetadata) (*domain.Message, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		SessionID: sessionID,
		Sender:    sender,
		Content:   content,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return msg, nil
}

// GetMessages returns the messages of a session in insertion order. An
// existing session with no messages yields an empty slice; a nonexistent
// session yields ErrSessionNotFound.
func (s *Service) GetMessages(ctx context.Context, sessionID string) ([]domain.Message, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	messages, err := s.store.GetMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return messages, nil
}
