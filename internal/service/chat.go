package service

import (
	"context"

	"github.com/certibot/certibot/internal/domain"
)

// SendMessage runs one chat turn: persist the user message, consult the
// recommendation engine with the catalog and recent history, persist the bot
// reply with its recommendation metadata, and return the combined payload.
// Engine failures surface as a normal reply with no certifications, never as
// an error.
func (s *Service) SendMessage(ctx context.Context, req *domain.SendMessageRequest) (*domain.ChatResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		session, err := s.CreateSession(ctx, nil)
		if err != nil {
			return nil, err
		}
		sessionID = session.SessionID
	} else if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	if _, err := s.AppendMessage(ctx, sessionID, domain.SenderUser, req.Message, nil); err != nil {
		return nil, err
	}

	history, err := s.GetMessages(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.ListCertifications(ctx)
	if err != nil {
		return nil, err
	}

	reply := s.GenerateChatResponse(ctx, req.Message, catalog, history)
	certs := joinRecommendations(reply.Recommendations, catalog)

	var metadata *domain.MessageMetadata
	if len(certs) > 0 || reply.Category != "" {
		metadata = &domain.MessageMetadata{
			Certifications: certs,
			Category:       reply.Category,
		}
	}
	if _, err := s.AppendMessage(ctx, sessionID, domain.SenderBot, reply.Message, metadata); err != nil {
		return nil, err
	}

	return &domain.ChatResponse{
		Message:        reply.Message,
		Certifications: certs,
		SessionID:      sessionID,
	}, nil
}

// joinRecommendations resolves engine recommendations against the catalog.
// Recommendations referencing unknown certification ids are dropped silently.
func joinRecommendations(recs []domain.Recommendation, catalog []domain.Certification) []domain.RecommendedCertification {
	byID := make(map[int64]domain.Certification, len(catalog))
	for _, cert := range catalog {
		byID[cert.ID] = cert
	}

	certs := []domain.RecommendedCertification{}
	for _, rec := range recs {
		cert, ok := byID[rec.ID]
		if !ok {
			continue
		}
		certs = append(certs, domain.RecommendedCertification{
			Certification:  cert,
			RelevanceScore: rec.RelevanceScore,
			Reasoning:      rec.Reasoning,
		})
	}
	return certs
}
