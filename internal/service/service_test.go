package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/certibot/certibot/config"
	"github.com/certibot/certibot/internal/adapter/llm"
	"github.com/certibot/certibot/internal/auth"
	"github.com/certibot/certibot/internal/repository"
	"github.com/certibot/certibot/policy"
)

// stubClient returns a fixed reply or error, recording the last request.
type stubClient struct {
	reply   string
	err     error
	lastReq *llm.ChatCompletionRequest
}

func (s *stubClient) CreateChatCompletion(ctx context.Context, req *llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &llm.ChatCompletionResponse{
		ID:     "stub",
		Object: "chat.completion",
		Model:  req.Model,
		Choices: []llm.Choice{
			{Message: &llm.ChatMessage{Role: "assistant", Content: s.reply}},
		},
	}, nil
}

func newTestService(t *testing.T, client llm.LLMClient) *Service {
	t.Helper()

	store, err := repository.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	engine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	if err != nil {
		t.Fatalf("failed to create policy engine: %v", err)
	}

	cfg := &config.Config{
		LLMModel: "gpt-4o",
		TokenTTL: time.Hour,
	}
	tokens := auth.NewTokenManager("test-secret", cfg.TokenTTL)

	return New(store, client, tokens, cfg, engine)
}

func TestCreateAndGetSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, llm.NewMockClient())

	session, err := svc.CreateSession(ctx, nil)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if session.SessionID == "" {
		t.Fatalf("expected a session id")
	}

	got, err := svc.GetSession(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.SessionID != session.SessionID {
		t.Fatalf("unexpected session: %+v", got)
	}

	if _, err := svc.GetSession(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestGetMessagesUnknownSession(t *testing.T) {
	svc := newTestService(t, llm.NewMockClient())

	if _, err := svc.GetMessages(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
