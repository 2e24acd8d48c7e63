package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/certibot/certibot/config"
	"github.com/certibot/certibot/internal/adapter/llm"
	"github.com/certibot/certibot/internal/auth"
	"github.com/certibot/certibot/internal/repository"
	"github.com/certibot/certibot/internal/service"
	"github.com/certibot/certibot/policy"
)

// stubClient returns a fixed engine reply or error.
type stubClient struct {
	reply string
	err   error
}

func (s *stubClient) CreateChatCompletion(ctx context.Context, req *llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
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

// newTestServer wires a full API server against an in-memory store.
func newTestServer(t *testing.T, client llm.LLMClient) (*echo.Echo, *service.Service) {
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

	cfg := &config.Config{LLMModel: "gpt-4o", TokenTTL: time.Hour}
	tokens := auth.NewTokenManager("test-secret", cfg.TokenTTL)
	svc := service.New(store, client, tokens, cfg, engine)

	e := echo.New()
	NewHandler(svc).RegisterRoutes(e)
	return e, svc
}

// doRequest performs a request against the test server. A non-empty token is
// sent as a bearer Authorization header.
func doRequest(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a JSON response body into out.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	e, _ := newTestServer(t, llm.NewMockClient())

	rec := doRequest(e, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	decodeBody(t, rec, &body)
	if body["status"] != "healthy" {
		t.Fatalf("unexpected health body: %+v", body)
	}
}
