package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientCreateChatCompletion(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	var gotReq ChatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}

		resp := ChatCompletionResponse{
			ID:     "chatcmpl-1",
			Object: "chat.completion",
			Model:  gotReq.Model,
			Choices: []Choice{
				{Message: &ChatMessage{Role: "assistant", Content: `{"message":"hi"}`}, FinishReason: "stop"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second)

	temperature := 0.7
	resp, err := client.CreateChatCompletion(context.Background(), &ChatCompletionRequest{
		Model:       "gpt-4o",
		Messages:    []ChatMessage{{Role: "user", Content: "hello"}},
		Temperature: &temperature,
	})
	if err != nil {
		t.Fatalf("CreateChatCompletion failed: %v", err)
	}

	if gotPath != "/v1/chat/completions" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header: %s", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Fatalf("unexpected content type: %s", gotContentType)
	}
	if gotReq.Model != "gpt-4o" || gotReq.Temperature == nil || *gotReq.Temperature != 0.7 {
		t.Fatalf("unexpected forwarded request: %+v", gotReq)
	}
	if len(resp.Choices) != 1 || resp.Choices[0].Message.Content != `{"message":"hi"}` {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestClientAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error: &APIError{Message: "Incorrect API key provided", Type: "invalid_request_error"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key", 5*time.Second)

	_, err := client.CreateChatCompletion(context.Background(), &ChatCompletionRequest{
		Model:    "gpt-4o",
		Messages: []ChatMessage{{Role: "user", Content: "hello"}},
	})
	if err == nil {
		t.Fatalf("expected an error for 401 response")
	}
}

func TestClientContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.CreateChatCompletion(ctx, &ChatCompletionRequest{
		Model:    "gpt-4o",
		Messages: []ChatMessage{{Role: "user", Content: "hello"}},
	})
	if err == nil {
		t.Fatalf("expected an error on context timeout")
	}
}

func TestNewFallsBackToMockWithoutKey(t *testing.T) {
	client := New("https://api.openai.com", "", time.Second)
	if _, ok := client.(*MockClient); !ok {
		t.Fatalf("expected a mock client without an API key, got %T", client)
	}

	client = New("https://api.openai.com", "sk-test", time.Second)
	if _, ok := client.(*Client); !ok {
		t.Fatalf("expected a real client with an API key, got %T", client)
	}
}

func TestMockClientReplyParses(t *testing.T) {
	client := NewMockClient()

	resp, err := client.CreateChatCompletion(context.Background(), &ChatCompletionRequest{
		Model:    "gpt-4o",
		Messages: []ChatMessage{{Role: "user", Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("CreateChatCompletion failed: %v", err)
	}
	if len(resp.Choices) != 1 {
		t.Fatalf("expected one choice, got %d", len(resp.Choices))
	}

	var reply struct {
		Message         string `json:"message"`
		Recommendations []struct {
			ID             int64  `json:"id"`
			RelevanceScore int    `json:"relevanceScore"`
			Reasoning      string `json:"reasoning"`
		} `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &reply); err != nil {
		t.Fatalf("mock reply is not valid engine JSON: %v", err)
	}
	if reply.Message == "" || len(reply.Recommendations) == 0 {
		t.Fatalf("mock reply missing fields: %+v", reply)
	}
}
