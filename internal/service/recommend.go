package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/certibot/certibot/internal/adapter/llm"
	"github.com/certibot/certibot/internal/domain"
)

// historyWindow caps how many recent messages are included in the prompt.
const historyWindow = 10

const fallbackMessage = "I'm having trouble connecting right now, but I'd love to help you find the perfect certification! Could you tell me more about your interests or the field you'd like to explore?"

const welcomeFallback = "Welcome to CERTI-BOT! I'm here to help you discover the perfect certification programs for your career goals."

// EngineReply is the validated output of the recommendation engine.
type EngineReply struct {
	Message         string                  `json:"message"`
	Recommendations []domain.Recommendation `json:"recommendations"`
	Category        string                  `json:"category,omitempty"`
}

// GenerateChatResponse asks the LLM for a reply plus certification
// recommendations. It never fails: any engine error collapses into a safe
// fallback reply with no recommendations.
func (s *Service) GenerateChatResponse(ctx context.Context, userMessage string, catalog []domain.Certification, history []domain.Message) *EngineReply {
	temperature := 0.7
	maxTokens := 1500

	req := &llm.ChatCompletionRequest{
		Model: s.config.LLMModel,
		Messages: []llm.ChatMessage{
			{Role: "system", Content: buildSystemPrompt(userMessage, catalog, history)},
			{Role: "user", Content: userMessage},
		},
		Temperature:    &temperature,
		MaxTokens:      &maxTokens,
		ResponseFormat: map[string]interface{}{"type": "json_object"},
	}

	resp, err := s.llmClient.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Printf("WARN: recommendation engine call failed: %v", err)
		return fallbackReply()
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message == nil {
		log.Printf("WARN: recommendation engine returned no choices")
		return fallbackReply()
	}

	reply, err := parseEngineReply(resp.Choices[0].Message.Content)
	if err != nil {
		log.Printf("WARN: recommendation engine returned malformed reply: %v", err)
		return fallbackReply()
	}
	return reply
}

// GenerateWelcomeMessage produces a short greeting for new users.
func (s *Service) GenerateWelcomeMessage(ctx context.Context) string {
	maxTokens := 100
	temperature := 0.8

	req := &llm.ChatCompletionRequest{
		Model: s.config.LLMModel,
		Messages: []llm.ChatMessage{
			{Role: "system", Content: "You are CERTI-BOT, a friendly certification assistant. Generate a brief, welcoming message for new users. Keep it under 50 words and encouraging."},
			{Role: "user", Content: "Generate a welcome message"},
		},
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	}

	resp, err := s.llmClient.CreateChatCompletion(ctx, req)
	if err != nil || len(resp.Choices) == 0 || resp.Choices[0].Message == nil || resp.Choices[0].Message.Content == "" {
		return welcomeFallback
	}
	return resp.Choices[0].Message.Content
}

// parseEngineReply validates the raw engine JSON against the expected
// schema. Recommendations with a relevance score outside [1,10] are dropped;
// unknown ids are dropped later when joining against the catalog.
func parseEngineReply(raw string) (*EngineReply, error) {
	var reply EngineReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if reply.Message == "" {
		return nil, fmt.Errorf("missing message field")
	}

	valid := reply.Recommendations[:0]
	for _, rec := range reply.Recommendations {
		if rec.RelevanceScore < 1 || rec.RelevanceScore > 10 {
			continue
		}
		valid = append(valid, rec)
	}
	reply.Recommendations = valid
	return &reply, nil
}

func fallbackReply() *EngineReply {
	return &EngineReply{
		Message:         fallbackMessage,
		Recommendations: []domain.Recommendation{},
	}
}

// buildSystemPrompt assembles the instruction sent to the engine: the
// assistant persona, the full catalog as JSON, the required reply schema,
// and the capped recent history.
func buildSystemPrompt(userMessage string, catalog []domain.Certification, history []domain.Message) string {
	catalogJSON, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		catalogJSON = []byte("[]")
	}

	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	var historyLines []string
	for _, msg := range history {
		historyLines = append(historyLines, fmt.Sprintf("%s: %s", msg.Sender, msg.Content))
	}

	return fmt.Sprintf(`You are CERTI-BOT, an intelligent certification assistant. Your role is to help users find the perfect certification programs based on their interests, skills, and career goals.

IMPORTANT GUIDELINES:
1. Provide helpful, accurate, and personalized certification recommendations
2. Always be encouraging and supportive
3. Ask follow-up questions when needed to better understand user needs
4. Focus on practical advice about prep time, costs, and career benefits
5. Consider user's experience level (beginner, intermediate, advanced)
6. Recommend 2-4 most relevant certifications per response
7. Provide specific reasoning for each recommendation

AVAILABLE CERTIFICATIONS:
%s

RESPONSE FORMAT:
Respond with JSON in this exact format:
{
  "message": "Your helpful response message here",
  "recommendations": [
    {
      "id": certification_id_number,
      "relevanceScore": score_from_1_to_10,
      "reasoning": "Why this certification is recommended"
    }
  ],
  "category": "relevant_category_if_applicable"
}

CHAT HISTORY:
%s

Current user message: %q`, catalogJSON, strings.Join(historyLines, "\n"), userMessage)
}
