// Package service implements the application logic of the certibot server.
package service

import (
	"github.com/certibot/certibot/config"
	"github.com/certibot/certibot/internal/adapter/llm"
	"github.com/certibot/certibot/internal/auth"
	"github.com/certibot/certibot/internal/repository"
	"github.com/certibot/certibot/policy"
)

type Service struct {
	store        repository.Store
	llmClient    llm.LLMClient
	tokens       *auth.TokenManager
	config       *config.Config
	policyEngine *policy.Engine
}

func New(store repository.Store, llmClient llm.LLMClient, tokens *auth.TokenManager, cfg *config.Config, policyEngine *policy.Engine) *Service {
	return &Service{
		store:        store,
		llmClient:    llmClient,
		tokens:       tokens,
		config:       cfg,
		policyEngine: policyEngine,
	}
}
