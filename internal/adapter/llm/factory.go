package llm

import "time"

// New returns the real client when an API key is configured, and the mock
// client otherwise so the server stays usable in local development.
func New(baseURL, apiKey string, timeout time.Duration) LLMClient {
	if apiKey == "" {
		return NewMockClient()
	}
	return NewClient(baseURL, apiKey, timeout)
}
