package provider

import "strings"

// OpenAIProvider exposes the hosted Whisper API.
type OpenAIProvider struct{}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) RequiresAPIKey() bool {
	return true
}

func (p *OpenAIProvider) ValidateAPIKey(key string) bool {
	return strings.HasPrefix(key, "sk-") && len(key) > 20
}

func (p *OpenAIProvider) DefaultModel() string {
	return "whisper-1"
}

func (p *OpenAIProvider) Models() []Model {
	return []Model{
		{ID: "whisper-1", Name: "Whisper 1", Description: "Hosted Whisper large, per-span timestamps"},
	}
}
