package config

import "audioscribe/internal/transcriber"

// ToTranscriberConfig builds the adapter configuration for the selected
// provider, resolving the API key from config or environment.
func (c *Config) ToTranscriberConfig() transcriber.Config {
	return transcriber.Config{
		Provider: c.Transcription.Provider,
		APIKey:   c.APIKeyFor(c.Transcription.Provider),
		Language: c.Transcription.Language,
		Model:    c.Transcription.Model,
		Threads:  c.Transcription.Threads,
	}
}
