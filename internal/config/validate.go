package config

import (
	"fmt"

	"audioscribe/internal/export"
	"audioscribe/internal/provider"
)

func (c *Config) Validate() error {
	if c.General.Locale != "en" && c.General.Locale != "pt" {
		return fmt.Errorf("invalid general.locale: %s (must be en or pt)", c.General.Locale)
	}

	if c.Transcription.Provider == "" {
		return fmt.Errorf("invalid transcription.provider: empty")
	}

	p := provider.GetProvider(c.Transcription.Provider)
	if p == nil {
		return fmt.Errorf("unsupported transcription.provider: %s (must be one of %v)", c.Transcription.Provider, provider.ListProviders())
	}

	if p.RequiresAPIKey() {
		apiKey := c.APIKeyFor(c.Transcription.Provider)
		if apiKey == "" {
			return fmt.Errorf("%s API key required: not found in config (providers.%s.api_key) or environment", p.Name(), p.Name())
		}
		if !p.ValidateAPIKey(apiKey) {
			return fmt.Errorf("invalid API key for provider %s", p.Name())
		}
	}

	if c.Transcription.Model == "" {
		return fmt.Errorf("invalid transcription.model: empty")
	}
	if !providerHasModel(p, c.Transcription.Model) {
		return fmt.Errorf("invalid model for %s: %s (run: audioscribe model list)", p.Name(), c.Transcription.Model)
	}

	if c.Transcription.Language != "" && !IsValidLanguageCode(c.Transcription.Language) {
		return fmt.Errorf("invalid transcription.language: %s (use empty string for auto-detect or ISO-639-1 codes like 'en', 'es', 'pt')", c.Transcription.Language)
	}
	if c.Transcription.Threads < 0 {
		return fmt.Errorf("invalid transcription.threads: %d", c.Transcription.Threads)
	}

	if c.Segmenter.MaxChunkDuration <= 0 {
		return fmt.Errorf("invalid segmenter.max_chunk_duration: %v", c.Segmenter.MaxChunkDuration)
	}
	if c.Segmenter.SampleRate <= 0 {
		return fmt.Errorf("invalid segmenter.sample_rate: %d", c.Segmenter.SampleRate)
	}

	if c.Jobs.Workers < 0 {
		return fmt.Errorf("invalid jobs.workers: %d (0 means provider default)", c.Jobs.Workers)
	}

	if c.Diarization.MinGap <= 0 {
		return fmt.Errorf("invalid diarization.min_gap: %v", c.Diarization.MinGap)
	}

	if len(c.Export.Formats) == 0 {
		return fmt.Errorf("invalid export.formats: empty (must have at least one format)")
	}
	for _, f := range c.Export.Formats {
		if _, err := export.ParseFormat(f); err != nil {
			return fmt.Errorf("invalid export.formats: %w", err)
		}
	}

	return nil
}

func providerHasModel(p provider.Provider, id string) bool {
	for _, m := range p.Models() {
		if m.ID == id {
			return true
		}
	}
	return false
}
