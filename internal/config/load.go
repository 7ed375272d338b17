package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	dir := filepath.Join(configDir, "audioscribe")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "config.toml"), nil
}

func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	// first run: create the file with defaults, then load it
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Printf("config: no config file found at %s, creating with defaults", configPath)
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", configPath, err)
	}

	return LoadFrom(configPath)
}

// LoadFrom parses and normalizes a config file at an explicit path.
func LoadFrom(configPath string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if config.Providers == nil {
		config.Providers = make(map[string]ProviderConfig)
	}
	config.applyDefaults()

	return &config, nil
}

// applyDefaults fills zero values left out of the file.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.General.Locale == "" {
		c.General.Locale = d.General.Locale
	}
	if c.Segmenter.MaxChunkDuration == 0 {
		c.Segmenter.MaxChunkDuration = d.Segmenter.MaxChunkDuration
	}
	if c.Segmenter.SampleRate == 0 {
		c.Segmenter.SampleRate = d.Segmenter.SampleRate
	}
	if c.Diarization.MinGap == 0 {
		c.Diarization.MinGap = d.Diarization.MinGap
	}
	if len(c.Export.Formats) == 0 {
		c.Export.Formats = d.Export.Formats
	}
	if c.Transcription.Threads == 0 {
		threads := runtime.NumCPU() - 1
		if threads < 1 {
			threads = 1
		}
		c.Transcription.Threads = threads
	}
}

// APIKeyFor resolves the key for a provider from config, falling back to
// the provider's conventional environment variable.
func (c *Config) APIKeyFor(name string) string {
	if pc, ok := c.Providers[name]; ok && pc.APIKey != "" {
		return pc.APIKey
	}
	if name == "openai" {
		return os.Getenv("OPENAI_API_KEY")
	}
	return ""
}
