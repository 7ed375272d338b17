package config

import "time"

type Config struct {
	General       GeneralConfig             `toml:"general"`
	Transcription TranscriptionConfig       `toml:"transcription"`
	Segmenter     SegmenterConfig           `toml:"segmenter"`
	Jobs          JobsConfig                `toml:"jobs"`
	Diarization   DiarizationConfig         `toml:"diarization"`
	Export        ExportConfig              `toml:"export"`
	Providers     map[string]ProviderConfig `toml:"providers"`
}

// GeneralConfig holds global settings that apply across the application
type GeneralConfig struct {
	Locale string `toml:"locale"` // UI message language ("en" or "pt")
}

type TranscriptionConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	Language string `toml:"language"` // ISO-639-1 code, empty for auto-detect
	Threads  int    `toml:"threads"`  // CPU threads for local transcription (0 = auto: NumCPU-1)
}

type SegmenterConfig struct {
	MaxChunkDuration time.Duration `toml:"max_chunk_duration"`
	SampleRate       int           `toml:"sample_rate"`
}

type JobsConfig struct {
	Workers int `toml:"workers"` // concurrent segment transcriptions (0 = provider default)
}

type DiarizationConfig struct {
	Enabled bool          `toml:"enabled"`
	MinGap  time.Duration `toml:"min_gap"` // silence gap that triggers a speaker change
}

type ExportConfig struct {
	Formats   []string `toml:"formats"`
	OutputDir string   `toml:"output_dir"` // empty = current directory
}

// ProviderConfig holds API key for a provider
type ProviderConfig struct {
	APIKey string `toml:"api_key"`
}
