package config

import "time"

// DefaultConfig returns the initial configuration written on first run.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			Locale: "en",
		},
		Transcription: TranscriptionConfig{
			Provider: "whisper-cpp",
			Model:    "base",
			Language: "",
			Threads:  0,
		},
		Segmenter: SegmenterConfig{
			MaxChunkDuration: 10 * time.Minute,
			SampleRate:       16000,
		},
		Jobs: JobsConfig{
			Workers: 0,
		},
		Diarization: DiarizationConfig{
			Enabled: false,
			MinGap:  1500 * time.Millisecond,
		},
		Export: ExportConfig{
			Formats:   []string{"txt"},
			OutputDir: "",
		},
		Providers: make(map[string]ProviderConfig),
	}
}
