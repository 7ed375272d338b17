package provider

// Model represents a transcription model with display metadata.
type Model struct {
	ID          string // unique identifier (e.g., "whisper-1", "base.en")
	Name        string // display name
	Description string // short description
	Local       bool   // runs locally (no API call)
	Size        string // human readable download size, local models only
}

// NeedsDownload returns true for local models that must be fetched before use
func (m *Model) NeedsDownload() bool {
	return m.Local
}
