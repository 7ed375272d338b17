package provider

import "audioscribe/internal/models/whisper"

// WhisperCppProvider exposes local whisper.cpp models via whisper-cli.
type WhisperCppProvider struct{}

func (p *WhisperCppProvider) Name() string {
	return "whisper-cpp"
}

func (p *WhisperCppProvider) RequiresAPIKey() bool {
	return false
}

func (p *WhisperCppProvider) ValidateAPIKey(key string) bool {
	return true // no key needed
}

func (p *WhisperCppProvider) DefaultModel() string {
	return "base"
}

func (p *WhisperCppProvider) Models() []Model {
	infos := whisper.ListModels()
	result := make([]Model, 0, len(infos))
	for _, info := range infos {
		desc := "English only"
		if info.Multilingual {
			desc = "Multilingual"
		}
		result = append(result, Model{
			ID:          info.ID,
			Name:        info.Name,
			Description: desc,
			Local:       true,
			Size:        info.Size,
		})
	}
	return result
}
