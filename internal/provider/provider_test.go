package provider

import "testing"

func TestRegistryHasBothProviders(t *testing.T) {
	names := ListProviders()
	if len(names) != 2 {
		t.Fatalf("expected 2 providers, got %v", names)
	}
	// sorted
	if names[0] != "openai" || names[1] != "whisper-cpp" {
		t.Errorf("ListProviders = %v", names)
	}
}

func TestGetProvider(t *testing.T) {
	if p := GetProvider("openai"); p == nil || p.Name() != "openai" {
		t.Error("openai provider missing")
	}
	if p := GetProvider("whisper-cpp"); p == nil || p.Name() != "whisper-cpp" {
		t.Error("whisper-cpp provider missing")
	}
	if p := GetProvider("deepgram"); p != nil {
		t.Error("unknown provider should return nil")
	}
}

func TestOpenAIProvider(t *testing.T) {
	p := GetProvider("openai")

	if !p.RequiresAPIKey() {
		t.Error("openai should require an API key")
	}
	if p.DefaultModel() != "whisper-1" {
		t.Errorf("default model = %s", p.DefaultModel())
	}
	if !p.ValidateAPIKey("sk-test-api-key-1234567890") {
		t.Error("plausible key rejected")
	}
	if p.ValidateAPIKey("not-a-key") {
		t.Error("key without sk- prefix accepted")
	}
	if p.ValidateAPIKey("sk-short") {
		t.Error("too-short key accepted")
	}

	models := p.Models()
	if len(models) == 0 {
		t.Fatal("no models")
	}
	if models[0].Local {
		t.Error("openai models should not be local")
	}
	if models[0].NeedsDownload() {
		t.Error("cloud model should not need download")
	}
}

func TestWhisperCppProvider(t *testing.T) {
	p := GetProvider("whisper-cpp")

	if p.RequiresAPIKey() {
		t.Error("whisper-cpp should not require an API key")
	}
	if p.DefaultModel() != "base" {
		t.Errorf("default model = %s", p.DefaultModel())
	}

	models := p.Models()
	if len(models) == 0 {
		t.Fatal("no models")
	}
	ids := make(map[string]bool, len(models))
	for _, m := range models {
		if !m.Local {
			t.Errorf("model %s should be local", m.ID)
		}
		if m.Size == "" {
			t.Errorf("model %s has no size", m.ID)
		}
		ids[m.ID] = true
	}
	for _, want := range []string{"tiny", "base", "small", "medium", "large-v2", "large-v3"} {
		if !ids[want] {
			t.Errorf("model %s missing from catalog", want)
		}
	}
}

func TestFindModelByID(t *testing.T) {
	m, providerName, err := FindModelByID("whisper-1")
	if err != nil {
		t.Fatalf("FindModelByID failed: %v", err)
	}
	if providerName != "openai" || m.ID != "whisper-1" {
		t.Errorf("got %s from %s", m.ID, providerName)
	}

	m, providerName, err = FindModelByID("base")
	if err != nil {
		t.Fatalf("FindModelByID failed: %v", err)
	}
	if providerName != "whisper-cpp" || !m.Local {
		t.Errorf("got %+v from %s", m, providerName)
	}

	if _, _, err := FindModelByID("no-such-model"); err == nil {
		t.Error("expected error for unknown model")
	}
}
