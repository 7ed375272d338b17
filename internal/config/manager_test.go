package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewManagerFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveTo(createTestConfig(), path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	m, err := NewManagerFrom(path)
	if err != nil {
		t.Fatalf("NewManagerFrom failed: %v", err)
	}

	cfg := m.GetConfig()
	if cfg.Transcription.Provider != "openai" {
		t.Errorf("provider = %s", cfg.Transcription.Provider)
	}
}

func TestNewManagerFromMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if _, err := NewManagerFrom(path); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestManagerGetConfigReturnsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveTo(createTestConfig(), path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	m, err := NewManagerFrom(path)
	if err != nil {
		t.Fatalf("NewManagerFrom failed: %v", err)
	}

	cfg := m.GetConfig()
	cfg.Transcription.Provider = "mutated"

	if m.GetConfig().Transcription.Provider != "openai" {
		t.Error("mutating the returned config leaked into the manager")
	}
}

func TestManagerReloadsOnFileChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := createTestConfig()
	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	m, err := NewManagerFrom(path)
	if err != nil {
		t.Fatalf("NewManagerFrom failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := m.StartWatching(ctx); err != nil {
		t.Fatalf("StartWatching failed: %v", err)
	}
	defer m.Stop()

	cfg.General.Locale = "pt"
	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		if m.GetConfig().General.Locale == "pt" {
			return
		}
		select {
		case <-deadline:
			t.Fatal("config was not reloaded after file change")
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func TestManagerKeepsConfigWhenReloadIsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveTo(createTestConfig(), path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	m, err := NewManagerFrom(path)
	if err != nil {
		t.Fatalf("NewManagerFrom failed: %v", err)
	}

	// rewrite with broken TOML and trigger a reload directly, bypassing
	// fsnotify timing
	if err := os.WriteFile(path, []byte("general]\nbroken = "), 0644); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}
	m.reloadConfig()

	if m.GetConfig().Transcription.Provider != "openai" {
		t.Error("invalid reload should keep the previous config")
	}
}
