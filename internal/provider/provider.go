// Package provider holds the registry of transcription backends and their
// model metadata, driving config validation, the configure wizard, and the
// model subcommands.
package provider

import (
	"fmt"
	"sort"
)

// Provider describes one transcription backend.
type Provider interface {
	Name() string
	RequiresAPIKey() bool
	ValidateAPIKey(key string) bool
	DefaultModel() string
	Models() []Model
}

var registry = make(map[string]Provider)

func init() {
	Register(&OpenAIProvider{})
	Register(&WhisperCppProvider{})
}

// Register adds a provider to the registry
func Register(p Provider) {
	registry[p.Name()] = p
}

// GetProvider returns a provider by name, or nil if not found
func GetProvider(name string) Provider {
	return registry[name]
}

// ListProviders returns all registered provider names
func ListProviders() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FindModelByID looks a model up across all providers, returning the model
// and its provider name.
func FindModelByID(id string) (*Model, string, error) {
	for name, p := range registry {
		for _, m := range p.Models() {
			if m.ID == id {
				return &m, name, nil
			}
		}
	}
	return nil, "", fmt.Errorf("unknown model: %s", id)
}
