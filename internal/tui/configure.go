// Package tui implements the interactive configure wizard.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"audioscribe/internal/config"
	"audioscribe/internal/export"
	"audioscribe/internal/locale"
	"audioscribe/internal/models/whisper"
	"audioscribe/internal/provider"
)

// ConfigureResult holds the configuration result from the TUI
type ConfigureResult struct {
	Config    *config.Config
	Cancelled bool
}

// providerDisplayNames maps provider IDs to human-readable names
var providerDisplayNames = map[string]string{
	"openai":      "OpenAI Whisper (cloud)",
	"whisper-cpp": "Whisper.cpp (local)",
}

// ConfigSection represents a configuration section
type ConfigSection string

const (
	SectionTranscription ConfigSection = "transcription"
	SectionSegmenting    ConfigSection = "segmenting"
	SectionDiarization   ConfigSection = "diarization"
	SectionExport        ConfigSection = "export"
	SectionGeneral       ConfigSection = "general"
	SectionSaveExit      ConfigSection = "save_exit"
	SectionDiscardExit   ConfigSection = "discard_exit"
)

// Run starts the TUI configuration wizard
func Run(existingConfig *config.Config) (*ConfigureResult, error) {
	cfg := existingConfig
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	for {
		clearScreen()
		fmt.Println(Logo())
		fmt.Println()

		section, err := selectSection(cfg)
		if err != nil {
			return &ConfigureResult{Cancelled: true}, nil
		}

		switch section {
		case SectionSaveExit:
			confirmed, err := showSummary(cfg)
			if err != nil {
				return &ConfigureResult{Cancelled: true}, nil
			}
			if confirmed {
				return &ConfigureResult{Config: cfg, Cancelled: false}, nil
			}

		case SectionDiscardExit:
			return &ConfigureResult{Cancelled: true}, nil

		case SectionTranscription:
			if err := editTranscription(cfg); err != nil {
				continue
			}

		case SectionSegmenting:
			if err := editSegmenting(cfg); err != nil {
				continue
			}

		case SectionDiarization:
			if err := editDiarization(cfg); err != nil {
				continue
			}

		case SectionExport:
			if err := editExport(cfg); err != nil {
				continue
			}

		case SectionGeneral:
			if err := editGeneral(cfg); err != nil {
				continue
			}
		}
	}
}

func selectSection(cfg *config.Config) (ConfigSection, error) {
	options := []huh.Option[ConfigSection]{
		huh.NewOption(formatTranscriptionLabel(cfg), SectionTranscription),
		huh.NewOption("Segmenting", SectionSegmenting),
		huh.NewOption(formatDiarizationLabel(cfg), SectionDiarization),
		huh.NewOption(formatExportLabel(cfg), SectionExport),
		huh.NewOption(formatGeneralLabel(cfg), SectionGeneral),
		huh.NewOption("Save & Exit", SectionSaveExit),
		huh.NewOption("Discard & Exit", SectionDiscardExit),
	}

	var selected ConfigSection
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[ConfigSection]().
				Title("Configuration Menu").
				Description("↑/↓ navigate • enter select • esc cancel").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return "", err
	}

	return selected, nil
}

func formatTranscriptionLabel(cfg *config.Config) string {
	if cfg.Transcription.Provider == "" {
		return "Transcription"
	}
	return fmt.Sprintf("Transcription (%s/%s)", cfg.Transcription.Provider, cfg.Transcription.Model)
}

func formatDiarizationLabel(cfg *config.Config) string {
	if cfg.Diarization.Enabled {
		return "Diarization (enabled)"
	}
	return "Diarization (disabled)"
}

func formatExportLabel(cfg *config.Config) string {
	if len(cfg.Export.Formats) == 0 {
		return "Export"
	}
	return fmt.Sprintf("Export (%s)", strings.Join(cfg.Export.Formats, ", "))
}

func formatGeneralLabel(cfg *config.Config) string {
	lang := config.LanguageFromCode(cfg.Transcription.Language)
	if lang.Code == "" {
		return fmt.Sprintf("General (locale %s, language auto)", cfg.General.Locale)
	}
	return fmt.Sprintf("General (locale %s, language %s)", cfg.General.Locale, lang.Name)
}

// clearScreen clears the terminal screen
func clearScreen() {
	output := termenv.NewOutput(os.Stdout)
	output.ClearScreen()
}

func getTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Focused.Base = lipgloss.NewStyle().BorderForeground(ColorPrimary)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSecondary)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(ColorText)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(ColorSubtle)

	return t
}

// editTranscription walks provider, API key, model, and language selection.
func editTranscription(cfg *config.Config) error {
	var providerOptions []huh.Option[string]
	for _, name := range provider.ListProviders() {
		label := name
		if display, ok := providerDisplayNames[name]; ok {
			label = display
		}
		providerOptions = append(providerOptions, huh.NewOption(label, name))
	}

	selectedProvider := cfg.Transcription.Provider
	if selectedProvider == "" {
		selectedProvider = "whisper-cpp"
	}

	providerDesc := "Choose which backend to use for speech-to-text"
	if cfg.Transcription.Provider != "" {
		providerDesc = fmt.Sprintf("Currently: %s/%s", cfg.Transcription.Provider, cfg.Transcription.Model)
	}

	providerForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Transcription Provider").
				Description(providerDesc).
				Options(providerOptions...).
				Value(&selectedProvider),
		),
	).WithTheme(getTheme())

	if err := providerForm.Run(); err != nil {
		return err
	}

	p := provider.GetProvider(selectedProvider)
	if p == nil {
		return fmt.Errorf("unknown provider: %s", selectedProvider)
	}

	if p.RequiresAPIKey() && cfg.APIKeyFor(selectedProvider) == "" {
		apiKey := ""
		keyForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(fmt.Sprintf("%s API Key", p.Name())).
					Description("Stored in the config file; the matching environment variable also works").
					EchoMode(huh.EchoModePassword).
					Validate(func(s string) error {
						if !p.ValidateAPIKey(s) {
							return fmt.Errorf("key does not look valid for %s", p.Name())
						}
						return nil
					}).
					Value(&apiKey),
			),
		).WithTheme(getTheme())

		if err := keyForm.Run(); err != nil {
			return err
		}
		if cfg.Providers == nil {
			cfg.Providers = make(map[string]config.ProviderConfig)
		}
		cfg.Providers[selectedProvider] = config.ProviderConfig{APIKey: apiKey}
	}

	cfg.Transcription.Provider = selectedProvider

	modelOptions := getModelOptions(selectedProvider)
	selectedModel := cfg.Transcription.Model
	if !hasOption(modelOptions, selectedModel) {
		selectedModel = p.DefaultModel()
	}

	language := cfg.Transcription.Language

	modelForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Transcription Model").
				Options(modelOptions...).
				Value(&selectedModel),
			huh.NewInput().
				Title("Audio Language").
				Description("ISO-639-1 code (e.g., 'en', 'es', 'pt') or empty for auto-detect").
				Placeholder("auto-detect").
				Validate(func(s string) error {
					if !config.IsValidLanguageCode(s) {
						return fmt.Errorf("unknown language code: %s", s)
					}
					return nil
				}).
				Value(&language),
		),
	).WithTheme(getTheme())

	if err := modelForm.Run(); err != nil {
		return err
	}

	cfg.Transcription.Model = selectedModel
	cfg.Transcription.Language = language

	return nil
}

func getModelOptions(providerName string) []huh.Option[string] {
	p := provider.GetProvider(providerName)
	if p == nil {
		return nil
	}

	models := p.Models()
	options := make([]huh.Option[string], 0, len(models))
	for _, m := range models {
		desc := m.Description
		if m.Local {
			if whisper.IsInstalled(m.ID) {
				desc += ", " + m.Size + ", installed"
			} else {
				desc += ", " + m.Size + ", not installed"
			}
		}
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", m.ID, desc), m.ID))
	}
	return options
}

func hasOption(options []huh.Option[string], value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

func editSegmenting(cfg *config.Config) error {
	chunk := cfg.Segmenter.MaxChunkDuration.String()
	workers := fmt.Sprintf("%d", cfg.Jobs.Workers)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Max Segment Duration").
				Description("Long files are split into segments no longer than this (e.g. 10m, 5m30s)").
				Validate(func(s string) error {
					d, err := time.ParseDuration(s)
					if err != nil {
						return fmt.Errorf("not a duration: %s", s)
					}
					if d <= 0 {
						return fmt.Errorf("must be positive")
					}
					return nil
				}).
				Value(&chunk),
			huh.NewInput().
				Title("Workers").
				Description("Segments transcribed concurrently; 0 picks a provider default").
				Validate(func(s string) error {
					var n int
					if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n < 0 {
						return fmt.Errorf("must be a non-negative number")
					}
					return nil
				}).
				Value(&workers),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	d, err := time.ParseDuration(chunk)
	if err != nil {
		return err
	}
	cfg.Segmenter.MaxChunkDuration = d
	fmt.Sscanf(workers, "%d", &cfg.Jobs.Workers)

	return nil
}

func editDiarization(cfg *config.Config) error {
	enabled := cfg.Diarization.Enabled

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable Diarization").
				Description("Label speaker turns using silence gaps between spans").
				Affirmative("Enable").
				Negative("Disable").
				Value(&enabled),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Diarization.Enabled = enabled
	return nil
}

func editExport(cfg *config.Config) error {
	selected := append([]string(nil), cfg.Export.Formats...)
	outputDir := cfg.Export.OutputDir

	var formatOptions []huh.Option[string]
	for _, f := range export.Formats() {
		formatOptions = append(formatOptions, huh.NewOption(strings.ToUpper(string(f)), string(f)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Export Formats").
				Description("Every transcript is written once per selected format").
				Options(formatOptions...).
				Validate(func(sel []string) error {
					if len(sel) == 0 {
						return fmt.Errorf("select at least one format")
					}
					return nil
				}).
				Value(&selected),
			huh.NewInput().
				Title("Output Directory").
				Description("Empty means the current directory").
				Value(&outputDir),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Export.Formats = selected
	cfg.Export.OutputDir = outputDir
	return nil
}

func editGeneral(cfg *config.Config) error {
	selectedLocale := cfg.General.Locale

	var localeOptions []huh.Option[string]
	for _, l := range locale.Supported() {
		localeOptions = append(localeOptions, huh.NewOption(l, l))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Interface Language").
				Description("Language for progress messages").
				Options(localeOptions...).
				Value(&selectedLocale),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.General.Locale = selectedLocale
	return nil
}

func showSummary(cfg *config.Config) (bool, error) {
	fmt.Println()
	fmt.Println(StyleHeader.Render("Configuration Summary"))
	fmt.Println()

	fmt.Printf("  %s %s (%s)\n", StyleLabel.Render("Transcription:"), cfg.Transcription.Provider, cfg.Transcription.Model)
	if cfg.Transcription.Language != "" {
		fmt.Printf("  %s %s\n", StyleLabel.Render("Audio language:"), cfg.Transcription.Language)
	}
	fmt.Printf("  %s %s\n", StyleLabel.Render("Max segment:"), cfg.Segmenter.MaxChunkDuration)
	if cfg.Jobs.Workers > 0 {
		fmt.Printf("  %s %d\n", StyleLabel.Render("Workers:"), cfg.Jobs.Workers)
	} else {
		fmt.Printf("  %s provider default\n", StyleLabel.Render("Workers:"))
	}
	if cfg.Diarization.Enabled {
		fmt.Printf("  %s enabled\n", StyleLabel.Render("Diarization:"))
	} else {
		fmt.Printf("  %s disabled\n", StyleLabel.Render("Diarization:"))
	}
	fmt.Printf("  %s %s\n", StyleLabel.Render("Formats:"), strings.Join(cfg.Export.Formats, ", "))
	fmt.Printf("  %s %s\n", StyleLabel.Render("Locale:"), cfg.General.Locale)

	fmt.Println()
	fmt.Println(StyleSubtle.Render("Values can also be edited directly in config.toml"))
	fmt.Println()

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save this configuration?").
				Affirmative("Save").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}
