package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"audioscribe/internal/config"
	"audioscribe/internal/deps"
	"audioscribe/internal/diarize"
	"audioscribe/internal/export"
	"audioscribe/internal/job"
	"audioscribe/internal/locale"
	"audioscribe/internal/models/whisper"
	"audioscribe/internal/provider"
	"audioscribe/internal/transcriber"
	"audioscribe/internal/tui"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "audioscribe",
	Short:         "Transcribe long audio recordings with segmentation and speaker labeling",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(
		transcribeCmd(),
		modelCmd(),
		configureCmd(),
		doctorCmd(),
		versionCmd(),
	)
}

func transcribeCmd() *cobra.Command {
	var (
		providerName  string
		modelName     string
		language      string
		diarizeFlag   bool
		speakerNames  []string
		formats       []string
		outputDir     string
		chunkDuration time.Duration
		workers       int
		title         string
	)

	cmd := &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Transcribe an audio file",
		Long: `Transcribe an audio file of any length.

Long recordings are split into segments, transcribed concurrently, and
stitched back into a single timestamped transcript. Failed segments are
marked as gaps instead of aborting the whole job.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := transcribeOptions{
				inputPath:     args[0],
				provider:      providerName,
				model:         modelName,
				language:      language,
				diarize:       diarizeFlag,
				speakerNames:  speakerNames,
				formats:       formats,
				outputDir:     outputDir,
				chunkDuration: chunkDuration,
				workers:       workers,
				title:         title,
			}
			return runTranscribe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&providerName, "provider", "", "transcription provider (openai, whisper-cpp)")
	cmd.Flags().StringVar(&modelName, "model", "", "transcription model")
	cmd.Flags().StringVar(&language, "language", "", "audio language as ISO-639-1 code (empty = auto-detect)")
	cmd.Flags().BoolVar(&diarizeFlag, "diarize", false, "label speaker turns")
	cmd.Flags().StringArrayVar(&speakerNames, "speaker", nil, "rename a speaker label, e.g. SPEAKER_00=Gabriela (repeatable)")
	cmd.Flags().StringSliceVar(&formats, "format", nil, "output formats: txt, srt, md, pdf, docx")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for output files (default: current directory)")
	cmd.Flags().DurationVar(&chunkDuration, "chunk-duration", 0, "max segment duration (e.g. 10m)")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent segment transcriptions (0 = provider default)")
	cmd.Flags().StringVar(&title, "title", "", "document title for exported files")

	return cmd
}

type transcribeOptions struct {
	inputPath     string
	provider      string
	model         string
	language      string
	diarize       bool
	speakerNames  []string
	formats       []string
	outputDir     string
	chunkDuration time.Duration
	workers       int
	title         string
}

func runTranscribe(parent context.Context, opts transcribeOptions) error {
	manager, err := config.NewManager()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := manager.GetConfig()
	applyOverrides(cfg, opts)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w (run: audioscribe configure)", err)
	}

	loc := cfg.General.Locale

	adapter, err := transcriber.NewAdapter(cfg.ToTranscriberConfig())
	if err != nil {
		return err
	}
	defer adapter.Close()

	workers := cfg.Jobs.Workers
	if workers <= 0 {
		workers = job.DefaultWorkers(cfg.Transcription.Provider)
	}

	runner := job.NewRunner(adapter, job.Options{
		Workers:    workers,
		MaxChunk:   cfg.Segmenter.MaxChunkDuration,
		SampleRate: cfg.Segmenter.SampleRate,
		OnStage: func(s job.Status) {
			switch s {
			case job.Segmenting:
				fmt.Println(locale.Tf(loc, "segmenting", int(cfg.Segmenter.MaxChunkDuration.Minutes())))
			case job.Stitching:
				fmt.Println(locale.T(loc, "stitching"))
			}
		},
		OnPlanned: func(total int) {
			fmt.Println(locale.Tf(loc, "transcribing", total))
		},
		OnSegmentDone: func(done, total int) {
			fmt.Println(locale.Tf(loc, "segment_done", done, total))
		},
	})

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// the running job keeps its config snapshot; edits made while a long
	// job runs are picked up by the export stage below
	if err := manager.StartWatching(ctx); err != nil {
		log.Printf("config: watch unavailable: %v", err)
	}
	defer manager.Stop()

	fmt.Println(locale.T(loc, "probing"))
	result, err := runner.Run(ctx, opts.inputPath)
	if err != nil {
		fmt.Println(tui.StyleError.Render(locale.Tf(loc, "failed", err)))
		return err
	}
	fmt.Println(locale.Tf(loc, "duration", result.Asset.Duration.Truncate(time.Second)))

	transcript := result.Transcript
	transcript.Language = cfg.Transcription.Language

	if cfg.Diarization.Enabled {
		fmt.Println(locale.T(loc, "diarizing"))
		d := diarize.NewSilenceGap(cfg.Diarization.MinGap)
		turns, err := d.Diarize(ctx, &transcript)
		if err != nil {
			return fmt.Errorf("diarization failed: %w", err)
		}
		diarize.AssignSpeakers(&transcript, turns)
		fmt.Println(locale.T(loc, "diarization_done"))

		if renames := parseSpeakerNames(opts.speakerNames); len(renames) > 0 {
			diarize.RenameSpeakers(&transcript, renames)
			fmt.Println(locale.T(loc, "rename_applied"))
		}
	}

	meta := export.Metadata{
		Title:     opts.title,
		Source:    filepath.Base(opts.inputPath),
		Provider:  cfg.Transcription.Provider,
		Model:     cfg.Transcription.Model,
		Language:  cfg.Transcription.Language,
		Generated: time.Now(),
		Duration:  transcript.Duration,
	}
	if meta.Title == "" {
		meta.Title = strings.TrimSuffix(meta.Source, filepath.Ext(meta.Source))
	}

	// export settings come from a fresh snapshot so edits made while the
	// job ran take effect; flags still win
	exportCfg := manager.GetConfig()
	applyOverrides(exportCfg, opts)

	for _, name := range exportCfg.Export.Formats {
		format, err := export.ParseFormat(name)
		if err != nil {
			return err
		}
		fmt.Println(locale.Tf(loc, "exporting", string(format)))
		path, err := export.Write(exportCfg.Export.OutputDir, format, meta, transcript)
		if err != nil {
			return err
		}
		fmt.Println(tui.StyleSuccess.Render(locale.Tf(loc, "wrote_file", path)))
	}

	if result.Job.Status == job.CompleteWithGaps {
		fmt.Println(tui.StyleWarning.Render(locale.Tf(loc, "done_with_gaps", len(result.Errors))))
	} else {
		fmt.Println(tui.StyleSuccess.Render(locale.T(loc, "transcription_done")))
	}

	return nil
}

// applyOverrides layers command-line flags over the loaded config.
func applyOverrides(cfg *config.Config, opts transcribeOptions) {
	if opts.provider != "" {
		cfg.Transcription.Provider = opts.provider
		if opts.model == "" {
			if p := provider.GetProvider(opts.provider); p != nil {
				cfg.Transcription.Model = p.DefaultModel()
			}
		}
	}
	if opts.model != "" {
		cfg.Transcription.Model = opts.model
	}
	if opts.language != "" {
		cfg.Transcription.Language = opts.language
	}
	if opts.diarize {
		cfg.Diarization.Enabled = true
	}
	if len(opts.formats) > 0 {
		cfg.Export.Formats = opts.formats
	}
	if opts.outputDir != "" {
		cfg.Export.OutputDir = opts.outputDir
	}
	if opts.chunkDuration > 0 {
		cfg.Segmenter.MaxChunkDuration = opts.chunkDuration
	}
	if opts.workers > 0 {
		cfg.Jobs.Workers = opts.workers
	}
}

// parseSpeakerNames turns OLD=NEW pairs into a rename map.
func parseSpeakerNames(pairs []string) map[string]string {
	renames := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		label, name, ok := strings.Cut(pair, "=")
		if !ok || label == "" || name == "" {
			continue
		}
		renames[label] = name
	}
	return renames
}

func configureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Interactive configuration setup",
		Long: `Interactive configuration wizard for audioscribe.
This will guide you through setting up:
- Transcription provider and model
- Segmenting and worker limits
- Diarization
- Export formats`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigure()
		},
	}
}

func runConfigure() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	result, err := tui.Run(cfg)
	if err != nil {
		return fmt.Errorf("configuration wizard error: %w", err)
	}

	if result.Cancelled {
		fmt.Println("Configuration cancelled.")
		return nil
	}

	if err := result.Config.Validate(); err != nil {
		fmt.Printf("Configuration validation failed: %v\n", err)
		return err
	}

	if err := config.Save(result.Config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("Configuration saved successfully!")

	if result.Config.Transcription.Provider == "whisper-cpp" &&
		!whisper.IsInstalled(result.Config.Transcription.Model) {
		fmt.Printf("\nNext step: audioscribe model download %s\n", result.Config.Transcription.Model)
	}

	configPath, _ := config.GetConfigPath()
	fmt.Println(tui.StyleMuted.Render(fmt.Sprintf("\nConfig file location: %s", configPath)))

	return nil
}

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check external dependencies and configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor()
		},
	}
}

func runDoctor() error {
	missing := false

	fmt.Println("External tools:")
	for _, status := range deps.CheckAll() {
		if status.Installed {
			line := fmt.Sprintf("  [x] %s (%s)", status.Name, status.Path)
			if status.Version != "" {
				line += " - " + status.Version
			}
			fmt.Println(line)
			continue
		}
		fmt.Printf("  [ ] %s - not found\n", status.Name)
		if status.Required {
			missing = true
		}
	}

	fmt.Println()
	fmt.Println("Configuration:")
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("  [ ] failed to load: %v\n", err)
		return err
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("  [ ] invalid: %v\n", err)
	} else {
		fmt.Printf("  [x] %s/%s\n", cfg.Transcription.Provider, cfg.Transcription.Model)
	}

	if cfg.Transcription.Provider == "whisper-cpp" {
		fmt.Println()
		fmt.Println("Local models:")
		installed := whisper.ListInstalled()
		if len(installed) == 0 {
			fmt.Println("  [ ] none installed (run: audioscribe model download base)")
		}
		for _, id := range installed {
			fmt.Printf("  [x] %s (%s)\n", id, whisper.GetModelPath(id))
		}
	}

	if missing {
		return fmt.Errorf("required dependencies missing")
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("audioscribe", Version)
		},
	}
}

func modelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Manage transcription models",
	}

	cmd.AddCommand(modelListCmd())
	cmd.AddCommand(modelDownloadCmd())
	cmd.AddCommand(modelRemoveCmd())

	return cmd
}

func modelListCmd() *cobra.Command {
	var providerFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available transcription models",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModelList(providerFilter)
		},
	}

	cmd.Flags().StringVar(&providerFilter, "provider", "", "filter by provider name")

	return cmd
}

func runModelList(providerFilter string) error {
	providerNames := provider.ListProviders()

	if providerFilter != "" {
		found := false
		for _, name := range providerNames {
			if name == providerFilter {
				providerNames = []string{name}
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown provider: %s", providerFilter)
		}
	}

	for _, providerName := range providerNames {
		p := provider.GetProvider(providerName)
		if p == nil {
			continue
		}

		models := p.Models()
		if len(models) == 0 {
			continue
		}

		fmt.Printf("\n%s:\n", providerName)
		for _, m := range models {
			printModelLine(m)
		}
	}

	fmt.Println()
	return nil
}

func printModelLine(m provider.Model) {
	// checkmark for installed local models
	prefix := "  "
	if m.Local {
		if whisper.IsInstalled(m.ID) {
			prefix = "  [x]"
		} else {
			prefix = "  [ ]"
		}
	}

	line := fmt.Sprintf("%s %s", prefix, m.ID)
	if m.Description != "" {
		line += fmt.Sprintf(" - %s", m.Description)
	}
	if m.Local && m.Size != "" {
		line += fmt.Sprintf(" [%s]", m.Size)
	}

	fmt.Println(line)
}

func modelDownloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "download <model-name>",
		Short: "Download a local whisper model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModelDownload(cmd.Context(), args[0])
		},
	}
}

func runModelDownload(ctx context.Context, modelName string) error {
	model, _, err := provider.FindModelByID(modelName)
	if err != nil {
		return fmt.Errorf("unknown model: %s", modelName)
	}

	if !model.NeedsDownload() {
		fmt.Printf("model '%s' is a cloud model and does not require download\n", modelName)
		return nil
	}

	if whisper.IsInstalled(modelName) {
		path := whisper.GetModelPath(modelName)
		fmt.Printf("model '%s' is already installed at %s\n", modelName, path)
		return nil
	}

	fmt.Printf("downloading %s", modelName)
	if model.Size != "" {
		fmt.Printf(" (%s)", model.Size)
	}
	fmt.Println("...")

	var lastPercent int
	err = whisper.Download(ctx, modelName, func(downloaded, total int64) {
		if total > 0 {
			percent := int(downloaded * 100 / total)
			if percent >= lastPercent+10 {
				fmt.Printf("%d%% ", percent)
				lastPercent = percent
			}
		}
	})
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	path := whisper.GetModelPath(modelName)
	fmt.Printf("\ndownload complete: %s\n", path)
	return nil
}

func modelRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <model-name>",
		Short: "Remove a downloaded local model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModelRemove(args[0])
		},
	}
}

func runModelRemove(modelName string) error {
	model, _, err := provider.FindModelByID(modelName)
	if err != nil {
		return fmt.Errorf("unknown model: %s", modelName)
	}

	if !model.NeedsDownload() {
		fmt.Printf("model '%s' is a cloud model, nothing to remove\n", modelName)
		return nil
	}

	if !whisper.IsInstalled(modelName) {
		return fmt.Errorf("model '%s' is not installed", modelName)
	}

	if err := whisper.Remove(modelName); err != nil {
		return fmt.Errorf("failed to remove model: %w", err)
	}

	fmt.Printf("model '%s' removed successfully\n", modelName)
	return nil
}
