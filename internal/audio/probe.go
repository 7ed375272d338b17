package audio

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

// Prober reads container and stream metadata from an audio file via ffprobe.
type Prober struct {
	ffprobePath string
	runner      commandRunner
}

func NewProber() *Prober {
	return &Prober{
		ffprobePath: "ffprobe",
		runner:      &execRunner{},
	}
}

// ffprobe -print_format json output, limited to the fields we need.
type probeOutput struct {
	Format struct {
		FormatName string `json:"format_name"`
		Duration   string `json:"duration"`
		Size       string `json:"size"`
	} `json:"format"`
	Streams []struct {
		CodecType  string `json:"codec_type"`
		SampleRate string `json:"sample_rate"`
		Channels   int    `json:"channels"`
	} `json:"streams"`
}

// Probe returns an immutable Asset for the given file. Any failure to read
// or parse the file is reported as a DecodeError.
func (p *Prober) Probe(ctx context.Context, path string) (Asset, error) {
	if _, err := os.Stat(path); err != nil {
		return Asset{}, NewDecodeError(path, err)
	}

	args := []string{
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	}

	result, err := p.runner.Run(ctx, p.ffprobePath, args...)
	if err != nil {
		log.Printf("probe: ffprobe failed for %s: %v (stderr: %s)", path, err, result.Stderr)
		return Asset{}, NewDecodeError(path, err)
	}

	return parseProbeOutput([]byte(result.Stdout), path)
}

// parseProbeOutput converts raw ffprobe JSON into an Asset.
func parseProbeOutput(data []byte, path string) (Asset, error) {
	var out probeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return Asset{}, NewDecodeError(path, fmt.Errorf("parse ffprobe output: %w", err))
	}

	seconds, err := strconv.ParseFloat(out.Format.Duration, 64)
	if err != nil || seconds <= 0 {
		return Asset{}, NewDecodeError(path, fmt.Errorf("no usable duration in ffprobe output (%q)", out.Format.Duration))
	}

	asset := Asset{
		Path:       path,
		Duration:   time.Duration(seconds * float64(time.Second)),
		FormatName: out.Format.FormatName,
	}

	if out.Format.Size != "" {
		if size, err := strconv.ParseInt(out.Format.Size, 10, 64); err == nil {
			asset.Size = size
		}
	}

	found := false
	for _, stream := range out.Streams {
		if stream.CodecType != "audio" {
			continue
		}
		found = true
		asset.Channels = stream.Channels
		if rate, err := strconv.Atoi(stream.SampleRate); err == nil {
			asset.SampleRate = rate
		}
		break
	}
	if !found {
		return Asset{}, NewDecodeError(path, fmt.Errorf("no audio stream found"))
	}

	return asset, nil
}

// NewProberForTests constructs a prober with an injectable command runner.
func NewProberForTests(ffprobePath string, runner commandRunner) *Prober {
	return &Prober{ffprobePath: ffprobePath, runner: runner}
}
