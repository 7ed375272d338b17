// Package deps checks for the external tools a transcribe run shells out
// to. The doctor command reports their status.
package deps

import (
	"os/exec"
	"strings"
)

// Status represents the installation status of a dependency
type Status struct {
	Name      string
	Installed bool
	Required  bool
	Path      string
	Version   string
}

// Dependency names one external binary and how to read its version.
type Dependency struct {
	Name        string
	Binary      string
	VersionArgs []string
	Required    bool
	Note        string // shown by doctor when the dependency is missing
}

// All lists every external tool in check order. ffmpeg and ffprobe are
// required for every run; whisper-cli only for the whisper-cpp provider.
func All() []Dependency {
	return []Dependency{
		{Name: "ffmpeg", Binary: "ffmpeg", VersionArgs: []string{"-version"}, Required: true, Note: "install ffmpeg (segment cutting)"},
		{Name: "ffprobe", Binary: "ffprobe", VersionArgs: []string{"-version"}, Required: true, Note: "install ffmpeg (duration probing)"},
		{Name: "whisper-cli", Binary: "whisper-cli", VersionArgs: []string{"--version"}, Required: false, Note: "install whisper.cpp for local transcription, or use the openai provider"},
	}
}

// Check resolves one dependency on PATH and reads its version line.
func Check(d Dependency) Status {
	path, err := exec.LookPath(d.Binary)
	if err != nil {
		return Status{Name: d.Name, Installed: false, Required: d.Required}
	}

	status := Status{
		Name:      d.Name,
		Installed: true,
		Required:  d.Required,
		Path:      path,
	}

	// first output line carries the version for all three tools
	cmd := exec.Command(path, d.VersionArgs...)
	output, err := cmd.Output()
	if err == nil {
		lines := strings.Split(string(output), "\n")
		if len(lines) > 0 {
			status.Version = strings.TrimSpace(lines[0])
		}
	}

	return status
}

// CheckAll runs Check over every known dependency.
func CheckAll() []Status {
	deps := All()
	statuses := make([]Status, 0, len(deps))
	for _, d := range deps {
		statuses = append(statuses, Check(d))
	}
	return statuses
}
