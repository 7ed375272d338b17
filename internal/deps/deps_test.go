package deps

import "testing"

func TestCheckMissingBinary(t *testing.T) {
	status := Check(Dependency{Name: "nope", Binary: "definitely-not-on-path-xyz", Required: true})
	if status.Installed {
		t.Error("missing binary reported as installed")
	}
	if !status.Required {
		t.Error("required flag not carried through")
	}
	if status.Path != "" || status.Version != "" {
		t.Errorf("missing binary should have no path/version, got %q %q", status.Path, status.Version)
	}
}

func TestAllListsKnownTools(t *testing.T) {
	all := All()
	if len(all) != 3 {
		t.Fatalf("expected 3 dependencies, got %d", len(all))
	}

	required := map[string]bool{"ffmpeg": true, "ffprobe": true, "whisper-cli": false}
	for _, d := range all {
		want, ok := required[d.Name]
		if !ok {
			t.Errorf("unexpected dependency %s", d.Name)
			continue
		}
		if d.Required != want {
			t.Errorf("%s required = %v, want %v", d.Name, d.Required, want)
		}
	}
}

func TestCheckAllCoversAll(t *testing.T) {
	if got, want := len(CheckAll()), len(All()); got != want {
		t.Errorf("CheckAll returned %d statuses, want %d", got, want)
	}
}
