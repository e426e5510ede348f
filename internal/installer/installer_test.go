package installer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func writeManifest(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFindManifestPriority(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "pyproject.toml")
	writeManifest(t, dir, "requirements.txt")

	got := FindManifest(dir)
	if filepath.Base(got) != "requirements.txt" {
		t.Errorf("FindManifest() = %q, want requirements.txt first", got)
	}
}

func TestFindManifestNone(t *testing.T) {
	if got := FindManifest(t.TempDir()); got != "" {
		t.Errorf("FindManifest() = %q, want empty", got)
	}
}

func TestInstallNoManifest(t *testing.T) {
	inst := New(hclog.NewNullLogger())
	got := inst.Install(context.Background(), t.TempDir())
	if got != "No requirements file found.\n" {
		t.Errorf("Install() = %q", got)
	}
}

func TestInstallManualManifest(t *testing.T) {
	for _, name := range []string{"environment.yml", "pyproject.toml"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeManifest(t, dir, name)

			got := New(hclog.NewNullLogger()).Install(context.Background(), dir)
			if !strings.Contains(got, "Requirements file found: "+name) {
				t.Errorf("Install() = %q, want manual-install notice for %s", got, name)
			}
			if !strings.Contains(got, "install dependencies manually") {
				t.Errorf("Install() = %q, missing manual-install advisory", got)
			}
		})
	}
}

func TestInstallNeverPanicsOnSubprocessFailure(t *testing.T) {
	dir := t.TempDir()
	// Nonsense requirement so an actual pip run fails fast; a missing
	// python3 also exercises the error path.
	writeManifest(t, dir, "requirements.txt")

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // force the subprocess path to fail immediately

	got := New(hclog.NewNullLogger()).Install(ctx, dir)
	if !strings.Contains(got, "```") {
		t.Errorf("Install() = %q, want fenced output block", got)
	}
	if !strings.Contains(got, "Error installing dependencies:") {
		t.Errorf("Install() = %q, want error text on failure", got)
	}
}

func TestCheckEnvironment(t *testing.T) {
	statuses := CheckEnvironment()
	if len(statuses) != 4 {
		t.Fatalf("CheckEnvironment() reported %d tools, want 4", len(statuses))
	}

	names := map[string]bool{}
	for _, s := range statuses {
		names[s.Name] = true
		if s.Available && s.Path == "" {
			t.Errorf("%s reported available without a path", s.Name)
		}
	}
	for _, want := range []string{"python3", "pip", "git", "jupyter"} {
		if !names[want] {
			t.Errorf("missing tool %s in report", want)
		}
	}
}
