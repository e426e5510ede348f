package probe

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestFolderSize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "12345")
	writeFile(t, dir, "b.txt", "1234567890")

	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, sub, "c.dat", "12345")

	if got := FolderSize(dir); got != 20 {
		t.Errorf("FolderSize() = %d, want 20", got)
	}
}

func TestFolderSizeMissingDir(t *testing.T) {
	if got := FolderSize(filepath.Join(t.TempDir(), "nope")); got != 0 {
		t.Errorf("FolderSize(missing) = %d, want 0", got)
	}
}

func TestHasDependencyManifest(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		want     bool
	}{
		{"requirements", "requirements.txt", true},
		{"conda env", "environment.yml", true},
		{"pyproject", "pyproject.toml", true},
		{"setup script", "setup.py", true},
		{"none", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.manifest != "" {
				writeFile(t, dir, tt.manifest, "x")
			}
			if got := HasDependencyManifest(dir); got != tt.want {
				t.Errorf("HasDependencyManifest() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasDependencyManifestIgnoresNested(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "vendor")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, sub, "requirements.txt", "x")

	if HasDependencyManifest(dir) {
		t.Error("nested manifest should not count")
	}
}

func TestFindReadmePriority(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.rst", "rst")
	writeFile(t, dir, "README.md", "md")

	got := FindReadme(dir)
	if filepath.Base(got) != "README.md" {
		t.Errorf("FindReadme() = %q, want README.md first", got)
	}
}

func TestReadReadme(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "# Demo App\n")

	content, err := ReadReadme(dir)
	if err != nil {
		t.Fatalf("ReadReadme() error: %v", err)
	}
	if content != "# Demo App\n" {
		t.Errorf("ReadReadme() = %q, want verbatim content", content)
	}
}

func TestReadReadmeMissing(t *testing.T) {
	content, err := ReadReadme(t.TempDir())
	if err != nil {
		t.Fatalf("missing readme should not be an error, got %v", err)
	}
	if content != "No README file found." {
		t.Errorf("ReadReadme() = %q, want advisory message", content)
	}
}
