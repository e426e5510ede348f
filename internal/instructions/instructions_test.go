package instructions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/models"
)

func TestForDedicatedTemplates(t *testing.T) {
	tests := []struct {
		runtimeType models.RuntimeType
		wantHeading string
		wantSnippet string
	}{
		{models.TypeStreamlit, "**Streamlit App Detected**", "pyngrok"},
		{models.TypeGradio, "**Gradio App Detected**", "import gradio as gr"},
		{models.TypePanel, "**Panel App Detected**", "pn.extension(comms='colab')"},
		{models.TypeJupyter, "**Jupyter Notebook Detected**", "jupyter nbconvert"},
	}

	for _, tt := range tests {
		t.Run(string(tt.runtimeType), func(t *testing.T) {
			got := For(tt.runtimeType, t.TempDir())
			if !strings.Contains(got, tt.wantHeading) {
				t.Errorf("missing heading %q in:\n%s", tt.wantHeading, got)
			}
			if !strings.Contains(got, tt.wantSnippet) {
				t.Errorf("missing snippet %q", tt.wantSnippet)
			}
		})
	}
}

func TestForPythonFallback(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"main.py", "helpers.py"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("pass"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	for _, rt := range []models.RuntimeType{models.TypePython, models.TypeFlask, models.TypeUnknown} {
		got := For(rt, dir)
		if !strings.Contains(got, "**Python App Detected**") {
			t.Errorf("%v: expected the generic Python template", rt)
		}
		if !strings.Contains(got, "%cd "+dir) {
			t.Errorf("%v: missing cd directive for %s", rt, dir)
		}
		if !strings.Contains(got, "- `main.py`") || !strings.Contains(got, "- `helpers.py`") {
			t.Errorf("%v: missing file listing:\n%s", rt, got)
		}
	}
}

func TestPythonFallbackTruncatesListing(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 13; i++ {
		name := fmt.Sprintf("module_%02d.py", i)
		if err := os.WriteFile(filepath.Join(dir, name), []byte("pass"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got := For(models.TypePython, dir)
	if !strings.Contains(got, "... and 3 more files") {
		t.Errorf("expected truncation note for 13 files, got:\n%s", got)
	}
	if strings.Contains(got, "module_10.py") {
		t.Errorf("files past the cap must not be listed:\n%s", got)
	}
}

func TestPythonFallbackListsNestedFilesRelative(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "pkg")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "core.py"), []byte("pass"), 0644); err != nil {
		t.Fatal(err)
	}

	got := For(models.TypePython, dir)
	want := "- `" + filepath.Join("pkg", "core.py") + "`"
	if !strings.Contains(got, want) {
		t.Errorf("expected relative nested path %q in:\n%s", want, got)
	}
}
