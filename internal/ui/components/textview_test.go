package components

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/models"
)

func TestTextViewSetText(t *testing.T) {
	v := NewTextView()
	v.SetText("Organize report", "summary", "line one\nline two\nline three")

	if v.Title != "Organize report" {
		t.Errorf("Title = %q", v.Title)
	}
	if v.TotalLines != 3 {
		t.Errorf("TotalLines = %d, want 3", v.TotalLines)
	}

	view := v.View()
	if !strings.Contains(view, "Organize report") {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "line one") {
		t.Error("view missing content")
	}
}

func TestTextViewLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.py")
	if err := os.WriteFile(path, []byte("import streamlit\nprint('hi')\n"), 0644); err != nil {
		t.Fatal(err)
	}

	v := NewTextView()
	record := &models.AppRecord{Name: "Demo", EntryPath: path}
	if err := v.LoadFile(record); err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	if v.Title != "Demo" {
		t.Errorf("Title = %q, want Demo", v.Title)
	}
	if v.TotalLines != 3 { // two lines plus trailing newline
		t.Errorf("TotalLines = %d, want 3", v.TotalLines)
	}

	view := v.View()
	if !strings.Contains(view, "│") {
		t.Error("preview should include line-number gutters")
	}
}

func TestTextViewLoadFileMissing(t *testing.T) {
	v := NewTextView()
	record := &models.AppRecord{Name: "Ghost", EntryPath: filepath.Join(t.TempDir(), "nope.py")}
	if err := v.LoadFile(record); err == nil {
		t.Error("LoadFile() on missing file should error")
	}
}

func TestTextViewLoadFileBinary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.py")
	if err := os.WriteFile(path, []byte{0x00, 0x01, 0x02, 0xFF}, 0644); err != nil {
		t.Fatal(err)
	}

	v := NewTextView()
	if err := v.LoadFile(&models.AppRecord{Name: "Blob", EntryPath: path}); err != nil {
		t.Fatalf("binary file should degrade, not error: %v", err)
	}
	if !strings.Contains(v.View(), "Binary file") {
		t.Error("expected binary advisory in view")
	}
}

func TestIsBinaryContent(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"empty", nil, false},
		{"plain text", []byte("hello world\n"), false},
		{"null byte", []byte{'a', 0x00, 'b'}, true},
		{"mostly control bytes", []byte{0x01, 0x02, 0x03, 'a'}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isBinaryContent(tt.data); got != tt.want {
				t.Errorf("isBinaryContent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTextViewSetSizeClamps(t *testing.T) {
	v := NewTextView()
	v.SetSize(10, 3)
	// Tiny terminals must not produce a zero-height viewport
	if v.Width != 10 || v.Height != 3 {
		t.Errorf("dimensions not stored: %dx%d", v.Width, v.Height)
	}
	v.SetText("t", "s", "x")
	if v.View() == "" {
		t.Error("view should render at minimal size")
	}
}
