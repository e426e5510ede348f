package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AppRecord represents one discovered candidate application file
type AppRecord struct {
	Name        string      // Display name, derived from the containing directory
	EntryPath   string      // Absolute path to the discovered entry file
	Dir         string      // Absolute path to the containing directory
	Type        RuntimeType // Detected runtime framework
	Category    Category    // Assigned subject category
	SizeBytes   int64       // Total bytes of all files under Dir
	HasManifest bool        // A dependency manifest exists directly in Dir
	HasReadme   bool        // A readme exists directly in Dir
}

// EntryFile returns the base name of the entry file
func (r *AppRecord) EntryFile() string {
	return filepath.Base(r.EntryPath)
}

// SizeHuman returns the folder size in human-readable form
func (r *AppRecord) SizeHuman() string {
	return FormatSize(r.SizeBytes)
}

// Matches reports whether the record passes the given filter predicates.
// An empty query matches everything; nil category/type sets disable that filter.
func (r *AppRecord) Matches(query string, categories map[Category]bool, types map[RuntimeType]bool) bool {
	if query != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(query)) {
		return false
	}
	if len(categories) > 0 && !categories[r.Category] {
		return false
	}
	if len(types) > 0 && !types[r.Type] {
		return false
	}
	return true
}

// FormatSize formats a byte count in human readable form, stepping
// through B, KB, MB and GB and overflowing to TB, one decimal place.
func FormatSize(bytes int64) string {
	size := float64(bytes)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024.0 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024.0
	}
	return fmt.Sprintf("%.1f TB", size)
}
