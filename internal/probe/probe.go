// Package probe collects per-directory metadata for catalogued apps: total
// size, dependency manifest presence and readme presence/content.
package probe

import (
	"io/fs"
	"os"
	"path/filepath"
)

// manifestNames are checked as direct children, in priority order
var manifestNames = []string{
	"requirements.txt",
	"environment.yml",
	"pyproject.toml",
	"setup.py",
}

// readmeNames are checked as direct children, in priority order
var readmeNames = []string{
	"README.md",
	"README.rst",
	"README.txt",
	"readme.md",
}

// FolderSize returns the total byte size of all regular files under dir.
// Any traversal error yields 0; errors are never propagated. WalkDir does not
// follow symlinks, so link cycles inside app directories cannot recurse.
func FolderSize(dir string) int64 {
	var total int64

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			info, err := d.Info()
			if err != nil {
				return err
			}
			total += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0
	}

	return total
}

// HasDependencyManifest reports whether dir directly contains a dependency
// manifest (requirements.txt, environment.yml, pyproject.toml or setup.py).
func HasDependencyManifest(dir string) bool {
	for _, name := range manifestNames {
		if pathExists(filepath.Join(dir, name)) {
			return true
		}
	}
	return false
}

// HasReadme reports whether dir directly contains a readme file
func HasReadme(dir string) bool {
	return FindReadme(dir) != ""
}

// FindReadme returns the path of the first readme found directly in dir,
// honoring the fixed priority order, or "" when none exists.
func FindReadme(dir string) string {
	for _, name := range readmeNames {
		path := filepath.Join(dir, name)
		if pathExists(path) {
			return path
		}
	}
	return ""
}

// ReadReadme returns the verbatim content of the app's readme.
// A missing readme is not an error; it yields an advisory message.
func ReadReadme(dir string) (string, error) {
	path := FindReadme(dir)
	if path == "" {
		return "No README file found.", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
