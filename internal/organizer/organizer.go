// Package organizer materializes a categorized view of the catalogue by
// placing each app under its category folder, by symlink when possible and by
// full copy otherwise.
package organizer

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	cp "github.com/otiai10/copy"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/models"
)

// Method describes how an app was placed under its category folder
type Method int

const (
	MethodNone Method = iota
	MethodLink
	MethodCopy
)

func (m Method) String() string {
	switch m {
	case MethodLink:
		return "link"
	case MethodCopy:
		return "copy"
	default:
		return "none"
	}
}

// Placement is the per-app outcome of an organize run. A failed placement
// carries its error here instead of aborting the remaining apps.
type Placement struct {
	App    models.AppRecord
	Target string
	Method Method
	Err    error
}

// Organizer places catalogued apps into category folders under a base path
type Organizer struct {
	basePath string
	logger   hclog.Logger
}

// New creates an Organizer rooted at basePath
func New(basePath string, logger hclog.Logger) *Organizer {
	if logger == nil {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "organizer",
			Output: os.Stderr,
			Level:  hclog.Info,
		})
	}
	return &Organizer{basePath: basePath, logger: logger}
}

// Organize places every record under its category folder and returns one
// Placement per record. Individual failures are logged and recorded, never
// fatal: the run always continues through the whole catalogue. Re-running on
// the same catalogue is idempotent because pre-existing targets are removed
// before placement.
func (o *Organizer) Organize(records []models.AppRecord) []Placement {
	placements := make([]Placement, 0, len(records))

	for _, category := range models.Categories() {
		categoryDir := filepath.Join(o.basePath, string(category))
		if err := os.MkdirAll(categoryDir, 0755); err != nil {
			o.logger.Error("cannot create category folder", "dir", categoryDir, "error", err)
		}

		for _, record := range records {
			if record.Category != category {
				continue
			}
			placements = append(placements, o.place(record, categoryDir))
		}
	}

	o.logger.Info("organize complete", "apps", len(placements), "failed", Failed(placements))
	return placements
}

// place links or copies one app directory to its target path
func (o *Organizer) place(record models.AppRecord, categoryDir string) Placement {
	target := filepath.Join(categoryDir, record.Name)
	placement := Placement{App: record, Target: target}

	// A stale target, link or directory, is replaced wholesale
	if _, err := os.Lstat(target); err == nil {
		if err := os.RemoveAll(target); err != nil {
			o.logger.Error("cannot remove existing target", "target", target, "error", err)
			placement.Err = err
			return placement
		}
	}

	if err := os.Symlink(record.Dir, target); err == nil {
		placement.Method = MethodLink
		return placement
	}

	if err := cp.Copy(record.Dir, target); err != nil {
		o.logger.Error("error copying app", "app", record.Name, "error", err)
		placement.Err = err
		return placement
	}

	placement.Method = MethodCopy
	return placement
}

// Failed counts placements that ended in an error
func Failed(placements []Placement) int {
	failed := 0
	for _, p := range placements {
		if p.Err != nil {
			failed++
		}
	}
	return failed
}
