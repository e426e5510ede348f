// Package scanner walks a cloned repository tree and builds the catalogue of
// candidate applications from every .py and .ipynb entry file it finds.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/classify"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/models"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/probe"
)

// candidateExts are the entry-file extensions that qualify a file as an app
var candidateExts = map[string]bool{
	".py":    true,
	".ipynb": true,
}

// Scanner discovers candidate apps under a repository root
type Scanner struct {
	root   string
	logger hclog.Logger
}

// New creates a Scanner for the given repository root
func New(root string, logger hclog.Logger) *Scanner {
	if logger == nil {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "scanner",
			Output: os.Stderr,
			Level:  hclog.Info,
		})
	}
	return &Scanner{root: root, logger: logger}
}

// Scan enumerates every candidate file under the root and returns one record
// per file, sorted by name. A missing root yields an empty catalogue, not an
// error. A file whose record cannot be built is skipped, and the scan goes on.
// No deduplication: a directory holding two .py files produces two records.
func (s *Scanner) Scan() []models.AppRecord {
	records := []models.AppRecord{}

	if _, err := os.Stat(s.root); err != nil {
		s.logger.Warn("repository path does not exist", "root", s.root)
		return records
	}

	rootName := filepath.Base(s.root)

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Debug("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if !d.Type().IsRegular() || !candidateExts[filepath.Ext(path)] {
			return nil
		}

		record, err := s.buildRecord(path, rootName)
		if err != nil {
			s.logger.Error("error building app record", "path", path, "error", err)
			return nil
		}
		records = append(records, record)
		return nil
	})
	if err != nil {
		s.logger.Error("scan aborted", "root", s.root, "error", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})

	s.logger.Info("scan complete", "root", s.root, "apps", len(records))
	return records
}

// buildRecord assembles one AppRecord for a candidate entry file. The name
// comes from the containing directory, falling back to the file stem when the
// directory is indistinguishable from the scan root itself.
func (s *Scanner) buildRecord(path string, rootName string) (models.AppRecord, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return models.AppRecord{}, err
	}

	dir := filepath.Dir(abs)
	name := filepath.Base(dir)
	if name == rootName {
		name = stem(filepath.Base(abs))
	}
	if name == "" {
		return models.AppRecord{}, fmt.Errorf("could not derive app name for %s", path)
	}

	runtimeType := classify.DetectRuntimeType(filepath.Base(abs))

	return models.AppRecord{
		Name:        name,
		EntryPath:   abs,
		Dir:         dir,
		Type:        runtimeType,
		Category:    classify.DetermineCategory(name, runtimeType),
		SizeBytes:   probe.FolderSize(dir),
		HasManifest: probe.HasDependencyManifest(dir),
		HasReadme:   probe.HasReadme(dir),
	}, nil
}

// stem returns the file name without its extension
func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// CountByCategory tallies records per category, in fixed category order
func CountByCategory(records []models.AppRecord) map[models.Category]int {
	counts := make(map[models.Category]int)
	for _, r := range records {
		counts[r.Category]++
	}
	return counts
}

// CountByType tallies records per detected runtime type
func CountByType(records []models.AppRecord) map[models.RuntimeType]int {
	counts := make(map[models.RuntimeType]int)
	for _, r := range records {
		counts[r.Type]++
	}
	return counts
}
