// Package installer locates dependency manifests in app directories and runs
// pip installs for them, with a hard timeout. Output is captured for display
// rather than streamed; a failed install is a user-visible message, not fatal.
package installer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"
)

// InstallTimeout bounds a single pip install subprocess
const InstallTimeout = 300 * time.Second

// installableManifests are searched in priority order; only requirements.txt
// is installed automatically, the rest are reported for manual handling.
var installableManifests = []string{
	"requirements.txt",
	"environment.yml",
	"pyproject.toml",
}

// Installer runs dependency installation for catalogued apps
type Installer struct {
	logger hclog.Logger
}

// New creates an Installer
func New(logger hclog.Logger) *Installer {
	if logger == nil {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "installer",
			Output: os.Stderr,
			Level:  hclog.Info,
		})
	}
	return &Installer{logger: logger}
}

// FindManifest returns the first dependency manifest found directly in dir,
// honoring priority order, or "" when none exists.
func FindManifest(dir string) string {
	for _, name := range installableManifests {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Install installs the dependencies of the app in dir and returns display
// text describing the outcome. Only requirements.txt triggers a pip
// subprocess; other manifest types are reported as found-install-manually.
// Subprocess failure comes back as text, never as a crash.
func (i *Installer) Install(ctx context.Context, dir string) string {
	manifest := FindManifest(dir)
	if manifest == "" {
		return "No requirements file found.\n"
	}

	if filepath.Base(manifest) != "requirements.txt" {
		return fmt.Sprintf("Requirements file found: %s\nPlease install dependencies manually for this file type.\n", filepath.Base(manifest))
	}

	ctx, cancel := context.WithTimeout(ctx, InstallTimeout)
	defer cancel()

	i.logger.Info("installing dependencies", "manifest", manifest)

	cmd := exec.CommandContext(ctx, "python3", "-m", "pip", "install", "-r", manifest)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := fmt.Sprintf("```\n%s\n```\n", stdout.String())
	if stderr.Len() > 0 {
		output += fmt.Sprintf("**Errors:**\n```\n%s\n```\n", stderr.String())
	}
	if err != nil {
		i.logger.Error("dependency install failed", "manifest", manifest, "error", err)
		output += fmt.Sprintf("Error installing dependencies: %v\n", err)
	}

	return output
}

// ToolStatus reports whether one required external tool is on PATH
type ToolStatus struct {
	Name      string
	Available bool
	Path      string
}

// requiredTools are the external programs the app store shells out to or
// recommends in its instructions
var requiredTools = []string{"python3", "pip", "git", "jupyter"}

// CheckEnvironment probes PATH for every required tool. Missing tools are
// reported, never fatal.
func CheckEnvironment() []ToolStatus {
	statuses := make([]ToolStatus, 0, len(requiredTools))
	for _, name := range requiredTools {
		path, err := exec.LookPath(name)
		statuses = append(statuses, ToolStatus{
			Name:      name,
			Available: err == nil,
			Path:      path,
		})
	}
	return statuses
}
