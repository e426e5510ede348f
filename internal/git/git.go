// Package git clones the apps repository and reads basic repository
// information for display. Cloning goes through the git binary; inspection
// uses go-git so no subprocess is needed per lookup.
package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/hashicorp/go-hclog"
)

// CloneTimeout bounds a single git clone subprocess
const CloneTimeout = 300 * time.Second

// Clone clones repoURL into dest, removing any pre-existing directory first.
// Success or failure follows the subprocess exit code; the captured output is
// returned either way so the UI can surface it verbatim.
func Clone(ctx context.Context, repoURL, dest string, logger hclog.Logger) (string, error) {
	if logger == nil {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "git",
			Output: os.Stderr,
			Level:  hclog.Info,
		})
	}

	if err := os.RemoveAll(dest); err != nil {
		return "", fmt.Errorf("removing existing repository: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, CloneTimeout)
	defer cancel()

	logger.Info("cloning repository", "url", repoURL, "dest", dest)

	cmd := exec.CommandContext(ctx, "git", "clone", repoURL, dest)
	output, err := cmd.CombinedOutput()
	if err != nil {
		logger.Error("clone failed", "url", repoURL, "error", err)
		return string(output), fmt.Errorf("clone failed: %s", strings.TrimSpace(string(output)))
	}

	logger.Info("repository cloned", "dest", dest)
	return string(output), nil
}

// Repo wraps read-only access to a cloned repository
type Repo struct {
	Path string
	repo *gogit.Repository
}

// NewRepo opens the repository at path; a non-repo path yields a Repo whose
// IsRepo reports false.
func NewRepo(path string) *Repo {
	r := &Repo{Path: path}
	repo, err := gogit.PlainOpen(path)
	if err == nil {
		r.repo = repo
	}
	return r
}

// IsRepo checks if the path is a git repository
func (r *Repo) IsRepo() bool {
	return r.repo != nil
}

// CurrentBranch returns the current branch name
func (r *Repo) CurrentBranch() string {
	if r.repo == nil {
		return "unknown"
	}

	head, err := r.repo.Head()
	if err != nil {
		return "unknown"
	}
	return head.Name().Short()
}

// RemoteURL returns the origin remote URL
func (r *Repo) RemoteURL() string {
	if r.repo == nil {
		return ""
	}

	remote, err := r.repo.Remote("origin")
	if err != nil {
		return ""
	}

	config := remote.Config()
	if len(config.URLs) > 0 {
		return config.URLs[0]
	}
	return ""
}

// CommitInfo holds commit information for display
type CommitInfo struct {
	Hash    string
	Message string
	Author  string
	Date    string
}

// Log returns up to count recent commits from HEAD
func (r *Repo) Log(count int) ([]CommitInfo, error) {
	if r.repo == nil {
		return nil, fmt.Errorf("not a git repository")
	}

	head, err := r.repo.Head()
	if err != nil {
		return nil, err
	}

	commitIter, err := r.repo.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, err
	}
	defer commitIter.Close()

	var commits []CommitInfo
	for len(commits) < count {
		c, err := commitIter.Next()
		if err != nil {
			break
		}
		commits = append(commits, CommitInfo{
			Hash:    c.Hash.String()[:7],
			Message: strings.Split(c.Message, "\n")[0],
			Author:  c.Author.Name,
			Date:    c.Author.When.Format("2006-01-02 15:04"),
		})
	}

	return commits, nil
}
