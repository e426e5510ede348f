package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeApp(t *testing.T, root, dir, file string) {
	t.Helper()
	appDir := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(appDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, file), []byte("pass"), 0644))
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	flagRepoPath = "/custom/repo"
	flagBasePath = "/custom/base"
	t.Cleanup(func() { flagRepoPath, flagBasePath = "", "" })

	cfg := loadConfig()
	assert.Equal(t, "/custom/repo", cfg.RepoPath)
	assert.Equal(t, "/custom/base", cfg.BasePath)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := loadConfig()
	assert.Equal(t, "Ipynb-okio", cfg.RepoPath)
	assert.Equal(t, "Pinokio-Apps", cfg.BasePath)
}

func TestFindApp(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()
	writeApp(t, root, "DemoApp", "streamlit_app.py")

	flagRepoPath = root
	t.Cleanup(func() { flagRepoPath = "" })

	cfg := loadConfig()
	app, err := findApp(cfg, "DemoApp")
	require.NoError(t, err)
	assert.Equal(t, "DemoApp", app.Name)

	_, err = findApp(cfg, "NoSuchApp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchApp")
}

func TestScanCommandEmptyRoot(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	flagRepoPath = t.TempDir()
	t.Cleanup(func() { flagRepoPath = "" })

	// An empty repository lists an empty catalogue without error
	require.NoError(t, scanCmd.RunE(scanCmd, nil))
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"scan", "organize", "instructions", "install", "readme", "clone", "doctor", "version"} {
		assert.True(t, names[want], "command %s not registered", want)
	}
}
