package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	RepoURL  string `yaml:"repo_url"`  // URL of the apps repository to clone
	RepoPath string `yaml:"repo_path"` // Path the repository is cloned into
	BasePath string `yaml:"base_path"` // Root of the categorized output tree
	FirstRun bool   `yaml:"-"`         // Is this the first run?
}

// configFileName is the name of the config file
const configFileName = "nokio.yaml"

// Default returns the default configuration
func Default() *Config {
	return &Config{
		RepoPath: "Ipynb-okio",
		BasePath: "Pinokio-Apps",
		FirstRun: true,
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "nokio", configFileName)
}

// Load loads the configuration from file
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			// First run - return default config
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.FirstRun = false
	return cfg, nil
}

// Save saves the configuration to file
func (c *Config) Save() error {
	configPath := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDirectories creates the base output directory
func (c *Config) EnsureDirectories() error {
	return os.MkdirAll(c.BasePath, 0755)
}

// RepoExists checks if the apps repository has been cloned
func (c *Config) RepoExists() bool {
	_, err := os.Stat(c.RepoPath)
	return err == nil
}
