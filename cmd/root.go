// Package cmd wires the cobra command tree. Every command is a thin shell
// over the internal packages; the bare invocation launches the TUI.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/config"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/models"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/scanner"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/tui"
)

var (
	flagRepoPath string
	flagBasePath string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "nokio",
	Short: "Discover, classify and organize Python apps in a cloned repository",
	Long: `nokio scans a repository of Python scripts and notebooks, classifies each
app by runtime type and subject category, and organizes the catalogue into
numbered category folders. Run without arguments to open the interactive
browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(tui.New(), tea.WithAltScreen(), tea.WithMouseCellMotion())
		_, err := p.Run()
		return err
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRepoPath, "repo-path", "", "path of the cloned apps repository (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagBasePath, "base-path", "", "path of the organized apps tree (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig loads the saved config and applies flag overrides
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	if flagRepoPath != "" {
		cfg.RepoPath = flagRepoPath
	}
	if flagBasePath != "" {
		cfg.BasePath = flagBasePath
	}
	return cfg
}

func newLogger(name string) hclog.Logger {
	level := hclog.Warn
	if flagVerbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Output: os.Stderr,
		Level:  level,
	})
}

// findApp scans the configured repository and returns the record whose name
// matches exactly. Errors when no app carries that name.
func findApp(cfg *config.Config, name string) (*models.AppRecord, error) {
	records := scanner.New(cfg.RepoPath, newLogger("scanner")).Scan()
	for i := range records {
		if records[i].Name == name {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("no app named %q found under %s (%d apps scanned)", name, cfg.RepoPath, len(records))
}
