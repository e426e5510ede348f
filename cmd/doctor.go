package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/config"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/git"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/installer"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment for required external tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		fmt.Println("External tools:")
		missing := 0
		for _, tool := range installer.CheckEnvironment() {
			if tool.Available {
				fmt.Printf("  ✓ %-10s %s\n", tool.Name, tool.Path)
			} else {
				fmt.Printf("  ✗ %-10s not found on PATH\n", tool.Name)
				missing++
			}
		}

		fmt.Println("\nConfiguration:")
		fmt.Printf("  config file  %s\n", config.ConfigPath())
		fmt.Printf("  repo path    %s (exists: %v)\n", cfg.RepoPath, cfg.RepoExists())
		fmt.Printf("  base path    %s\n", cfg.BasePath)

		if repo := git.NewRepo(cfg.RepoPath); repo.IsRepo() {
			fmt.Printf("  repo branch  %s\n", repo.CurrentBranch())
			if remote := repo.RemoteURL(); remote != "" {
				fmt.Printf("  repo remote  %s\n", remote)
			}
		}

		if missing > 0 {
			return fmt.Errorf("%d required tools missing", missing)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
