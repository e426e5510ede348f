package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/git"
)

var cloneCmd = &cobra.Command{
	Use:   "clone [url]",
	Short: "Clone or re-clone the apps repository",
	Long: `Clones the configured repository URL into the repo path, replacing any
existing checkout. Pass a URL to clone a different repository and save it
to the config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if len(args) == 1 {
			cfg.RepoURL = args[0]
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
		}
		if cfg.RepoURL == "" {
			return fmt.Errorf("no repository URL configured; pass one as an argument")
		}

		output, err := git.Clone(context.Background(), cfg.RepoURL, cfg.RepoPath, newLogger("git"))
		if output != "" {
			fmt.Print(output)
		}
		if err != nil {
			return fmt.Errorf("cloning %s: %w", cfg.RepoURL, err)
		}

		fmt.Printf("Cloned %s into %s\n", cfg.RepoURL, cfg.RepoPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cloneCmd)
}
