package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/organizer"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/scanner"
)

var organizeCmd = &cobra.Command{
	Use:   "organize",
	Short: "Place every scanned app into its category folder",
	Long: `Scans the repository and places each app under <base-path>/<category>/<name>.
Placement prefers a symlink to the app directory and falls back to a
recursive copy when linking fails. A failing app never aborts the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if err := cfg.EnsureDirectories(); err != nil {
			return err
		}

		records := scanner.New(cfg.RepoPath, newLogger("scanner")).Scan()
		placements := organizer.New(cfg.BasePath, newLogger("organizer")).Organize(records)

		for _, p := range placements {
			switch {
			case p.Err != nil:
				fmt.Printf("✗ %s: %v\n", p.App.Name, p.Err)
			case p.Method == organizer.MethodCopy:
				fmt.Printf("● %s → %s (copied)\n", p.App.Name, p.Target)
			default:
				fmt.Printf("✓ %s → %s\n", p.App.Name, p.Target)
			}
		}

		failed := organizer.Failed(placements)
		fmt.Printf("\n%d apps placed under %s, %d failed\n", len(placements)-failed, cfg.BasePath, failed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(organizeCmd)
}
