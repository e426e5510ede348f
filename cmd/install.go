package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/installer"
)

var installCmd = &cobra.Command{
	Use:   "install <app>",
	Short: "Install an app's Python dependencies",
	Long: `Looks for a dependency manifest in the app directory and runs
python3 -m pip install for requirements.txt files. Other manifest kinds
(environment.yml, pyproject.toml) are reported for manual installation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		app, err := findApp(cfg, args[0])
		if err != nil {
			return err
		}
		inst := installer.New(newLogger("installer"))
		fmt.Print(inst.Install(context.Background(), app.Dir))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
