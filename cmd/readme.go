package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/probe"
)

var readmeCmd = &cobra.Command{
	Use:   "readme <app>",
	Short: "Print an app's readme verbatim",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		app, err := findApp(cfg, args[0])
		if err != nil {
			return err
		}
		content, err := probe.ReadReadme(app.Dir)
		if err != nil {
			return err
		}
		fmt.Println(content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readmeCmd)
}
