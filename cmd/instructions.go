package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/instructions"
)

var instructionsCmd = &cobra.Command{
	Use:   "instructions <app>",
	Short: "Print launch instructions for an app",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		app, err := findApp(cfg, args[0])
		if err != nil {
			return err
		}
		fmt.Print(instructions.For(app.Type, app.Dir))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(instructionsCmd)
}
