package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the nokio version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("nokio", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
