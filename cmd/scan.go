package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/models"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/scanner"
)

var (
	flagScanCategory string
	flagScanType     string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the repository and list the app catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		records := scanner.New(cfg.RepoPath, newLogger("scanner")).Scan()

		var categories map[models.Category]bool
		if flagScanCategory != "" {
			categories = map[models.Category]bool{models.Category(flagScanCategory): true}
		}
		var types map[models.RuntimeType]bool
		if flagScanType != "" {
			types = map[models.RuntimeType]bool{models.RuntimeType(flagScanType): true}
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTYPE\tCATEGORY\tSIZE\tENTRY")
		shown := 0
		for _, r := range records {
			if !r.Matches("", categories, types) {
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Name, r.Type, r.Category, r.SizeHuman(), r.EntryPath)
			shown++
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\n%d apps", shown)
		if shown != len(records) {
			fmt.Printf(" (of %d)", len(records))
		}
		fmt.Println()

		counts := scanner.CountByCategory(records)
		for _, c := range models.Categories() {
			if n := counts[c]; n > 0 {
				fmt.Printf("  %-22s %d\n", c, n)
			}
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&flagScanCategory, "category", "", "only list apps in this category tag")
	scanCmd.Flags().StringVar(&flagScanType, "type", "", "only list apps of this runtime type")
	rootCmd.AddCommand(scanCmd)
}
