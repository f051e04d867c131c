package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ssargent/voicebank/pkg/catalog"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the voice files known to the catalog",
	Long: `Print every catalog entry with its payload type, format version
and size. Run 'voicebank scan' first to populate the catalog.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			cmd.Printf("Error loading config: %v\n", err)
			return
		}

		cat, err := catalog.Open(cfg.CatalogPath)
		if err != nil {
			cmd.Printf("Error opening catalog: %v\n", err)
			return
		}
		defer cat.Close()

		entries, err := cat.List()
		if err != nil {
			cmd.Printf("Error listing catalog: %v\n", err)
			return
		}
		if len(entries) == 0 {
			cmd.Println("Catalog is empty. Run 'voicebank scan' first.")
			return
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(tw, "TYPE\tVERSION\tSIZE\tPATH")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", e.TypeName, e.Version, e.Size, e.Path)
		}
		tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
