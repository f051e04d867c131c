package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/voicebank/pkg/catalog"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Index the voice directory into the catalog",
	Long: `Walk a directory, peek the header of every file and record the
voice files in the catalog. Files that are not of the family are
skipped.

Example:
  voicebank scan voices/en-us`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			cmd.Printf("Error loading config: %v\n", err)
			return
		}

		dir := cfg.VoiceDir
		if len(args) == 1 {
			dir = args[0]
		}

		cat, err := catalog.Open(cfg.CatalogPath)
		if err != nil {
			cmd.Printf("Error opening catalog: %v\n", err)
			return
		}
		defer cat.Close()

		result, err := cat.Scan(dir)
		if err != nil {
			cmd.Printf("Error scanning %s: %v\n", dir, err)
			return
		}

		cmd.Printf("Scan %s of %s\n", result.ScanID, dir)
		cmd.Printf("  indexed: %d\n", result.Indexed)
		cmd.Printf("  skipped: %d\n", result.Skipped)
		cmd.Printf("  failed:  %d\n", result.Failed)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
