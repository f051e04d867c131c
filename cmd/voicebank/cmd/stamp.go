package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/voicebank/pkg/datafile"
	"github.com/ssargent/voicebank/pkg/header"
)

// stampCmd represents the stamp command
var stampCmd = &cobra.Command{
	Use:   "stamp <file>",
	Short: "Create a voice data file with a stamped header",
	Long: `Create a new file starting with the 12-byte family header for the
given payload type. Payload bytes can be piped in on stdin; without
input the file contains only the header.

Examples:
  voicebank stamp --type timeline voice.timeline < timeline.raw
  voicebank stamp --type 200 empty.units`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		typeArg, _ := cmd.Flags().GetString("type")

		fileType, err := header.ParseType(typeArg)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		w, err := datafile.NewWriter(datafile.WriterConfig{
			FilePath: args[0],
			Type:     fileType,
		})
		if err != nil {
			cmd.Printf("Error creating file: %v\n", err)
			return
		}

		// Payload comes from stdin when something is piped in.
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
			if _, err := io.Copy(w, os.Stdin); err != nil {
				w.Close()
				cmd.Printf("Error writing payload: %v\n", err)
				return
			}
		}

		if err := w.Close(); err != nil {
			cmd.Printf("Error closing file: %v\n", err)
			return
		}

		cmd.Printf("Wrote %s (%d bytes, type %s)\n", args[0], w.Offset(), fileType)
	},
}

func init() {
	rootCmd.AddCommand(stampCmd)
	stampCmd.Flags().StringP("type", "t", "", "Payload type, by name (e.g. timeline) or code (e.g. 500)")
	stampCmd.MarkFlagRequired("type")
}
