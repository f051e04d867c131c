package cmd

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/voicebank/pkg/header"
)

// peekCmd represents the peek command
var peekCmd = &cobra.Command{
	Use:   "peek <file>",
	Short: "Determine the payload type of a voice data file",
	Long: `Read only the 12-byte header of a voice data file and print its
payload type. The payload itself is never touched.

Example:
  voicebank peek voices/en-us/voice.timeline
  voicebank peek --full voices/en-us/voice.timeline`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		full, _ := cmd.Flags().GetBool("full")

		if !full {
			fileType, err := header.PeekType(args[0])
			if err != nil {
				cmd.Printf("Error: %v\n", err)
				return
			}
			cmd.Printf("%s (%d)\n", fileType, int32(fileType))
			return
		}

		// Full mode decodes without validating so broken headers can
		// still be inspected.
		f, err := os.Open(args[0])
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer f.Close()

		hdr, err := header.Decode(bufio.NewReader(f))
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		cmd.Printf("magic:   0x%08X (want 0x%08X)\n", uint32(hdr.Magic), uint32(header.Magic))
		cmd.Printf("version: %d (current %d)\n", hdr.Version, header.FormatVersion)
		cmd.Printf("type:    %s (%d)\n", hdr.Type, int32(hdr.Type))
		cmd.Printf("valid:   %t\n", hdr.IsValid())
		if err := hdr.Validate(); err != nil {
			cmd.Printf("reason:  %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(peekCmd)
	peekCmd.Flags().Bool("full", false, "Print all header fields, even for invalid headers")
}
