package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/voicebank/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "voicebank",
	Short: "voicebank - speech synthesis data file toolkit",
	Long: `voicebank inspects and catalogs the binary data files used by
speech synthesis voices: unit inventories, decision trees, feature
tables and timelines.

Every file of the family starts with a 12-byte header carrying the
magic, format version and payload type. voicebank reads that header to
classify files without ever parsing their payloads.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default is ~/.config/voicebank/config.yaml)")
}

// loadConfig returns the active configuration. A missing config file is
// not an error; defaults apply until 'voicebank init' is run.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.GetDefaultConfigPath()
	}
	if !config.ConfigExists(path) {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(path)
}
