package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/voicebank/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init [voice-dir]",
	Short: "Create a voicebank configuration with a generated API key",
	Long: `Write a configuration file with sensible defaults and a freshly
generated API key. An existing configuration is never overwritten.

Example:
  voicebank init ./voices`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(path) {
			cmd.Printf("Config already exists at %s\n", path)
			return
		}

		voiceDir := ""
		if len(args) == 1 {
			voiceDir = args[0]
		}

		cfg, err := config.BootstrapConfig(path, voiceDir)
		if err != nil {
			cmd.Printf("Error creating config: %v\n", err)
			return
		}

		cmd.Printf("Config written to %s\n", path)
		cmd.Printf("Voice directory: %s\n", cfg.VoiceDir)
		cmd.Printf("API key: %s\n", cfg.Security.APIKey)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
