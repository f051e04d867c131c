package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/voicebank/pkg/api"
	"github.com/ssargent/voicebank/pkg/catalog"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the voicebank REST API server. The server exposes the
catalog, live header inspection of files under the voice directory and
Prometheus metrics.

Examples:
  voicebank serve --api-key=mysecretkey --port=8080
  voicebank serve --api-key=mysecretkey --voice-dir=./voices`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			cmd.Printf("Error loading config: %v\n", err)
			return
		}

		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Port = port
		}
		if apiKey, _ := cmd.Flags().GetString("api-key"); apiKey != "" {
			cfg.Security.APIKey = apiKey
		}
		if voiceDir, _ := cmd.Flags().GetString("voice-dir"); voiceDir != "" {
			cfg.VoiceDir = voiceDir
		}

		if cfg.Security.APIKey == "" || cfg.Security.APIKey == "auto" {
			cmd.Println("Error: an API key is required (run 'voicebank init' or pass --api-key)")
			return
		}

		cat, err := catalog.Open(cfg.CatalogPath)
		if err != nil {
			cmd.Printf("Error opening catalog: %v\n", err)
			return
		}
		defer cat.Close()

		serverConfig := api.ServerConfig{
			Port:     cfg.Port,
			Bind:     cfg.Bind,
			APIKey:   cfg.Security.APIKey,
			VoiceDir: cfg.VoiceDir,
		}

		if err := api.StartServer(cat, serverConfig); err != nil {
			cmd.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().String("api-key", "", "API key for authentication (overrides config)")
	serveCmd.Flags().String("voice-dir", "", "Voice directory served by peek requests (overrides config)")
}
