/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/molinab297/gosteg/pkg/api"
	"github.com/molinab297/gosteg/pkg/config"
	"github.com/molinab297/gosteg/pkg/journal"
	"github.com/molinab297/gosteg/pkg/stego"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the gosteg REST API server.

The server exposes encode, decode, and capacity endpoints over multipart
uploads, protected by an X-API-Key header. Run 'gosteg init' once to create
a configuration with a generated key, or pass --api-key directly.

Examples:
  gosteg serve --api-key=mysecretkey --port=8080
  gosteg serve --config ~/.config/gosteg/config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := loadServeConfig(configPath)
		if err != nil {
			return err
		}

		// Flags override the file.
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("bind") {
			cfg.Bind, _ = cmd.Flags().GetString("bind")
		}
		if cmd.Flags().Changed("api-key") {
			cfg.Security.APIKey, _ = cmd.Flags().GetString("api-key")
		}
		if cmd.Flags().Changed("journal") {
			cfg.Journal.Enabled, _ = cmd.Flags().GetBool("journal")
		}
		if cmd.Flags().Changed("journal-dir") {
			cfg.Journal.Dir, _ = cmd.Flags().GetString("journal-dir")
		}

		if cfg.Security.APIKey == "" || cfg.Security.APIKey == "auto" {
			return fmt.Errorf("no API key configured: pass --api-key or run 'gosteg init' first")
		}

		var jnl *journal.Journal
		if cfg.Journal.Enabled {
			// The root hook already holds an open journal when --journal was
			// passed, and the pebble directory lock forbids a second open.
			jnl = journalFromContext(cmd)
			if jnl == nil {
				jnl, err = journal.Open(cfg.Journal.Dir)
				if err != nil {
					return fmt.Errorf("failed to open journal: %w", err)
				}
				defer jnl.Close()
			}
		}

		if container == nil {
			return fmt.Errorf("dependency container not initialized")
		}
		starter := container.GetServerFactory().CreateServerStarter()

		codec := stego.NewCodec(stego.DefaultConfig())
		return starter.StartServer(codec, jnl, api.ServerConfig{
			Port:   cfg.Port,
			Bind:   cfg.Bind,
			APIKey: cfg.Security.APIKey,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "API key for request authentication")
	serveCmd.Flags().String("config", "", "Path to a gosteg config file")
}

// loadServeConfig loads the config file when one is given or present at the
// default location, falling back to defaults otherwise.
func loadServeConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadConfig(configPath)
	}
	if defaultPath := config.GetDefaultConfigPath(); config.ConfigExists(defaultPath) {
		return config.LoadConfig(defaultPath)
	}
	return config.DefaultConfig(), nil
}
