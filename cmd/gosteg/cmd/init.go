package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/molinab297/gosteg/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a gosteg configuration with a generated API key",
	Long: `Create a gosteg configuration file with a freshly generated API key.

The key protects the REST API started by 'gosteg serve'. The config is
written with 0600 permissions.

Examples:
  gosteg init
  gosteg init --config ./gosteg.yaml --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		journalDir, _ := cmd.Flags().GetString("journal-dir")
		force, _ := cmd.Flags().GetBool("force")

		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		cfg, err := initConfig(configPath, journalDir, force)
		if err != nil {
			return err
		}
		if cfg == nil {
			cmd.Printf("Config already exists at %s. Use --force to overwrite.\n", configPath)
			return nil
		}

		cmd.Printf("Wrote config to %s\n", configPath)
		cmd.Printf("API key: %s\n", cfg.Security.APIKey)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("config", "", "Path for the new config file")
	initCmd.Flags().Bool("force", false, "Overwrite an existing config")
}

// initConfig bootstraps a config at configPath. Returns nil without error
// when a config already exists and force is false.
func initConfig(configPath, journalDir string, force bool) (*config.Config, error) {
	if config.ConfigExists(configPath) && !force {
		return nil, nil
	}

	cfg, err := config.BootstrapConfig(configPath, journalDir)
	if err != nil {
		return nil, fmt.Errorf("failed to bootstrap config: %w", err)
	}
	return cfg, nil
}
