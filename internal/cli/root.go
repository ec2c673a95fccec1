package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"victorine/internal/config"
)

var configPath string

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("VICTORINE_CONFIG")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	cmd := &cobra.Command{
		Use:   "victorine",
		Short: "Console quiz application over flat JSON user and question stores",
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.AddCommand(NewRunCmd(&configPath))
	cmd.AddCommand(NewSeedCmd(&configPath))
	return cmd
}

// loadConfig falls back to the built-in defaults when no config file exists.
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.Default(), nil
		}
		return config.Config{}, err
	}
	return cfg, nil
}
