package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration as YAML",
	Long: `Print the configuration the game would run with, after the config
file, difficulty preset and flag overrides are applied.

With --default, print the built-in defaults instead; useful as a starting
point for ~/.snake/configs/snake.yaml.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in default config")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefault {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := opts.snakeConfig()
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
