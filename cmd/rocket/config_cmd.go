package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The configuration is searched in this order:
  --config <path>
  ~/.rocket/configs/rocket.yaml
  ./configs/rocket.yaml
  built-in defaults

Examples:
  rocket config
  rocket config --config ./my-rocket.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, _ = out.Write(data)
}
