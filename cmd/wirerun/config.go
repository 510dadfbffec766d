package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vbelov/wirerun/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Config prints the default configuration YAML to stdout.

Save it to customize:
  wirerun config > ~/.wirerun/configs/wirerun.yaml`,
	RunE: runConfigCmd,
}

func runConfigCmd(cmd *cobra.Command, args []string) error {
	_, err := os.Stdout.Write(config.DefaultYAML())
	if err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	return nil
}
