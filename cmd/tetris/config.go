package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a game would run with, as YAML, after the
config file search and the --difficulty preset are applied. Redirect it to
~/.tetris/configs/tetris.yaml to start a custom config.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		tcfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := tcfg.Marshal()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}
