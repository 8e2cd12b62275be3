// tetris plays Tetris in the terminal, by hand or with the autopilot.
//
// Usage:
//
//	tetris                   - Play marathon (same as "tetris play normal")
//	tetris list              - List play modes
//	tetris play <mode>       - Play a mode
//	tetris menu              - Pick a mode interactively
//	tetris bench             - Run the autopilot headless and report scores
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible bags
//	--config <path>       - Use a custom tetris.yaml
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log <path>          - Write a log file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-tetris/internal/modes/auto"
	_ "github.com/vovakirdan/tui-tetris/internal/modes/normal"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLog        string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal, with an autopilot",
	Long: `Tetris with a 7-bag randomizer, SRS wall kicks, hold and a ghost
piece. The autopilot mode lets a heuristic search play by itself.

Available commands:
  list     - Show all play modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker
  bench    - Run the autopilot headless
  config   - Print the effective configuration

Examples:
  tetris
  tetris play auto
  tetris play normal --difficulty hard
  tetris bench --games 5 --pieces 500`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPlay(cmd, []string{"normal"})
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tetris.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Path to a log file (empty = no log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(configCmd)
}
