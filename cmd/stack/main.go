// stack is an isometric tower stacking game for the terminal.
//
// Usage:
//
//	stack play               - Play in the terminal
//	stack sim                - Run a headless game driven by the autopilot
//	stack export             - Render an autopilot game to a PNG
//	stack list               - List available games
//	stack config             - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-stack/internal/games/stack"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stack",
	Short: "Stack - stack sliding platforms as high as you can",
	Long: `Stack is a terminal tower stacking game. A platform slides back and
forth above the tower; drop it at the right moment. Whatever hangs over
the edge is cut off, and the game ends when nothing is left.

Available commands:
  play     - Play in the terminal
  sim      - Headless game driven by the autopilot
  export   - Render an autopilot game to a PNG image
  list     - Show all available games
  config   - Print the default configuration

Examples:
  stack play
  stack play --difficulty hard
  stack sim --ticks 6000 --seed 42
  stack export --out tower.png --seed 7`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
