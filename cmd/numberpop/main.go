// numberpop is a click-the-numbers game for the terminal.
//
// Usage:
//
//	numberpop play           - Play a game in this terminal
//	numberpop serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set host frame rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load settings from a YAML file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "numberpop",
	Short: "numberpop - click the numbers, reach 99",
	Long: `numberpop drifts numbered blocks across the screen. Click a block to
add its number to your score. Land exactly on 99 to win; overshoot and
the score wraps around.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play

Examples:
  numberpop play
  numberpop play --seed 42
  numberpop serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a settings YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
