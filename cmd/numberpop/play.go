package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/numberpop/internal/config"
	"github.com/vovakirdan/numberpop/internal/core"
	"github.com/vovakirdan/numberpop/internal/logging"
	"github.com/vovakirdan/numberpop/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left click  - Collect the number under the pointer
  Q/Ctrl+C    - Quit

The terminal owns the screen while playing, so logs go to --log-file
(or the log.file setting) and are discarded otherwise.

Examples:
  numberpop play
  numberpop play --fps 30
  numberpop play --seed 7 --log-file ./numberpop.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("log-file") {
		settings.Log.File = flagLogFile
	}

	logger, closeLog, err := playLogger(settings.Log.File, settings.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: settings.Host.FPS,
		Seed:      settings.Seed,
	}

	runErr := tui.Run(cfg, logger)

	// Close the log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playLogger opens the log file, or discards logs when path is empty.
func playLogger(path, level string) (*log.Logger, func(), error) {
	if path == "" {
		return logging.Discard(), func() {}, nil
	}

	path, err := config.HomePath(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger, err := logging.New(f, level, "numberpop")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}
