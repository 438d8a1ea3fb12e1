package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/numberpop/internal/config"
)

// loadSettings reads the settings file and applies the flags the user set.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	path, err := config.HomePath(flagConfig)
	if err != nil {
		return config.Settings{}, err
	}

	settings, err := config.Load(path)
	if err != nil {
		return config.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		settings.Host.FPS = flagFPS
	}
	if flags.Changed("seed") {
		settings.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		settings.Log.Level = flagLogLevel
	}

	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}
