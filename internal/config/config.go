// Package config provides YAML-based platform settings for numberpop.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

//go:embed defaults/numberpop.yaml
var defaultYAML []byte

// ErrInvalidSettings is returned by Settings.Validate.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Settings configures the hosts around the game.
type Settings struct {
	Host HostSettings `yaml:"host"`
	Seed int64        `yaml:"seed"`
	Log  LogSettings  `yaml:"log"`
	SSH  SSHSettings  `yaml:"ssh"`
}

// HostSettings configures the presentation loop.
type HostSettings struct {
	FPS int `yaml:"fps"`
}

// LogSettings configures logging.
type LogSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// SSHSettings configures the SSH server.
type SSHSettings struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Host: HostSettings{FPS: 60},
		Log:  LogSettings{Level: "info"},
		SSH: SSHSettings{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Validate checks settings that would otherwise fail at run time.
func (s Settings) Validate() error {
	if s.Host.FPS <= 0 {
		return fmt.Errorf("%w: host fps must be positive, got %d", ErrInvalidSettings, s.Host.FPS)
	}
	if _, err := log.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidSettings, s.Log.Level)
	}
	if s.SSH.IdleTimeout < 0 {
		return fmt.Errorf("%w: negative idle timeout %s", ErrInvalidSettings, s.SSH.IdleTimeout)
	}
	return nil
}
