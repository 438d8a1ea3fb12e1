package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/numberpop/internal/config"
	"github.com/vovakirdan/numberpop/internal/logging"
	"github.com/vovakirdan/numberpop/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the numberpop SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game sized to its terminal.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.numberpop/host_key

Examples:
  numberpop serve                           # Listen on :23234 with auto-generated key
  numberpop serve --ssh :2222               # Listen on port 2222
  numberpop serve --host-key ./my_host_key  # Use specific host key
  numberpop serve --idle-timeout 5m         # Drop idle sessions sooner

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle time before disconnecting a session")
}

func runServe(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		settings.SSH.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		settings.SSH.HostKey = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		settings.SSH.IdleTimeout = flagIdleTimeout
	}

	hostKey, err := config.HomePath(settings.SSH.HostKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stderr, settings.Log.Level, "numberpop-ssh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     settings.SSH.Address,
		HostKeyPath: hostKey,
		IdleTimeout: settings.SSH.IdleTimeout,
		FrameRate:   settings.Host.FPS,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting numberpop SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
