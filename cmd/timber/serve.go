package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-timber/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the timber SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game; players never share
state.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.timber/host_key

Examples:
  timber serve                           # Listen on :23235 with auto-generated key
  timber serve --ssh :2222               # Listen on port 2222
  timber serve --host-key ./my_host_key  # Use specific host key
  timber serve --idle-timeout 5m

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	server := cfg.Server
	if flagSSHAddr != "" {
		server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		server.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		server.IdleTimeout = flagIdleTimeout
	}

	logger, closer, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck // Best-effort close of the log file

	srvCfg := tui.SSHServerConfig{
		Address:     server.Address,
		HostKeyPath: server.HostKeyPath,
		IdleTimeout: server.IdleTimeout,
		Runtime:     cfg.RuntimeFor(0, 0),
		Model: tui.Options{
			ChopDuration:  cfg.Animation.ChopDuration,
			DeathDuration: cfg.Animation.DeathDuration,
		},
	}

	srv, err := tui.NewSSHServer(srvCfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting timber SSH server on %s\n", srv.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
