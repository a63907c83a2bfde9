package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tide-runner/internal/platform/tui"
	"github.com/vovakirdan/tide-runner/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Tide Runner SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. Runs are stored per server under
the SSH user name, so all users share the same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tiderunner/host_key

Examples:
  tiderunner serve                           # Listen on :23234 with auto-generated key
  tiderunner serve --ssh :2222               # Listen on port 2222
  tiderunner serve --host-key ./my_host_key  # Use specific host key
  tiderunner serve --difficulty hard         # Everyone plays hard

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr, "tiderunner-ssh")
	if err != nil {
		fatal("%v", err)
	}

	runnerCfg, preset, err := loadRunnerConfig()
	if err != nil {
		fatal("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage
		store = nil
	} else {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Runner:      runnerCfg,
		Preset:      preset,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		fatal("creating server: %v", err)
	}

	fmt.Printf("Starting Tide Runner SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
