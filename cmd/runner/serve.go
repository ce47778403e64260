package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/games/dino"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve [game]",
	Short: "Host a game over SSH",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection runs its own independent game; sessions share nothing.
Sessions are silent since sound would play on the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tui-runner/host_key

Examples:
  runner serve                           # Listen on :23234 with auto-generated key
  runner serve --ssh :2222               # Listen on port 2222
  runner serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle time before disconnecting")
}

func runServe(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if !flags.Changed("ssh") {
		flagSSHAddr = runEnv.SSHAddr
	}
	if !flags.Changed("host-key") {
		flagHostKey = runEnv.HostKeyPath
	}
	if !flags.Changed("idle-timeout") {
		flagIdleTimeout = runEnv.IdleTimeout
	}

	logger, closeLog, err := newLogger(os.Stderr, "runner-ssh")
	if err != nil {
		return err
	}
	defer closeLog()

	dino.SetConfigPath(runEnv.ConfigPath)
	if err := dino.SetDifficultyPreset(runEnv.Difficulty); err != nil {
		return err
	}
	dino.SetCuePlayer(nil)
	dino.SetLogger(logger)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = flagIdleTimeout
	cfg.GameID = gameArg(args)
	cfg.TickRate = flagFPS
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting runner SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}
