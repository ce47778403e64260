// runner is an endless runner you play in the terminal, locally or over SSH.
//
// Usage:
//
//	runner list            - List available games
//	runner play [game]     - Play a game (default: dino)
//	runner serve [game]    - Host a game over SSH
//	runner config          - Print the default configuration
//	runner config validate - Check a configuration file
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Write debug logs to a file
//
// Every flag can also be set from the environment (RUNNER_FPS, RUNNER_SEED,
// RUNNER_LOG_FILE, ...); an explicit flag wins.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-runner/internal/games/dino"
)

const defaultGame = "dino"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string

	// Process environment, loaded before any command runs
	runEnv config.Env
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "TUI Runner - jump over cacti and duck under birds in your terminal",
	Long: `TUI Runner is a Chrome Dino-style endless runner for the terminal.

Available commands:
  list     - Show all available games
  play     - Play a game
  serve    - Host the game over SSH
  config   - Print or validate configuration

Examples:
  runner play
  runner play --difficulty hard
  runner serve --ssh :2222
  runner config > runner.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadEnv fills every flag the user did not pass from the environment.
func loadEnv(cmd *cobra.Command, _ []string) error {
	e, err := config.LoadEnv()
	if err != nil {
		return err
	}
	runEnv = e

	flags := cmd.Flags()
	if !flags.Changed("fps") {
		flagFPS = e.FPS
	}
	if !flags.Changed("seed") {
		flagSeed = e.Seed
	}
	if !flags.Changed("log-file") {
		flagLogFile = e.LogFile
	}
	if flagFPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", flagFPS)
	}
	return nil
}

// newLogger returns a logger writing to --log-file, or fallback when no file
// is set. The returned closer must be called on exit.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	out := fallback
	closer := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagLogFile != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// gameArg returns the game named on the command line, or the default.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGame
}
