package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/dino"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: dino).

Controls:
  Space/Up   - Jump (also starts a new run)
  Down/S     - Duck
  P/Esc      - Pause
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower ground and birds, sparser cacti
  normal - The configured baseline
  hard   - Faster ground and birds, denser cacti
  fixed  - Levels still count but the game never speeds up

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml
  runner play --mute --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := gameArg(args)
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'runner list' to see available games", gameID)
	}

	flags := cmd.Flags()
	if !flags.Changed("config") {
		flagConfig = runEnv.ConfigPath
	}
	if !flags.Changed("difficulty") {
		flagDifficulty = runEnv.Difficulty
	}
	if !flags.Changed("mute") {
		flagMute = runEnv.Mute
	}

	// The TUI owns the terminal, so logs only go to a file.
	logger, closeLog, err := newLogger(io.Discard, "runner")
	if err != nil {
		return err
	}
	defer closeLog()

	dino.SetConfigPath(flagConfig)
	if err := dino.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	dino.SetLogger(logger)

	if !flagMute {
		sp := audio.NewSpeaker(0, logger)
		if err := sp.Init(); err != nil {
			logger.Warn("audio unavailable, playing muted", "error", err)
		} else {
			defer sp.Close()
			dino.SetCuePlayer(sp)
		}
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger.Info("starting", "game", gameID, "fps", flagFPS, "seed", flagSeed, "difficulty", flagDifficulty)
	return tui.Run(game, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, logger)
}
