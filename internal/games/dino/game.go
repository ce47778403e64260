// Package dino implements a Chrome Dino-style endless runner: the runner
// jumps over cacti and ducks under birds while the ground scrolls faster
// with every level.
package dino

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Settings chosen on the command line, read by every new Game.
var (
	configPath       string
	difficultyPreset config.Preset
	cuePlayer        core.CuePlayer
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects a difficulty preset by name. Empty keeps the
// configured baseline.
func SetDifficultyPreset(name string) error {
	p, err := config.ParsePreset(name)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// SetCuePlayer sets where sound cues go. nil mutes.
func SetCuePlayer(p core.CuePlayer) {
	cuePlayer = p
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts the Engine to the platform: it maps input frames to engine
// input, drives one frame per tick and paints the recorded frame.
type Game struct {
	engine   *Engine
	canvas   *core.DisplayList
	cfg      config.Config
	runtime  core.RuntimeConfig
	paused   bool
	duckHold int // Ticks left before an unrefreshed duck is released
}

// New creates a new Dino Runner game instance.
func New() *Game {
	return &Game{canvas: core.NewDisplayList()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dino"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dino Runner"
}

// Reset loads the configuration and builds a fresh idle engine.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.duckHold = 0
	g.canvas.Clear()

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("falling back to default config", "path", configPath, "error", err)
		cfg = config.DefaultConfig()
	}

	progression := true
	if difficultyPreset != "" {
		progression = config.ApplyPreset(&cfg, difficultyPreset)
	}

	opts := Options{
		Seed:            runtime.Seed,
		Cues:            cuePlayer,
		Canvas:          g.canvas,
		Logger:          logger,
		FixedDifficulty: !progression,
	}
	engine, err := NewEngine(cfg, opts)
	if err != nil {
		logger.Error("config rejected, using defaults", "error", err)
		cfg = config.DefaultConfig()
		engine, _ = NewEngine(cfg, opts)
	}

	g.cfg = cfg
	g.engine = engine
}

// Step applies this tick's input and advances the engine by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.engine.Running() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.engine.OnJump()
	}

	switch {
	case in.Has(core.ActionStopDuck):
		g.duckHold = 0
		g.engine.OnDuck(false)
	case in.Has(core.ActionDuck):
		g.duckHold = g.cfg.Input.DuckHoldTicks
		g.engine.OnDuck(true)
	case g.duckHold > 0:
		g.duckHold--
		if g.duckHold == 0 {
			g.engine.OnDuck(false)
		}
	}

	g.engine.AdvanceFrame()
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.Level(),
		Running:  g.engine.Running(),
		GameOver: g.engine.GameOver(),
		Paused:   g.paused,
	}
}

// Engine exposes the underlying simulation.
func (g *Game) Engine() *Engine {
	return g.engine
}

func init() {
	registry.Register("dino", func() registry.Game {
		return New()
	})
}
