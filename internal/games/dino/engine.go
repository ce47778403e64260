package dino

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Options wires the engine to its collaborators. Zero values are usable.
type Options struct {
	Seed            int64          // Seeds the default random source
	Rand            RandomSource   // Overrides Seed when set
	Cues            core.CuePlayer // Sound cues; nil plays nothing
	Canvas          core.Canvas    // Paint target; nil discards
	Logger          *log.Logger    // nil discards
	Player          Player         // nil builds a Dino from the config
	FixedDifficulty bool           // Count levels but never scale settings
}

// Engine is the frame-synchronized simulation. It owns the GameState and the
// frame counter; exactly one AdvanceFrame runs at a time and input calls are
// applied between frames.
type Engine struct {
	cfg        config.Config
	state      GameState
	frame      int
	difficulty *config.Difficulty
	spawner    *Spawner
	canvas     core.Canvas
	cues       core.CuePlayer
	logger     *log.Logger
	runs       int
}

// NewEngine validates cfg and builds an idle engine.
func NewEngine(cfg config.Config, opts Options) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dino: %w", err)
	}

	e := &Engine{
		cfg:        cfg,
		difficulty: config.NewDifficulty(cfg.Settings, !opts.FixedDifficulty),
		canvas:     opts.Canvas,
		cues:       opts.Cues,
		logger:     opts.Logger,
	}
	if e.canvas == nil {
		e.canvas = core.NopCanvas{}
	}
	if e.cues == nil {
		e.cues = core.CuePlayerFunc(func(core.Cue) {})
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}
	e.spawner = NewSpawner(rng, cfg, e.difficulty.Current())

	player := opts.Player
	if player == nil {
		baseY := cfg.Viewport.Height - cfg.Settings.DinoGroundOffset
		player = NewDino(cfg.Viewport.DinoX, baseY, cfg.Sprites, e.difficulty.Current())
	}
	e.state = GameState{
		player:  player,
		groundY: cfg.Viewport.Height - cfg.Sprites.Ground.H,
		phase:   PhaseIdle,
	}
	return e, nil
}

// AdvanceFrame runs one frame. The ground, clouds and runner move in every
// phase except game over; obstacles, collisions and scoring only while a run
// is in progress. After a collision the scene stays frozen until OnJump.
func (e *Engine) AdvanceFrame() {
	if e.state.phase == PhaseGameOver {
		return
	}
	e.frame++

	e.canvas.Clear()
	e.drawGround()
	e.drawClouds()
	e.drawPlayer()
	e.drawScore()

	if !e.state.running {
		return
	}

	e.drawCacti()
	if e.state.level > e.cfg.Spawn.AerialMinLevel {
		e.drawBirds()
	}

	if detectCollision(e.state.player, &e.state) {
		e.cues.Play(core.CueGameOver)
		e.state.over = true
		e.endGame()
		return
	}
	e.updateScore()
}

// OnJump makes the runner jump during a run. Outside a run it starts a new
// one and jumps immediately.
func (e *Engine) OnJump() {
	if e.state.running {
		if e.state.player.Jump() {
			e.cues.Play(core.CueJump)
		}
		return
	}
	e.resetGame()
	e.state.player.Jump()
	e.cues.Play(core.CueJump)
}

// OnDuck begins or ends ducking. It is ignored outside a run.
func (e *Engine) OnDuck(active bool) {
	if !e.state.running {
		return
	}
	e.state.player.Duck(active)
}

// resetGame prepares a fresh run in one step: obstacles cleared, score and
// level zeroed, runner and settings back at baseline, frame counter restarted.
func (e *Engine) resetGame() {
	e.state.player.Reset()
	e.state.cacti = nil
	e.state.birds = nil
	e.state.over = false
	e.state.running = true
	e.state.phase = PhaseRunning
	e.state.level = 0
	e.state.score = 0
	e.difficulty.Reset()
	e.frame = 0
	e.runs++

	e.logger.Debug("run started", "run", e.runs)
}

// endGame paints the game-over overlay and stops the run.
func (e *Engine) endGame() {
	const padding = 15
	vw, vh := e.cfg.Viewport.Width, e.cfg.Viewport.Height
	icon := e.cfg.Sprites.ReplayIcon

	e.canvas.DrawText("G A M E  O V E R", vw/2, vh/2-padding, core.TextStyle{
		Align:    core.AlignCenter,
		Baseline: core.BaselineBottom,
		Color:    core.ColorGray,
	})
	e.canvas.DrawSprite(SpriteReplayIcon, core.NewRectF(vw/2-icon.W/2, vh/2-icon.H/2+padding, icon.W, icon.H))

	e.state.running = false
	e.state.phase = PhaseGameOver

	e.logger.Info("game over", "run", e.runs, "score", e.state.score, "level", e.state.level, "frames", e.frame)
}

// updateScore adds a point on every score cadence frame and escalates the
// difficulty when the level changes.
func (e *Engine) updateScore() {
	if !due(e.frame, e.difficulty.Current().ScoreIncreaseRate) {
		return
	}

	oldLevel := e.state.level
	e.state.score++
	e.state.level = e.state.score / 100

	if e.state.level != oldLevel {
		e.cues.Play(core.CueLevelUp)
		changed := e.difficulty.LevelUp(e.state.level)

		s := e.difficulty.Current()
		e.logger.Info("level up",
			"level", e.state.level,
			"scaled", changed,
			"bg_speed", s.BgSpeed,
			"bird_speed", s.BirdSpeed,
			"cacti_spawn_rate", s.CactiSpawnRate,
			"legs_rate", s.DinoLegsRate,
		)
	}
}

// drawGround paints the tiling ground and scrolls it. A second tile follows
// the first once the first no longer reaches the right edge; the offset wraps
// to -speed rather than 0 so the motion has no visible jump.
func (e *Engine) drawGround() {
	speed := e.difficulty.Current().BgSpeed
	tileW := e.cfg.Sprites.Ground.W

	e.canvas.DrawSprite(SpriteGround, e.groundTile(e.state.groundX))
	e.state.groundX -= speed

	if e.state.groundX <= -tileW+e.cfg.Viewport.Width {
		e.canvas.DrawSprite(SpriteGround, e.groundTile(e.state.groundX+tileW))

		if e.state.groundX <= -tileW {
			e.state.groundX = -speed
		}
	}
}

func (e *Engine) groundTile(x float64) core.RectF {
	g := e.cfg.Sprites.Ground
	return core.NewRectF(x, e.state.groundY, g.W, g.H)
}

func (e *Engine) drawClouds() {
	e.state.clouds = progress(e.state.clouds)
	e.spawner.Clouds(&e.state, e.frame)
	paint(e.canvas, e.state.clouds)
}

func (e *Engine) drawPlayer() {
	p := e.state.player
	p.Advance()
	e.canvas.DrawSprite(p.Sprite(), p.Box())
}

func (e *Engine) drawScore() {
	e.canvas.DrawText(fmt.Sprintf("%05d", e.state.score), e.cfg.Viewport.Width, 0, core.TextStyle{
		Align:    core.AlignRight,
		Baseline: core.BaselineTop,
		Color:    core.ColorGray,
	})
}

func (e *Engine) drawCacti() {
	e.state.cacti = progress(e.state.cacti)
	e.spawner.Cacti(&e.state, e.frame)
	paint(e.canvas, e.state.cacti)
}

func (e *Engine) drawBirds() {
	e.state.birds = progress(e.state.birds)
	e.spawner.Birds(&e.state, e.frame)
	paint(e.canvas, e.state.birds)
}

// Phase returns the current top-level state.
func (e *Engine) Phase() Phase { return e.state.phase }

// Running reports whether a run is in progress.
func (e *Engine) Running() bool { return e.state.running }

// GameOver reports whether the last run ended in a collision.
func (e *Engine) GameOver() bool { return e.state.over }

// Score returns the score of the current or last run.
func (e *Engine) Score() int { return e.state.score }

// Level returns score / 100.
func (e *Engine) Level() int { return e.state.level }

// Frame returns the frame counter of the current run.
func (e *Engine) Frame() int { return e.frame }

// Settings returns a copy of the live settings.
func (e *Engine) Settings() config.Settings { return *e.difficulty.Current() }

// Baseline returns the settings restored at the start of every run.
func (e *Engine) Baseline() config.Settings { return e.difficulty.Baseline() }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.Config { return e.cfg }

// Snapshot copies the observable state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Phase:    e.state.phase,
		Running:  e.state.running,
		GameOver: e.state.over,
		Score:    e.state.score,
		Level:    e.state.level,
		Frame:    e.frame,
		GroundX:  e.state.groundX,
		Cacti:    len(e.state.cacti),
		Birds:    len(e.state.birds),
		Clouds:   len(e.state.clouds),
	}
}
