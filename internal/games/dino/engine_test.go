package dino

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Viewport.Width = 0

	_, err := NewEngine(cfg, Options{})
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("NewEngine() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestEngineKeepsConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Viewport.Width = 800
	cfg.Spawn.AerialMinLevel = 1

	e := newTestEngine(t, cfg, Options{})
	if got := e.Config(); got.Viewport != cfg.Viewport || got.Spawn != cfg.Spawn {
		t.Errorf("Config() = %+v, expected %+v", got, cfg)
	}
}

func TestIdleNeverScoresOrSpawnsObstacles(t *testing.T) {
	e := newTestEngine(t, config.DefaultConfig(), Options{Rand: fixedRand{1}})

	advance(e, 500)

	snap := e.Snapshot()
	if snap.Phase != PhaseIdle {
		t.Errorf("Phase = %v, expected %v", snap.Phase, PhaseIdle)
	}
	if snap.Score != 0 || snap.Cacti != 0 || snap.Birds != 0 {
		t.Errorf("idle snapshot = %+v, expected no score and no obstacles", snap)
	}
	if snap.Clouds == 0 {
		t.Error("expected clouds to drift while idle")
	}
	if snap.GroundX == 0 {
		t.Error("expected the ground to scroll while idle")
	}
}

func TestLevelUpScenario(t *testing.T) {
	cues := &cueLog{}
	e := newTestEngine(t, config.DefaultConfig(), Options{Rand: fixedRand{0}, Cues: cues})

	e.OnJump()
	rate := e.Settings().ScoreIncreaseRate
	advance(e, rate*100)

	if e.Score() != 100 {
		t.Errorf("Score() = %d, expected 100", e.Score())
	}
	if e.Level() != 1 {
		t.Errorf("Level() = %d, expected 1", e.Level())
	}
	if n := cues.count(core.CueLevelUp); n != 1 {
		t.Errorf("level-up cues = %d, expected 1", n)
	}
	if e.Settings() != e.Baseline() {
		t.Error("level 1 must not change the settings")
	}
}

func TestLevelTracksScore(t *testing.T) {
	e := newTestEngine(t, config.DefaultConfig(), Options{Rand: fixedRand{0}, Player: &ghost{}})
	e.OnJump()

	for range 4000 {
		e.AdvanceFrame()
		if e.Level() != e.Score()/100 {
			t.Fatalf("Level() = %d with score %d", e.Level(), e.Score())
		}
	}
	if e.Level() < 5 {
		t.Fatalf("Level() = %d, expected at least 5", e.Level())
	}
	if got := e.Settings().BgSpeed; got <= e.Baseline().BgSpeed {
		t.Errorf("BgSpeed = %v, expected above baseline %v", got, e.Baseline().BgSpeed)
	}
}

func TestFixedDifficultyKeepsBaseline(t *testing.T) {
	e := newTestEngine(t, config.DefaultConfig(), Options{
		Rand:            fixedRand{0},
		Player:          &ghost{},
		FixedDifficulty: true,
	})
	e.OnJump()
	advance(e, 4000)

	if e.Level() < 5 {
		t.Fatalf("Level() = %d, expected at least 5", e.Level())
	}
	if e.Settings() != e.Baseline() {
		t.Errorf("Settings() = %+v, expected baseline", e.Settings())
	}
}

func TestResetRestoresRun(t *testing.T) {
	player := &ghost{}
	e := newTestEngine(t, config.DefaultConfig(), Options{Rand: fixedRand{1}, Player: player})

	e.OnJump()
	advance(e, 3200)
	if e.Settings() == e.Baseline() {
		t.Fatal("expected escalated settings before reset")
	}

	player.hit = true
	e.AdvanceFrame()
	if !e.GameOver() {
		t.Fatal("expected game over")
	}

	player.hit = false
	e.OnJump()

	snap := e.Snapshot()
	if snap.Score != 0 || snap.Level != 0 || snap.Frame != 0 {
		t.Errorf("score/level/frame = %d/%d/%d, expected zeros", snap.Score, snap.Level, snap.Frame)
	}
	if snap.Cacti != 0 || snap.Birds != 0 {
		t.Errorf("obstacles = %d/%d, expected none", snap.Cacti, snap.Birds)
	}
	if !snap.Running || snap.GameOver || snap.Phase != PhaseRunning {
		t.Errorf("snapshot = %+v, expected a running game", snap)
	}
	if e.Settings() != e.Baseline() {
		t.Errorf("Settings() = %+v, expected baseline", e.Settings())
	}
	if player.resets != 2 || player.jumps != 2 {
		t.Errorf("resets/jumps = %d/%d, expected 2/2", player.resets, player.jumps)
	}
}

func TestCollisionEndsRun(t *testing.T) {
	cues := &cueLog{}
	canvas := core.NewDisplayList()
	e := newTestEngine(t, config.DefaultConfig(), Options{Rand: fixedRand{1}, Cues: cues, Canvas: canvas})

	e.OnJump()
	for i := 0; i < 1000 && !e.GameOver(); i++ {
		e.AdvanceFrame()
	}
	if !e.GameOver() {
		t.Fatal("expected the runner to hit a cactus")
	}
	if e.Running() || e.Phase() != PhaseGameOver {
		t.Errorf("Running() = %v, Phase() = %v after collision", e.Running(), e.Phase())
	}
	if got := cues.cues[len(cues.cues)-1]; got != core.CueGameOver {
		t.Errorf("last cue = %v, expected %v", got, core.CueGameOver)
	}

	texts := canvas.Texts()
	if len(texts) == 0 || texts[len(texts)-1].Text != "G A M E  O V E R" {
		t.Errorf("expected the game-over text in %+v", texts)
	}
	if len(canvas.Sprites(SpriteReplayIcon)) != 1 {
		t.Error("expected one replay icon")
	}

	before := e.Snapshot()
	advance(e, 100)
	if after := e.Snapshot(); after != before {
		t.Errorf("snapshot changed after game over: %+v -> %+v", before, after)
	}
}

func TestOnlyLeadingObstaclesCollide(t *testing.T) {
	cfg := config.DefaultConfig()
	s := cfg.Settings
	dino := NewDino(cfg.Viewport.DinoX, cfg.Viewport.Height-s.DinoGroundOffset, cfg.Sprites, &s)

	far := NewCactus(400, 113, cfg.Sprites.Cacti[0], cfg.Sprites.HitboxInset, &s)
	near := NewCactus(30, 110, cfg.Sprites.Cacti[0], cfg.Sprites.HitboxInset, &s)

	st := &GameState{player: dino, cacti: []*Cactus{far, near}}
	if detectCollision(dino, st) {
		t.Error("an obstacle behind slot 0 must not collide")
	}

	st.cacti = []*Cactus{near, far}
	if !detectCollision(dino, st) {
		t.Error("expected a collision with the leading cactus")
	}

	st.cacti = nil
	if detectCollision(dino, st) {
		t.Error("empty sequences must not collide")
	}
}

func TestObstaclePruning(t *testing.T) {
	e := newTestEngine(t, config.DefaultConfig(), Options{Rand: fixedRand{1}, Player: &ghost{}})
	e.OnJump()

	sawBird := false
	for frame := range 4000 {
		e.AdvanceFrame()
		checkPruned(t, frame, "cacti", e.state.cacti)
		checkPruned(t, frame, "birds", e.state.birds)
		checkPruned(t, frame, "clouds", e.state.clouds)
		sawBird = sawBird || len(e.state.birds) > 0
	}
	if !sawBird {
		t.Errorf("Level() = %d after the run, expected birds to have spawned past level %d",
			e.Level(), e.Config().Spawn.AerialMinLevel)
	}
}

// checkPruned fails when seq keeps an invisible entity or grows past what the
// cadences allow on screen at once.
func checkPruned[E Entity](t *testing.T, frame int, name string, seq []E) {
	t.Helper()
	if len(seq) > 3 {
		t.Fatalf("frame %d: %d %s alive, expected off-screen ones to be pruned", frame, len(seq), name)
	}
	for _, en := range seq {
		if !en.Visible() {
			t.Fatalf("frame %d: invisible entity kept in %s", frame, name)
		}
	}
}

func TestCollisionOnScoreFrameDoesNotScore(t *testing.T) {
	player := &ghost{}
	e := newTestEngine(t, config.DefaultConfig(), Options{Rand: fixedRand{0}, Player: player})
	e.OnJump()

	rate := e.Settings().ScoreIncreaseRate
	advance(e, rate-1)
	before := e.Score()

	player.hit = true
	e.AdvanceFrame()

	if e.Frame()%rate != 0 {
		t.Fatalf("Frame() = %d, expected a score frame", e.Frame())
	}
	if e.Score() != before {
		t.Errorf("Score() = %d on the collision frame, expected %d", e.Score(), before)
	}
	if !e.GameOver() || e.Running() {
		t.Errorf("GameOver() = %v, Running() = %v, expected true/false", e.GameOver(), e.Running())
	}

	// Without the hit the same frame scores
	other := newTestEngine(t, config.DefaultConfig(), Options{Rand: fixedRand{0}, Player: &ghost{}})
	other.OnJump()
	advance(other, rate)
	if other.Score() != before+1 {
		t.Errorf("Score() = %d without a hit, expected %d", other.Score(), before+1)
	}
}

func TestNoBirdsUntilAerialLevel(t *testing.T) {
	e := newTestEngine(t, config.DefaultConfig(), Options{Rand: fixedRand{1}, Player: &ghost{}})
	e.OnJump()

	sawBird := false
	for range 3000 {
		e.AdvanceFrame()
		n := len(e.state.birds)
		if e.Level() <= e.cfg.Spawn.AerialMinLevel && n > 0 {
			t.Fatalf("bird spawned at level %d", e.Level())
		}
		if n > 0 {
			sawBird = true
		}
	}
	if !sawBird {
		t.Error("expected birds above the aerial level")
	}
}

func TestGroundScroll(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Settings.BgSpeed = 6
	canvas := core.NewDisplayList()
	e := newTestEngine(t, cfg, Options{Rand: fixedRand{0}, Canvas: canvas})

	advance(e, 99)
	if n := len(canvas.Sprites(SpriteGround)); n != 1 {
		t.Fatalf("frame 99: %d ground tiles, expected 1", n)
	}

	e.AdvanceFrame()
	tiles := canvas.Sprites(SpriteGround)
	if len(tiles) != 2 {
		t.Fatalf("frame 100: %d ground tiles, expected 2", len(tiles))
	}
	if tiles[1].Box.X != cfg.Viewport.Width {
		t.Errorf("second tile X = %v, expected %v", tiles[1].Box.X, cfg.Viewport.Width)
	}

	advance(e, 100)
	if got := e.Snapshot().GroundX; got != -6 {
		t.Errorf("GroundX after wrap = %v, expected -6", got)
	}
}

func TestJumpCueOnlyWhenAccepted(t *testing.T) {
	cues := &cueLog{}
	e := newTestEngine(t, config.DefaultConfig(), Options{Rand: fixedRand{0}, Cues: cues})

	e.OnJump()
	e.AdvanceFrame()
	e.OnJump()
	if n := cues.count(core.CueJump); n != 1 {
		t.Fatalf("jump cues = %d, expected 1 while airborne", n)
	}

	advance(e, 60)
	e.OnJump()
	if n := cues.count(core.CueJump); n != 2 {
		t.Errorf("jump cues = %d, expected 2 after landing", n)
	}
}

func TestDuckIgnoredOutsideRun(t *testing.T) {
	e := newTestEngine(t, config.DefaultConfig(), Options{Rand: fixedRand{0}})
	d := e.state.player.(*Dino)

	e.OnDuck(true)
	if d.Ducking() {
		t.Error("duck must be ignored while idle")
	}

	e.OnJump()
	advance(e, 60)
	e.OnDuck(true)
	if !d.Ducking() {
		t.Fatal("expected duck during a run")
	}
	if h := d.Box().H; h != e.cfg.Sprites.DinoDuck.H {
		t.Errorf("ducking box height = %v, expected %v", h, e.cfg.Sprites.DinoDuck.H)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	a := newTestEngine(t, config.DefaultConfig(), Options{Seed: 42})
	b := newTestEngine(t, config.DefaultConfig(), Options{Seed: 42})

	a.OnJump()
	b.OnJump()
	for i := range 2000 {
		a.AdvanceFrame()
		b.AdvanceFrame()
		if a.Snapshot() != b.Snapshot() {
			t.Fatalf("frame %d: %+v != %+v", i, a.Snapshot(), b.Snapshot())
		}
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseIdle, "idle"},
		{PhaseRunning, "running"},
		{PhaseGameOver, "game-over"},
		{Phase(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.expected {
			t.Errorf("Phase(%d).String() = %q, expected %q", tt.phase, got, tt.expected)
		}
	}
}
