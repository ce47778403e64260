package dino

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func newTestSpawner(v int) (*Spawner, config.Config, *config.Settings) {
	cfg := config.DefaultConfig()
	s := cfg.Settings
	return NewSpawner(fixedRand{v}, cfg, &s), cfg, &s
}

func TestDue(t *testing.T) {
	tests := []struct {
		frame, rate int
		expected    bool
	}{
		{50, 50, true},
		{100, 50, true},
		{51, 50, false},
		{0, 0, false},
		{10, 0, false},
		{10, -5, false},
	}
	for _, tt := range tests {
		if got := due(tt.frame, tt.rate); got != tt.expected {
			t.Errorf("due(%d, %d) = %v, expected %v", tt.frame, tt.rate, got, tt.expected)
		}
	}
}

func TestSpawnCacti(t *testing.T) {
	sp, cfg, _ := newTestSpawner(1)
	st := &GameState{}

	sp.Cacti(st, 49)
	if len(st.cacti) != 0 {
		t.Fatal("cactus spawned off cadence")
	}

	sp.Cacti(st, 50)
	if len(st.cacti) != 1 {
		t.Fatalf("cacti = %d, expected 1", len(st.cacti))
	}
	size := cfg.Sprites.Cacti[1]
	x, y := st.cacti[0].Position()
	if x != cfg.Viewport.Width {
		t.Errorf("cactus x = %v, expected %v", x, cfg.Viewport.Width)
	}
	if want := cfg.Viewport.Height - size.H - cfg.Spawn.CactusGroundGap; y != want {
		t.Errorf("cactus y = %v, expected %v", y, want)
	}
}

func TestSpawnCactiLosesCoinFlip(t *testing.T) {
	sp, _, _ := newTestSpawner(0)
	st := &GameState{}

	sp.Cacti(st, 50)
	if len(st.cacti) != 0 {
		t.Error("cactus spawned on a lost coin flip")
	}
}

func TestSpawnCactiBlockedByBirds(t *testing.T) {
	sp, cfg, s := newTestSpawner(1)
	st := &GameState{birds: []*Bird{NewBird(300, sp.BirdY(), cfg.Sprites, s)}}

	sp.Cacti(st, 50)
	if len(st.cacti) != 0 {
		t.Error("cactus spawned while a bird is on screen")
	}
}

func TestSpawnCactiRateDecayedToZero(t *testing.T) {
	sp, _, s := newTestSpawner(1)
	s.CactiSpawnRate = 0
	st := &GameState{}

	for frame := range 1000 {
		sp.Cacti(st, frame)
	}
	if len(st.cacti) != 0 {
		t.Errorf("cacti = %d, expected none with a zero rate", len(st.cacti))
	}
}

func TestSpawnBirdsRequireLevel(t *testing.T) {
	sp, cfg, _ := newTestSpawner(1)
	st := &GameState{level: cfg.Spawn.AerialMinLevel}

	sp.Birds(st, 240)
	if len(st.birds) != 0 {
		t.Fatal("bird spawned at the aerial level itself")
	}

	st.level++
	sp.Birds(st, 241)
	if len(st.birds) != 0 {
		t.Fatal("bird spawned off cadence")
	}
	sp.Birds(st, 240)
	if len(st.birds) != 1 {
		t.Errorf("birds = %d, expected 1", len(st.birds))
	}
}

func TestSpawnClouds(t *testing.T) {
	sp, cfg, _ := newTestSpawner(1)
	st := &GameState{}

	sp.Clouds(st, 200)
	if len(st.clouds) != 1 {
		t.Fatalf("clouds = %d, expected 1", len(st.clouds))
	}
	x, y := st.clouds[0].Position()
	if x != cfg.Viewport.Width {
		t.Errorf("cloud x = %v, expected %v", x, cfg.Viewport.Width)
	}
	if y != float64(cfg.Spawn.CloudMinY+1) {
		t.Errorf("cloud y = %v, expected %v", y, cfg.Spawn.CloudMinY+1)
	}
}

func TestBirdClearsDuckingRunner(t *testing.T) {
	sp, cfg, s := newTestSpawner(1)
	dino := NewDino(cfg.Viewport.DinoX, cfg.Viewport.Height-s.DinoGroundOffset, cfg.Sprites, s)
	bird := NewBird(cfg.Viewport.DinoX, sp.BirdY(), cfg.Sprites, s)

	if !dino.Hits(bird) {
		t.Error("expected a standing runner to hit the bird")
	}

	dino.Duck(true)
	if dino.Hits(bird) {
		t.Error("a ducking runner must pass under the bird")
	}

	// Both wing frames keep the clearance
	for range s.BirdWingsRate {
		bird.Advance()
	}
	bird.x = cfg.Viewport.DinoX
	if dino.Hits(bird) {
		t.Error("a ducking runner must pass under the lowered wings")
	}
}
