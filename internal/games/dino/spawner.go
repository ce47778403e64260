package dino

import (
	"github.com/vovakirdan/tui-runner/internal/config"
)

// RandomSource is the only source of randomness in a session. *rand.Rand
// from math/rand satisfies it.
type RandomSource interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// Spawner decides once per frame and category whether a new entity appears.
type Spawner struct {
	rng      RandomSource
	viewport config.Viewport
	sprites  config.Sprites
	spawn    config.Spawn
	settings *config.Settings
}

// NewSpawner creates a spawner reading cadences from the live settings.
func NewSpawner(rng RandomSource, cfg config.Config, settings *config.Settings) *Spawner {
	return &Spawner{
		rng:      rng,
		viewport: cfg.Viewport,
		sprites:  cfg.Sprites,
		spawn:    cfg.Spawn,
		settings: settings,
	}
}

// due reports whether a cadence with the given rate fires on frame. A rate
// that has decayed to zero never fires.
func due(frame, rate int) bool {
	return rate > 0 && frame%rate == 0
}

func (s *Spawner) coin() bool {
	return s.rng.Intn(2) == 1
}

// between returns a uniform integer in [lo, hi].
func (s *Spawner) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Clouds appends a cloud on every cloud cadence frame, at a random height
// within the cloud band.
func (s *Spawner) Clouds(st *GameState, frame int) {
	if !due(frame, s.settings.CloudSpawnRate) {
		return
	}
	y := s.between(s.spawn.CloudMinY, s.spawn.CloudMaxY)
	st.clouds = append(st.clouds, NewCloud(s.viewport.Width, float64(y), s.sprites.Cloud, s.settings))
}

// Cacti appends a cactus on a cactus cadence frame when no bird is on screen
// and a coin flip succeeds. The variant is drawn from the catalog.
func (s *Spawner) Cacti(st *GameState, frame int) {
	if !due(frame, s.settings.CactiSpawnRate) {
		return
	}
	if len(st.birds) > 0 || !s.coin() {
		return
	}
	size := s.sprites.Cacti[s.rng.Intn(len(s.sprites.Cacti))]
	y := s.viewport.Height - size.H - s.spawn.CactusGroundGap
	st.cacti = append(st.cacti, NewCactus(s.viewport.Width, y, size, s.sprites.HitboxInset, s.settings))
}

// Birds appends a bird on a bird cadence frame once the level is high enough
// and a coin flip succeeds.
func (s *Spawner) Birds(st *GameState, frame int) {
	if st.level <= s.spawn.AerialMinLevel {
		return
	}
	if !due(frame, s.settings.BirdSpawnRate) || !s.coin() {
		return
	}
	st.birds = append(st.birds, NewBird(s.viewport.Width, s.BirdY(), s.sprites, s.settings))
}

// BirdY is the top of a bird such that its lowest wing frame stays
// BirdClearance above the head of a ducking runner.
func (s *Spawner) BirdY() float64 {
	return s.viewport.Height -
		s.sprites.Bird.H -
		s.sprites.BirdWingShift -
		s.spawn.BirdClearance -
		s.sprites.DinoDuck.H -
		s.settings.DinoGroundOffset
}
