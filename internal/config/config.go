// Package config provides YAML-based configuration for the runner: the
// difficulty baseline, the static geometry catalog, spawn placement constants,
// presets and environment overrides.
package config

// Config holds everything the engine reads at construction time.
type Config struct {
	Viewport Viewport `yaml:"viewport"`
	Settings Settings `yaml:"settings"`
	Sprites  Sprites  `yaml:"sprites"`
	Spawn    Spawn    `yaml:"spawn"`
	Input    Input    `yaml:"input"`
}

// Viewport is the size of the simulated world in world units.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	DinoX  float64 `yaml:"dino_x"` // Fixed horizontal position of the runner
}

// Settings are the speed and cadence parameters of a run. The speed and
// spawn-rate fields are scaled by level progression; everything is restored
// from the baseline when a new run starts.
//
// Rates are frame-count denominators: an event fires on frames where
// frame % rate == 0.
type Settings struct {
	BgSpeed           float64 `yaml:"bg_speed"`
	BirdSpeed         float64 `yaml:"bird_speed"`
	BirdSpawnRate     int     `yaml:"bird_spawn_rate"`
	BirdWingsRate     int     `yaml:"bird_wings_rate"`
	CactiSpawnRate    int     `yaml:"cacti_spawn_rate"`
	CloudSpawnRate    int     `yaml:"cloud_spawn_rate"`
	CloudSpeed        float64 `yaml:"cloud_speed"`
	DinoGravity       float64 `yaml:"dino_gravity"`
	DinoGroundOffset  float64 `yaml:"dino_ground_offset"`
	DinoLegsRate      int     `yaml:"dino_legs_rate"`
	DinoLift          float64 `yaml:"dino_lift"`
	ScoreIncreaseRate int     `yaml:"score_increase_rate"`
}

// Size is a width/height pair in world units.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Sprites is the static geometry catalog used for placement and hitboxes.
type Sprites struct {
	Dino          Size    `yaml:"dino"`
	DinoDuck      Size    `yaml:"dino_duck"`
	Bird          Size    `yaml:"bird"`
	BirdWingShift float64 `yaml:"bird_wing_shift"` // Extra drop of the wings-down frame
	Cacti         []Size  `yaml:"cacti"`
	Cloud         Size    `yaml:"cloud"`
	Ground        Size    `yaml:"ground"` // One tile of the scrolling ground texture
	ReplayIcon    Size    `yaml:"replay_icon"`
	HitboxInset   float64 `yaml:"hitbox_inset"`
}

// Spawn holds the placement constants of the spawn scheduler.
type Spawn struct {
	CloudMinY       int     `yaml:"cloud_min_y"`
	CloudMaxY       int     `yaml:"cloud_max_y"`
	BirdClearance   float64 `yaml:"bird_clearance"`   // Gap above a ducking runner
	CactusGroundGap float64 `yaml:"cactus_ground_gap"` // Cactus bottom sits this far above the viewport bottom
	AerialMinLevel  int     `yaml:"aerial_min_level"`  // Birds appear once level exceeds this
}

// Input tunes how terminal key events become logical input.
type Input struct {
	// DuckHoldTicks is how long a single duck key press keeps the runner
	// ducked. Terminals report no key release, so key repeat refreshes it.
	DuckHoldTicks int `yaml:"duck_hold_ticks"`
}

// Preset is a named difficulty variant.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed" // Levels still count, parameters never scale
)
