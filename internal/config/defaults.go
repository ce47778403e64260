package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultConfig returns the built-in configuration. It matches the embedded
// defaults/runner.yaml.
func DefaultConfig() Config {
	return Config{
		Viewport: Viewport{
			Width:  600,
			Height: 150,
			DinoX:  25,
		},
		Settings: DefaultSettings(),
		Sprites: Sprites{
			Dino:          Size{W: 44, H: 47},
			DinoDuck:      Size{W: 59, H: 30},
			Bird:          Size{W: 46, H: 34},
			BirdWingShift: 6,
			Cacti: []Size{
				{W: 17, H: 35},
				{W: 34, H: 35},
				{W: 51, H: 35},
				{W: 25, H: 50},
				{W: 50, H: 50},
				{W: 75, H: 50},
			},
			Cloud:       Size{W: 46, H: 14},
			Ground:      Size{W: 1200, H: 12},
			ReplayIcon:  Size{W: 36, H: 32},
			HitboxInset: 2,
		},
		Spawn: Spawn{
			CloudMinY:       20,
			CloudMaxY:       80,
			BirdClearance:   5,
			CactusGroundGap: 2,
			AerialMinLevel:  3,
		},
		Input: Input{
			DuckHoldTicks: 30,
		},
	}
}

// DefaultSettings returns the baseline speed and cadence parameters.
func DefaultSettings() Settings {
	return Settings{
		BgSpeed:           8,
		BirdSpeed:         7.2,
		BirdSpawnRate:     240,
		BirdWingsRate:     15,
		CactiSpawnRate:    50,
		CloudSpawnRate:    200,
		CloudSpeed:        2,
		DinoGravity:       0.5,
		DinoGroundOffset:  4,
		DinoLegsRate:      6,
		DinoLift:          10,
		ScoreIncreaseRate: 6,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
