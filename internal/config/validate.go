package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects configurations the engine cannot run with. All problems
// are reported at once.
func (c Config) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(c.Viewport.Width > 0, "viewport.width must be positive, got %v", c.Viewport.Width)
	check(c.Viewport.Height > 0, "viewport.height must be positive, got %v", c.Viewport.Height)
	check(c.Viewport.DinoX >= 0, "viewport.dino_x must not be negative, got %v", c.Viewport.DinoX)

	s := c.Settings
	check(s.BgSpeed >= 0, "settings.bg_speed must not be negative, got %v", s.BgSpeed)
	check(s.BirdSpeed >= 0, "settings.bird_speed must not be negative, got %v", s.BirdSpeed)
	check(s.CloudSpeed >= 0, "settings.cloud_speed must not be negative, got %v", s.CloudSpeed)
	check(s.BirdSpawnRate > 0, "settings.bird_spawn_rate must be positive, got %d", s.BirdSpawnRate)
	check(s.BirdWingsRate > 0, "settings.bird_wings_rate must be positive, got %d", s.BirdWingsRate)
	check(s.CactiSpawnRate > 0, "settings.cacti_spawn_rate must be positive, got %d", s.CactiSpawnRate)
	check(s.CloudSpawnRate > 0, "settings.cloud_spawn_rate must be positive, got %d", s.CloudSpawnRate)
	check(s.DinoLegsRate > 0, "settings.dino_legs_rate must be positive, got %d", s.DinoLegsRate)
	check(s.ScoreIncreaseRate > 0, "settings.score_increase_rate must be positive, got %d", s.ScoreIncreaseRate)
	check(s.DinoGravity > 0, "settings.dino_gravity must be positive, got %v", s.DinoGravity)
	check(s.DinoLift > 0, "settings.dino_lift must be positive, got %v", s.DinoLift)

	sp := c.Sprites
	for name, size := range map[string]Size{
		"dino":        sp.Dino,
		"dino_duck":   sp.DinoDuck,
		"bird":        sp.Bird,
		"cloud":       sp.Cloud,
		"ground":      sp.Ground,
		"replay_icon": sp.ReplayIcon,
	} {
		check(size.W > 0 && size.H > 0, "sprites.%s must have positive size, got %vx%v", name, size.W, size.H)
	}
	check(len(sp.Cacti) > 0, "sprites.cacti must list at least one variant")
	for i, size := range sp.Cacti {
		check(size.W > 0 && size.H > 0, "sprites.cacti[%d] must have positive size, got %vx%v", i, size.W, size.H)
	}
	check(sp.Ground.W >= c.Viewport.Width, "sprites.ground.w (%v) must cover viewport.width (%v)", sp.Ground.W, c.Viewport.Width)
	check(sp.HitboxInset >= 0, "sprites.hitbox_inset must not be negative, got %v", sp.HitboxInset)
	check(sp.BirdWingShift >= 0, "sprites.bird_wing_shift must not be negative, got %v", sp.BirdWingShift)

	check(c.Spawn.CloudMinY <= c.Spawn.CloudMaxY, "spawn.cloud_min_y (%d) must not exceed spawn.cloud_max_y (%d)",
		c.Spawn.CloudMinY, c.Spawn.CloudMaxY)
	check(c.Spawn.BirdClearance >= 0, "spawn.bird_clearance must not be negative, got %v", c.Spawn.BirdClearance)
	check(c.Spawn.AerialMinLevel >= 0, "spawn.aerial_min_level must not be negative, got %d", c.Spawn.AerialMinLevel)
	check(c.Input.DuckHoldTicks > 0, "input.duck_hold_ticks must be positive, got %d", c.Input.DuckHoldTicks)

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}
