package config

import "math"

// Leg animation never gets faster than one switch every legsRateFloor frames.
const legsRateFloor = 3

// Difficulty keeps a baseline snapshot of the run settings and the mutable
// current copy that level-ups escalate.
type Difficulty struct {
	baseline    Settings
	current     Settings
	progression bool
}

// NewDifficulty creates a controller whose current settings start at baseline.
// With progression off, LevelUp leaves the settings untouched.
func NewDifficulty(baseline Settings, progression bool) *Difficulty {
	return &Difficulty{
		baseline:    baseline,
		current:     baseline,
		progression: progression,
	}
}

// Current returns the live settings. Entities read speeds and rates through
// this pointer every frame.
func (d *Difficulty) Current() *Settings {
	return &d.current
}

// Baseline returns the snapshot restored by Reset.
func (d *Difficulty) Baseline() Settings {
	return d.baseline
}

// Progression reports whether level-ups scale the settings.
func (d *Difficulty) Progression() bool {
	return d.progression
}

// Reset restores the current settings to the baseline snapshot.
func (d *Difficulty) Reset() {
	d.current = d.baseline
}

// LevelUp applies the escalation rules for reaching level. It reports whether
// any setting changed.
//
// Levels 5-7 add one to the background speed. From level 8 on the speed grows
// by 10% (rounded up), the cactus cadence tightens by 2% (rounded down), and
// every even level speeds the leg animation up by one frame down to a floor.
// There is no upper bound.
func (d *Difficulty) LevelUp(level int) bool {
	if !d.progression {
		return false
	}

	s := &d.current
	before := *s

	switch {
	case level > 4 && level < 8:
		s.BgSpeed++
		s.BirdSpeed = s.BgSpeed * 0.8
	case level > 7:
		s.BgSpeed = math.Ceil(before.BgSpeed * 1.1)
		s.BirdSpeed = s.BgSpeed * 0.9
		s.CactiSpawnRate = int(math.Floor(float64(before.CactiSpawnRate) * 0.98))
		if level%2 == 0 && before.DinoLegsRate > legsRateFloor {
			s.DinoLegsRate--
		}
	}

	return *s != before
}
