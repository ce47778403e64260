package config

import "testing"

func TestDifficultyLevelBands(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		wantBg    float64
		wantBird  float64
		wantCacti int
		wantLegs  int
		changed   bool
	}{
		{"level 1 unchanged", 1, 8, 7.2, 50, 6, false},
		{"level 4 unchanged", 4, 8, 7.2, 50, 6, false},
		{"level 5 adds one", 5, 9, 9 * 0.8, 50, 6, true},
		{"level 7 adds one", 7, 9, 9 * 0.8, 50, 6, true},
		{"level 8 even scales and slows legs", 8, 9, 9 * 0.9, 49, 5, true},
		{"level 9 odd keeps legs", 9, 9, 9 * 0.9, 49, 6, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDifficulty(DefaultSettings(), true)
			changed := d.LevelUp(tc.level)
			s := d.Current()

			if changed != tc.changed {
				t.Errorf("LevelUp(%d) changed = %v, expected %v", tc.level, changed, tc.changed)
			}
			if s.BgSpeed != tc.wantBg {
				t.Errorf("BgSpeed = %v, expected %v", s.BgSpeed, tc.wantBg)
			}
			if s.BirdSpeed != tc.wantBird {
				t.Errorf("BirdSpeed = %v, expected %v", s.BirdSpeed, tc.wantBird)
			}
			if s.CactiSpawnRate != tc.wantCacti {
				t.Errorf("CactiSpawnRate = %d, expected %d", s.CactiSpawnRate, tc.wantCacti)
			}
			if s.DinoLegsRate != tc.wantLegs {
				t.Errorf("DinoLegsRate = %d, expected %d", s.DinoLegsRate, tc.wantLegs)
			}
		})
	}
}

func TestDifficultyCumulativeRun(t *testing.T) {
	d := NewDifficulty(DefaultSettings(), true)
	for level := 1; level <= 10; level++ {
		d.LevelUp(level)
	}
	s := d.Current()

	// 8 -> 9,10,11 (levels 5-7) -> ceil(12.1)=13 -> ceil(14.3)=15 -> ceil(16.5)=17
	if s.BgSpeed != 17 {
		t.Errorf("BgSpeed after level 10 = %v, expected 17", s.BgSpeed)
	}
	// 50 -> 49 -> 48 -> 47
	if s.CactiSpawnRate != 47 {
		t.Errorf("CactiSpawnRate after level 10 = %d, expected 47", s.CactiSpawnRate)
	}
	// Levels 8 and 10 each take one frame off
	if s.DinoLegsRate != 4 {
		t.Errorf("DinoLegsRate after level 10 = %d, expected 4", s.DinoLegsRate)
	}
}

func TestDifficultyLegsRateFloor(t *testing.T) {
	base := DefaultSettings()
	base.DinoLegsRate = 4
	d := NewDifficulty(base, true)

	for level := 8; level <= 20; level++ {
		d.LevelUp(level)
	}
	if got := d.Current().DinoLegsRate; got != legsRateFloor {
		t.Errorf("DinoLegsRate = %d, expected floor %d", got, legsRateFloor)
	}
}

func TestDifficultyReset(t *testing.T) {
	d := NewDifficulty(DefaultSettings(), true)
	for level := 1; level <= 12; level++ {
		d.LevelUp(level)
	}
	if *d.Current() == d.Baseline() {
		t.Fatal("settings should have escalated before reset")
	}

	d.Reset()
	if *d.Current() != DefaultSettings() {
		t.Errorf("Reset should restore the baseline, got %+v", *d.Current())
	}
}

func TestDifficultyWithoutProgression(t *testing.T) {
	d := NewDifficulty(DefaultSettings(), false)
	for level := 1; level <= 12; level++ {
		if d.LevelUp(level) {
			t.Fatalf("LevelUp(%d) changed settings with progression off", level)
		}
	}
	if *d.Current() != DefaultSettings() {
		t.Errorf("settings drifted with progression off: %+v", *d.Current())
	}
}
