package dino

import (
	"slices"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Entity is any moving object of the simulation.
type Entity interface {
	// Advance moves and animates the entity by one frame.
	Advance()
	// Visible is false once the entity has fully left the viewport on the left.
	Visible() bool
	// Position returns the top-left corner in world units.
	Position() (x, y float64)
	// Box is the painted area of the current animation frame.
	Box() core.RectF
	// Hitbox is the area used for overlap tests.
	Hitbox() core.RectF
	// Sprite names the current animation frame.
	Sprite() string
}

// Player is the runner controlled by input.
type Player interface {
	Entity
	// Jump starts a jump and reports whether it was accepted.
	Jump() bool
	// Duck begins or ends the ducking posture.
	Duck(active bool)
	// Reset returns the runner to its baseline pose on the ground.
	Reset()
	// Hits reports whether the runner overlaps any of the candidates.
	// Nil candidates are ignored.
	Hits(candidates ...Entity) bool
}

// Sprite names painted by the engine.
const (
	SpriteGround           = "ground"
	SpriteDino             = "dino"
	SpriteDinoLeftLeg      = "dino_left_leg"
	SpriteDinoRightLeg     = "dino_right_leg"
	SpriteDinoDuckLeftLeg  = "dino_duck_left_leg"
	SpriteDinoDuckRightLeg = "dino_duck_right_leg"
	SpriteCactus           = "cactus"
	SpriteBirdUp           = "bird_up"
	SpriteBirdDown         = "bird_down"
	SpriteCloud            = "cloud"
	SpriteReplayIcon       = "replay_icon"
)

// progress advances every entity in seq by one frame and drops the ones that
// are no longer visible. It walks backwards so removals never skip an element;
// slices.Delete zeroes the vacated tail so dropped entities are not retained.
func progress[E Entity](seq []E) []E {
	for i := len(seq) - 1; i >= 0; i-- {
		seq[i].Advance()
		if !seq[i].Visible() {
			seq = slices.Delete(seq, i, i+1)
		}
	}
	return seq
}

// paint draws every entity of seq in order.
func paint[E Entity](c core.Canvas, seq []E) {
	for _, e := range seq {
		c.DrawSprite(e.Sprite(), e.Box())
	}
}

// first returns slot 0 of seq, or nil when seq is empty.
func first[E Entity](seq []E) Entity {
	if len(seq) == 0 {
		return nil
	}
	return seq[0]
}
