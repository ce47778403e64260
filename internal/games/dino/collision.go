package dino

import "github.com/vovakirdan/tui-runner/internal/core"

// detectCollision tests the player against the nearest cactus and the nearest
// bird. Later obstacles in either sequence cannot be reached yet, and an
// empty slot is never a hit.
func detectCollision(p Player, s *GameState) bool {
	return p.Hits(first(s.cacti), first(s.birds))
}

// overlapsAny reports whether box overlaps the hitbox of any non-nil candidate.
func overlapsAny(box core.RectF, candidates []Entity) bool {
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if box.Intersects(c.Hitbox()) {
			return true
		}
	}
	return false
}
