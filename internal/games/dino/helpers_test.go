package dino

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// fixedRand always draws v (mod n). v=0 never wins a coin flip, v=1 always does.
type fixedRand struct{ v int }

func (r fixedRand) Intn(n int) int { return r.v % n }

// ghost is a player that collides only when told to.
type ghost struct {
	hit    bool
	jumps  int
	resets int
	ducks  []bool
}

func (g *ghost) Advance() {}
func (g *ghost) Visible() bool { return true }
func (g *ghost) Position() (float64, float64) { return 0, 0 }
func (g *ghost) Box() core.RectF { return core.NewRectF(0, 0, 1, 1) }
func (g *ghost) Hitbox() core.RectF { return core.RectF{} }
func (g *ghost) Sprite() string { return SpriteDino }
func (g *ghost) Jump() bool {
	g.jumps++
	return true
}

func (g *ghost) Duck(active bool) { g.ducks = append(g.ducks, active) }
func (g *ghost) Reset() { g.resets++ }
func (g *ghost) Hits(...Entity) bool { return g.hit }

// cueLog records played cues.
type cueLog struct{ cues []core.Cue }

func (l *cueLog) Play(c core.Cue) { l.cues = append(l.cues, c) }

func (l *cueLog) count(c core.Cue) int {
	n := 0
	for _, got := range l.cues {
		if got == c {
			n++
		}
	}
	return n
}

func newTestEngine(t *testing.T, cfg config.Config, opts Options) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, opts)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func advance(e *Engine, frames int) {
	for range frames {
		e.AdvanceFrame()
	}
}
