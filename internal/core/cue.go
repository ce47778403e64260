package core

// Cue names a fire-and-forget sound effect requested by the engine.
type Cue int

const (
	CueJump Cue = iota
	CueLevelUp
	CueGameOver
)

// String returns the cue name used in logs.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueLevelUp:
		return "level-up"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// CuePlayer plays sound cues. Implementations must not block the caller.
type CuePlayer interface {
	Play(c Cue)
}

// CuePlayerFunc adapts a function to CuePlayer.
type CuePlayerFunc func(c Cue)

// Play calls f(c).
func (f CuePlayerFunc) Play(c Cue) {
	f(c)
}
