package dino

// Phase is the top-level state of the game.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for the first jump
	PhaseRunning               // Obstacles scroll, score counts
	PhaseGameOver              // Frozen after a collision until the next jump
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// GameState is the single mutable aggregate of a session. Only the Engine
// writes it; helpers receive it explicitly.
type GameState struct {
	player  Player
	cacti   []*Cactus // Ground obstacles, spawn order
	birds   []*Bird   // Aerial obstacles, spawn order
	clouds  []*Cloud  // Decorations, spawn order
	groundX float64   // Ground texture scroll offset
	groundY float64   // Top of the ground texture
	phase   Phase
	running bool
	over    bool
	level   int
	score   int
}

// Snapshot is a read-only copy of the values a renderer or test cares about.
type Snapshot struct {
	Phase    Phase
	Running  bool
	GameOver bool
	Score    int
	Level    int
	Frame    int
	GroundX  float64
	Cacti    int
	Birds    int
	Clouds   int
}
