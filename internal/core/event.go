package core

// EventKind identifies a simulation event emitted during a tick.
type EventKind int

const (
	EventWallHit      EventKind = iota // Ball reflected off a side or top wall
	EventPaddleHit                     // Ball rebounded off the paddle
	EventBrickHit                      // A brick was cleared (X/Y carry its position)
	EventLifeLost                      // Ball fell past the bottom boundary
	EventLevelCleared                  // Last brick of a level cleared, more levels remain
	EventGameOver                      // Last life lost, terminal
	EventWin                           // Last brick of the last level cleared, terminal
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWallHit:
		return "WallHit"
	case EventPaddleHit:
		return "PaddleHit"
	case EventBrickHit:
		return "BrickHit"
	case EventLifeLost:
		return "LifeLost"
	case EventLevelCleared:
		return "LevelCleared"
	case EventGameOver:
		return "GameOver"
	case EventWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// Event is a fire-and-forget notification emitted synchronously at the
// point it occurs during a tick. Audio/particle adapters consume these
// from StepResult; the engine never depends on their completion.
type Event struct {
	Kind EventKind
	X, Y float64 // Position in logical units (brick hits); zero otherwise
}
