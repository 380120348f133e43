package game

import "github.com/kvols/termsnake/internal/core"

// GameStateType labels the controller state.
type GameStateType string

const (
	StateRunning     GameStateType = "running"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	Head     core.Point
	Heading  core.Direction
	Food     core.Point
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	}

	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		SnakeLen: g.snake.Len(),
		Head:     g.snake.Head(),
		Heading:  g.snake.Heading(),
		Food:     g.food.Position(),
		State:    state,
	}
}
