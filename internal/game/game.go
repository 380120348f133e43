package game

import (
	"fmt"
	"math/rand"

	"github.com/kvols/termsnake/internal/core"
)

// Board and scoring constants. The grid is fixed by design; there is no
// configuration surface for it.
const (
	GridWidth       = 30
	GridHeight      = 24
	DefaultTickRate = 10 // Simulation ticks per second
	ScorePerFood    = 10

	hudHeight = 2 // HUD line plus separator
)

// Game is the controller: it owns the snake, the food, the score and the
// running/game-over state, and advances them one tick at a time.
type Game struct {
	rng   *rand.Rand
	cfg   core.RuntimeConfig
	tick  uint64
	score int

	snake *Snake
	food  *Food
	board core.Rect

	gameOver bool
	tooSmall bool

	// Board placement on screen
	boardX int
	boardY int
}

// New creates an uninitialized game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes or restarts the game: fresh snake at the grid center
// heading right, fresh food, score zero, running state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.cfg = cfg
	g.tick = 0
	g.score = 0
	g.gameOver = false

	g.board = core.NewRect(0, 0, GridWidth, GridHeight)
	g.snake = NewSnake(g.board.Center())
	g.food = NewFood(g.rng, g.board)

	g.layout(cfg.ScreenW, cfg.ScreenH)
}

// Resize re-centers the board for a new screen size without disturbing
// the game in progress.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	if g.snake == nil {
		g.Reset(cfg)
		return
	}
	g.cfg.ScreenW = cfg.ScreenW
	g.cfg.ScreenH = cfg.ScreenH
	g.layout(cfg.ScreenW, cfg.ScreenH)
}

// layout centers the board on screen and checks that it fits.
func (g *Game) layout(screenW, screenH int) {
	requiredW := GridWidth + 2 // border
	requiredH := GridHeight + 2 + hudHeight
	if screenW < requiredW || screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.boardX = (screenW-requiredW)/2 + 1
	g.boardY = hudHeight + 1
}

// Step advances the game by one tick: replay input, move, resolve
// collisions. While game over, any input triggers a full reset.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		if in.Len() > 0 {
			cfg := g.cfg
			cfg.Seed = g.rng.Int63()
			g.Reset(cfg)
		}
		return core.StepResult{State: g.State()}
	}

	// Each keypress is one direction-change attempt, applied in arrival
	// order; the snake rejects reversals against its current heading.
	for _, a := range in.Actions() {
		if d, ok := a.Direction(); ok {
			g.snake.ChangeDirection(d)
		}
	}

	g.snake.Move()
	g.resolveCollisions()

	return core.StepResult{State: g.State()}
}

// resolveCollisions runs the post-move checks in fixed order: food, wall,
// self. All three run even when an earlier one hits, so eating and dying
// on the same tick still scores.
func (g *Game) resolveCollisions() {
	head := g.snake.Head()

	if head == g.food.Position() {
		g.snake.Grow()
		g.score += ScorePerFood
		g.food.Respawn(g.rng, g.board)
	}

	if !g.board.Contains(head) {
		g.gameOver = true
	}

	for _, seg := range g.snake.body[1:] {
		if seg == head {
			g.gameOver = true
			break
		}
	}
}

// State returns the externally visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// Render draws the current frame into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Border around the board
	dst.DrawBox(core.NewRect(g.boardX-1, g.boardY-1, GridWidth+2, GridHeight+2), core.ColorWhite)

	// Food
	fp := g.food.Position()
	dst.SetCell(g.boardX+fp.X, g.boardY+fp.Y, '*', core.ColorRed)

	// Snake, head first
	for i, seg := range g.snake.body {
		r := 'o'
		if i == 0 {
			r = 'O'
		}
		dst.SetCell(g.boardX+seg.X, g.boardY+seg.Y, r, core.ColorGreen)
	}

	if g.gameOver {
		g.renderOverlay(dst, fmt.Sprintf("Game Over! Final Score: %d", g.score), "Press any key to restart")
	}
}

// renderHUD draws the top status line and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(0, 0, fmt.Sprintf(" Snake | Score: %d", g.score), core.ColorWhite)
	for x := range dst.Width() {
		dst.SetCell(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorGray)
}
