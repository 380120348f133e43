// Package game implements the snake simulation: the snake itself, the
// food, and the fixed-tick controller that drives them. It renders into a
// core.Screen and knows nothing about the terminal.
package game

import "github.com/kvols/termsnake/internal/core"

// Snake owns the ordered body segments and the current heading.
// The head is at index 0. The body is never empty.
type Snake struct {
	body    []core.Point
	heading core.Direction
	growing bool
}

// NewSnake creates a single-segment snake at the given position, heading right.
func NewSnake(start core.Point) *Snake {
	return &Snake{
		body:    []core.Point{start},
		heading: core.DirRight,
	}
}

// Move advances the snake one cell in its current heading.
// If growth is pending the tail is kept (net length +1) and the pending
// flag cleared; otherwise the tail is removed before the new head is
// inserted (net length unchanged).
func (s *Snake) Move() {
	newHead := s.body[0].Add(s.heading.Vector())

	if s.growing {
		s.growing = false
	} else {
		s.body = s.body[:len(s.body)-1]
	}

	s.body = append([]core.Point{newHead}, s.body...)
}

// ChangeDirection sets the heading unless the new direction is the exact
// opposite of the current one. Reversal is rejected silently.
func (s *Snake) ChangeDirection(d core.Direction) {
	if d == s.heading.Opposite() {
		return
	}
	s.heading = d
}

// Grow marks the snake to grow on its next Move.
func (s *Snake) Grow() {
	s.growing = true
}

// Head returns the current head position.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the current movement direction.
func (s *Snake) Heading() core.Direction {
	return s.heading
}

// Occupies reports whether any segment sits on the given point.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}
