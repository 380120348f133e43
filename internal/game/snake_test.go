package game

import (
	"testing"

	"github.com/kvols/termsnake/internal/core"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(core.Point{X: 15, Y: 12})

	if s.Len() != 1 {
		t.Errorf("New snake should have 1 segment, got %d", s.Len())
	}
	if s.Head() != (core.Point{X: 15, Y: 12}) {
		t.Errorf("Head should be at (15,12), got %v", s.Head())
	}
	if s.Heading() != core.DirRight {
		t.Errorf("Initial heading should be right, got %v", s.Heading())
	}
}

func TestMoveKeepsLength(t *testing.T) {
	s := NewSnake(core.Point{X: 5, Y: 5})

	for i := 0; i < 10; i++ {
		s.Move()
		if s.Len() != 1 {
			t.Fatalf("Length should stay 1 without growth, got %d after %d moves", s.Len(), i+1)
		}
	}
	if s.Head() != (core.Point{X: 15, Y: 5}) {
		t.Errorf("Head should be at (15,5) after 10 moves right, got %v", s.Head())
	}
}

func TestChangeDirectionRejectsReversal(t *testing.T) {
	tests := []struct {
		heading  core.Direction
		opposite core.Direction
	}{
		{core.DirRight, core.DirLeft},
		{core.DirLeft, core.DirRight},
		{core.DirUp, core.DirDown},
		{core.DirDown, core.DirUp},
	}

	for _, tc := range tests {
		s := &Snake{body: []core.Point{{X: 5, Y: 5}}, heading: tc.heading}
		s.ChangeDirection(tc.opposite)
		if s.Heading() != tc.heading {
			t.Errorf("Reversal %v -> %v should be rejected, heading is %v",
				tc.heading, tc.opposite, s.Heading())
		}
	}
}

func TestChangeDirectionPerpendicular(t *testing.T) {
	s := NewSnake(core.Point{X: 5, Y: 5})

	s.ChangeDirection(core.DirDown)
	if s.Heading() != core.DirDown {
		t.Errorf("Heading should be down, got %v", s.Heading())
	}

	s.Move()
	if s.Head() != (core.Point{X: 5, Y: 6}) {
		t.Errorf("Head should be at (5,6), got %v", s.Head())
	}
}

func TestGrowIsDeferred(t *testing.T) {
	s := NewSnake(core.Point{X: 5, Y: 5})

	s.Grow()
	if s.Len() != 1 {
		t.Errorf("Grow should not change length immediately, got %d", s.Len())
	}

	s.Move()
	if s.Len() != 2 {
		t.Errorf("Length should be 2 after grow + move, got %d", s.Len())
	}

	// Growth flag is consumed by one move
	s.Move()
	if s.Len() != 2 {
		t.Errorf("Length should stay 2 after a second move, got %d", s.Len())
	}
}

func TestBodyStaysAdjacent(t *testing.T) {
	s := NewSnake(core.Point{X: 10, Y: 10})
	dirs := []core.Direction{core.DirDown, core.DirLeft, core.DirUp, core.DirRight, core.DirDown}

	for i, d := range dirs {
		s.ChangeDirection(d)
		s.Grow()
		s.Move()

		for j := 1; j < s.Len(); j++ {
			dx := s.body[j].X - s.body[j-1].X
			dy := s.body[j].Y - s.body[j-1].Y
			if dx*dx+dy*dy != 1 {
				t.Fatalf("Segments %d and %d not adjacent after move %d: %v vs %v",
					j-1, j, i+1, s.body[j-1], s.body[j])
			}
		}
	}
}

func TestOccupies(t *testing.T) {
	s := &Snake{
		body:    []core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}},
		heading: core.DirRight,
	}

	if !s.Occupies(core.Point{X: 4, Y: 5}) {
		t.Error("Occupies should report the tail segment")
	}
	if s.Occupies(core.Point{X: 6, Y: 5}) {
		t.Error("Occupies should not report an empty cell")
	}
}
