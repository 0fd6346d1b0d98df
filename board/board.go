// Package board models the static geometry of a sliding-robots puzzle - a
// rectangular grid with per-cell walls, robots and one goal - and encodes
// board states into the canonical keys consumed by package keydepth.
package board

import (
	"math/bits"
	"strings"
)

// Wall directions.
const (
	North = iota
	East
	South
	West
)

// Board is a Width x Height grid of cells. Every cell can carry a wall on
// each of its four sides; a cell walled on all four sides is an obstacle
// that robots can never enter or cross.
type Board struct {
	Width  int
	Height int
	Size   int // Width * Height

	walls     []byte // one bit per direction
	robots    []int  // robot -> position
	goal      int    // position of the goal cell
	goalRobot int    // robot that has to reach the goal
}

// New returns a board of the given dimensions with outer walls around the
// border and all robots parked on position 0.
func New(width, height, numRobots int) *Board {
	b := &Board{
		Width:  width,
		Height: height,
		Size:   width * height,
		walls:  make([]byte, width*height),
		robots: make([]int, numRobots),
	}

	for x := 0; x < width; x++ {
		b.AddWall(x, 0, "N")
		b.AddWall(x, height-1, "S")
	}

	for y := 0; y < height; y++ {
		b.AddWall(0, y, "W")
		b.AddWall(width-1, y, "E")
	}

	return b
}

// Position translates grid coordinates into a cell position.
func (b *Board) Position(x, y int) int {
	return x + y*b.Width
}

// PositionBits returns how many key bits one position needs.
func (b *Board) PositionBits() int {
	return bits.Len(uint(b.Size - 1))
}

// AddWall adds walls to the cell at (x, y); directions is any combination
// of the letters "NESW". It returns the board so that calls can be chained
// when setting up a puzzle.
func (b *Board) AddWall(x, y int, directions string) *Board {
	pos := b.Position(x, y)

	for i := 0; i < len(directions); i++ {
		switch directions[i] {
		case 'N':
			b.walls[pos] |= 1 << North
		case 'E':
			b.walls[pos] |= 1 << East
		case 'S':
			b.walls[pos] |= 1 << South
		case 'W':
			b.walls[pos] |= 1 << West
		}
	}

	return b
}

// IsWall reports whether the cell at the position has a wall in the given
// direction.
func (b *Board) IsWall(position, direction int) bool {
	return b.walls[position]&(1<<direction) != 0
}

// IsObstacle reports whether the cell at the position is walled in on all
// four sides.
func (b *Board) IsObstacle(position int) bool {
	const all = 1<<North | 1<<East | 1<<South | 1<<West

	return b.walls[position]&all == all
}

// NumRobots returns how many robots are on the board.
func (b *Board) NumRobots() int {
	return len(b.robots)
}

// SetRobot places a robot on a position.
func (b *Board) SetRobot(robot, position int) {
	b.robots[robot] = position
}

// Robots returns the robot positions. The slice is shared with the board.
func (b *Board) Robots() []int {
	return b.robots
}

// SetGoal sets the goal cell and the robot that has to reach it.
func (b *Board) SetGoal(robot, x, y int) {
	b.goalRobot = robot
	b.goal = b.Position(x, y)
}

// GoalRobot returns the robot that has to reach the goal.
func (b *Board) GoalRobot() int {
	return b.goalRobot
}

// String renders the board: walls as "---" and "|", obstacles as '#',
// robots as their numbers, the goal as 'X' and empty cells as '.'.
func (b *Board) String() string {
	var s strings.Builder

	for y := 0; y < b.Height; y++ {
		var row strings.Builder

		for x := 0; x < b.Width; x++ {
			pos := b.Position(x, y)

			if b.IsWall(pos, North) {
				s.WriteString(" ---")
			} else {
				s.WriteString("    ")
			}

			if b.IsWall(pos, West) {
				row.WriteString("| ")
			} else {
				row.WriteString("  ")
			}

			switch {
			case b.IsObstacle(pos):
				row.WriteByte('#')
			case b.robotAt(pos) >= 0:
				row.WriteByte('0' + byte(b.robotAt(pos)))
			case pos == b.goal:
				row.WriteByte('X')
			default:
				row.WriteByte('.')
			}

			row.WriteByte(' ')
		}

		if b.IsWall(b.Position(b.Width-1, y), East) {
			row.WriteByte('|')
		}

		s.WriteByte('\n')
		s.WriteString(row.String())
		s.WriteByte('\n')
	}

	for x := 0; x < b.Width; x++ {
		if b.IsWall(b.Position(x, b.Height-1), South) {
			s.WriteString(" ---")
		} else {
			s.WriteString("    ")
		}
	}

	s.WriteByte('\n')

	return s.String()
}

func (b *Board) robotAt(position int) int {
	for i, p := range b.robots {
		if p == position {
			return i
		}
	}

	return -1
}
