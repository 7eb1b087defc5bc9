package game

import "fmt"

// Size is the width and height of the board.
const Size = 10

// Direction is one of the four ways a point can move on the grid.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in the order strategies scan them.
var Directions = []Direction{Left, Right, Up, Down}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

func (d Direction) delta() (dx, dy int, ok bool) {
	switch d {
	case Left:
		return -1, 0, true
	case Right:
		return 1, 0, true
	case Up:
		return 0, -1, true
	case Down:
		return 0, 1, true
	default:
		return 0, 0, false
	}
}

// Point is a coordinate on the board, both components in [0, Size).
type Point struct {
	X int
	Y int
}

// NewPoint returns the point at (x, y) or ErrOutOfBounds.
func NewPoint(x, y int) (Point, error) {
	if !inBounds(x, y) {
		return Point{}, fmt.Errorf("point x: %d y: %d: %w", x, y, ErrOutOfBounds)
	}
	return Point{X: x, Y: y}, nil
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// Move returns the point reached by stepping times cells in direction d.
func (p Point) Move(d Direction, times int) (Point, error) {
	dx, dy, ok := d.delta()
	if !ok {
		return Point{}, fmt.Errorf("move from %s: %w: %s", p, ErrInvalidDirection, d)
	}
	return NewPoint(p.X+dx*times, p.Y+dy*times)
}

// IsOn reports whether p lies one step from other in direction d.
func (p Point) IsOn(d Direction, other Point) bool {
	next, err := other.Move(d, 1)
	if err != nil {
		return false
	}
	return next == p
}

// Adjacent returns the on-board cardinal neighbours of p, in Directions order.
func (p Point) Adjacent() []Point {
	points := make([]Point, 0, len(Directions))
	for _, d := range Directions {
		if next, err := p.Move(d, 1); err == nil {
			points = append(points, next)
		}
	}
	return points
}

// Neighbourhood returns p and its eight surrounding points, clipped at the edges.
func (p Point) Neighbourhood() []Point {
	points := make([]Point, 0, 9)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if inBounds(p.X+dx, p.Y+dy) {
				points = append(points, Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return points
}

func (p Point) index() int {
	return p.Y*Size + p.X
}

func (p Point) String() string {
	return fmt.Sprintf("x: %d y: %d", p.X, p.Y)
}
