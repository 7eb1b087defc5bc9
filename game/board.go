package game

import (
	"fmt"
	"slices"
	"strings"
)

const noShip = -1

// Cell is a single square of the board.
type Cell struct {
	ship    bool
	checked bool
	owner   int  // Index into Board.ships, noShip for water
	marker  rune // Debug annotation only
}

func (c Cell) String() string {
	if c.marker != 0 {
		return string(c.marker)
	}
	switch {
	case c.ship && c.checked:
		return "V"
	case c.ship:
		return "O"
	case c.checked:
		return "X"
	default:
		return "."
	}
}

// Ship is a straight run of points. Hit state is kept by the board.
type Ship struct {
	points []Point
}

// Points returns a copy of the ship's cells in placement order.
func (s Ship) Points() []Point {
	return slices.Clone(s.points)
}

// Len is the number of cells the ship covers.
func (s Ship) Len() int {
	return len(s.points)
}

// Has reports whether p is one of the ship's cells.
func (s Ship) Has(p Point) bool {
	return slices.Contains(s.points, p)
}

// Board owns the cells and ships of a single game.
type Board struct {
	cells   [Size * Size]Cell
	ships   []Ship
	checked int
	fleet   Fleet
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	b := &Board{}
	for i := range b.cells {
		b.cells[i].owner = noShip
	}
	return b
}

// cell panics on off-board points; exported methods taking a Point from the
// caller either check bounds first or document the panic.
func (b *Board) cell(p Point) *Cell {
	if !inBounds(p.X, p.Y) {
		panic(fmt.Errorf("cell %s: %w", p, ErrOutOfBounds))
	}
	return &b.cells[p.index()]
}

// PlaceShip puts a ship of length cells starting at origin and extending in
// direction d. Nothing is written unless every cell and its surroundings are free.
func (b *Board) PlaceShip(origin Point, d Direction, length int) error {
	if length <= 0 {
		return fmt.Errorf("length %d: %w", length, ErrInvalidLength)
	}
	if !inBounds(origin.X, origin.Y) {
		return fmt.Errorf("origin %s: %w", origin, ErrOutOfBounds)
	}

	points := make([]Point, 0, length)
	for i := 0; i < length; i++ {
		p, err := origin.Move(d, i)
		if err != nil {
			return fmt.Errorf("ship of length %d from %s going %s: %w", length, origin, d, err)
		}
		if b.shipNearby(p) {
			return fmt.Errorf("ship of length %d at %s: %w", length, p, ErrOccupied)
		}
		points = append(points, p)
	}

	owner := len(b.ships)
	for _, p := range points {
		c := b.cell(p)
		c.ship = true
		c.owner = owner
	}
	b.ships = append(b.ships, Ship{points: points})
	b.fleet.AddShipOfLength(length)
	return nil
}

func (b *Board) shipNearby(p Point) bool {
	for _, n := range p.Neighbourhood() {
		if b.cell(n).ship {
			return true
		}
	}
	return false
}

// Check fires at p and reports what was there.
func (b *Board) Check(p Point) (Result, error) {
	if !inBounds(p.X, p.Y) {
		return Result{}, fmt.Errorf("check %s: %w", p, ErrOutOfBounds)
	}
	c := b.cell(p)
	if c.checked {
		return Result{}, fmt.Errorf("check %s: %w", p, ErrAlreadyChecked)
	}

	result := MissResult()
	if c.ship {
		ship := b.ships[c.owner]
		if !ship.Has(p) {
			return Result{}, fmt.Errorf("check %s against ship %d: %w", p, c.owner, ErrPointNotInShip)
		}
		if b.isSunk(ship) {
			return Result{}, fmt.Errorf("check %s against ship %d: %w", p, c.owner, ErrAlreadySunk)
		}
		c.checked = true
		if b.isSunk(ship) {
			result = SunkResult(ship.Len())
		} else {
			result = HitResult()
		}
	}

	c.checked = true
	b.checked++
	return result, nil
}

func (b *Board) isSunk(s Ship) bool {
	for _, p := range s.points {
		if !b.cell(p).checked {
			return false
		}
	}
	return true
}

// IsSunk reports whether the i-th placed ship has every cell checked.
func (b *Board) IsSunk(i int) bool {
	return b.isSunk(b.ships[i])
}

// IsWon reports whether every ship is sunk.
func (b *Board) IsWon() bool {
	for _, s := range b.ships {
		if !b.isSunk(s) {
			return false
		}
	}
	return true
}

// IsChecked reports whether p has been fired at. It panics if p is off the board.
func (b *Board) IsChecked(p Point) bool {
	return b.cell(p).checked
}

// Mark sets a debug marker shown instead of the cell state. It panics if p is
// off the board.
func (b *Board) Mark(p Point, marker rune) {
	b.cell(p).marker = marker
}

// CheckedCells is the number of shots fired so far.
func (b *Board) CheckedCells() int {
	return b.checked
}

// Ships returns the placed ships in placement order.
func (b *Board) Ships() []Ship {
	return slices.Clone(b.ships)
}

// Fleet returns the ships actually placed on the board.
func (b *Board) Fleet() Fleet {
	return b.fleet.Clone()
}

// Validate checks the placement invariants: every ship is a non-empty straight
// run and no two ships touch, diagonals included.
func (b *Board) Validate() error {
	for i, s := range b.ships {
		if len(s.points) == 0 {
			return fmt.Errorf("ship %d has no cells: %w", i, ErrMalformedShip)
		}
		if err := validateRun(s.points); err != nil {
			return fmt.Errorf("ship %d: %w", i, err)
		}
		for _, p := range s.points {
			if owner := b.cell(p).owner; owner != i {
				return fmt.Errorf("ship %d cell %s owned by %d: %w", i, p, owner, ErrMalformedShip)
			}
			for _, n := range p.Neighbourhood() {
				c := b.cell(n)
				if c.ship && c.owner != i {
					return fmt.Errorf("ship %d touches ship %d at %s: %w", i, c.owner, n, ErrOccupied)
				}
			}
		}
	}
	return nil
}

func validateRun(points []Point) error {
	if len(points) < 2 {
		return nil
	}
	dx, dy := points[1].X-points[0].X, points[1].Y-points[0].Y
	if abs(dx)+abs(dy) != 1 {
		return fmt.Errorf("cells %s and %s are not adjacent: %w", points[0], points[1], ErrMalformedShip)
	}
	for i := 2; i < len(points); i++ {
		if points[i].X-points[i-1].X != dx || points[i].Y-points[i-1].Y != dy {
			return fmt.Errorf("cell %s breaks the line: %w", points[i], ErrMalformedShip)
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  0 1 2 3 4 5 6 7 8 9\n")
	for y := 0; y < Size; y++ {
		fmt.Fprintf(&sb, "%d ", y)
		for x := 0; x < Size; x++ {
			sb.WriteString(b.cells[y*Size+x].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
