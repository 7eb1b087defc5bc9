package strategy

import (
	"fmt"

	"warships/game"
)

// Analytical hunts the cell covered by the most possible placements of the
// ships still afloat.
type Analytical struct {
	base
}

func NewAnalytical(options ...Option) *Analytical {
	return &Analytical{base: newBase(options)}
}

func (a *Analytical) Run(board *game.Board) error {
	return play(board, a.rng, mostProbable)
}

// probabilityGrid counts, for every cell, the ship placements covering it.
// Only the longest fitting length is counted per origin and direction.
// Indexed as grid[x][y].
func probabilityGrid(m *machine) [game.Size][game.Size]int {
	var grid [game.Size][game.Size]int
	lengths := m.aliveLengths()

	for x := 0; x < game.Size; x++ {
		for y := 0; y < game.Size; y++ {
			origin := game.Point{X: x, Y: y}
			for _, d := range game.Directions {
				for _, length := range lengths {
					if m.fits(origin, d, length) {
						for delta := 0; delta < length; delta++ {
							p, _ := origin.Move(d, delta)
							grid[p.X][p.Y]++
						}
						break
					}
				}
			}
		}
	}
	return grid
}

// fits reports whether a ship could lie over cells none of which is checked
// or excluded.
func (m *machine) fits(origin game.Point, d game.Direction, length int) bool {
	if _, err := origin.Move(d, length-1); err != nil {
		return false
	}
	for delta := 0; delta < length; delta++ {
		p, _ := origin.Move(d, delta)
		if !m.available(p) {
			return false
		}
	}
	return true
}

func mostProbable(m *machine) (game.Point, error) {
	grid := probabilityGrid(m)

	// First strict maximum in scan order wins
	best := game.Point{}
	for x := 0; x < game.Size; x++ {
		for y := 0; y < game.Size; y++ {
			if grid[x][y] > grid[best.X][best.Y] {
				best = game.Point{X: x, Y: y}
			}
		}
	}
	if grid[best.X][best.Y] == 0 {
		return game.Point{}, fmt.Errorf("probability grid is empty with %d shots fired: %w", m.board.CheckedCells(), ErrNoTarget)
	}
	return best, nil
}
