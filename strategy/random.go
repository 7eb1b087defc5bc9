package strategy

import (
	"fmt"

	"warships/game"
)

// Random fires at unchecked cells in random order.
type Random struct {
	base
}

func NewRandom(options ...Option) *Random {
	return &Random{base: newBase(options)}
}

func (r *Random) Run(board *game.Board) error {
	order := r.rng.Perm(game.Size * game.Size)
	for _, i := range order {
		if board.IsWon() {
			return nil
		}
		p := game.Point{X: i % game.Size, Y: i / game.Size}
		if board.IsChecked(p) {
			continue
		}
		if _, err := board.Check(p); err != nil {
			return fmt.Errorf("firing at %s: %w", p, err)
		}
	}
	if !board.IsWon() {
		return fmt.Errorf("every cell is checked: %w", ErrNoTarget)
	}
	return nil
}
