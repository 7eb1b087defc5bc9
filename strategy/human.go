package strategy

import (
	"fmt"

	"warships/game"
)

// Human hunts at random and destroys like Analytical does.
type Human struct {
	base
}

func NewHuman(options ...Option) *Human {
	return &Human{base: newBase(options)}
}

func (h *Human) Run(board *game.Board) error {
	return play(board, h.rng, randomAvailable)
}

func randomAvailable(m *machine) (game.Point, error) {
	candidates := make([]game.Point, 0, game.Size*game.Size)
	for y := 0; y < game.Size; y++ {
		for x := 0; x < game.Size; x++ {
			p := game.Point{X: x, Y: y}
			if m.available(p) {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		return game.Point{}, fmt.Errorf("every cell is checked or excluded: %w", ErrNoTarget)
	}
	return candidates[m.rng.Intn(len(candidates))], nil
}
