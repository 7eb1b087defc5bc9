package strategy

import (
	"fmt"
	"slices"

	"warships/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type mode int

const (
	hunting mode = iota
	destroying
)

// ExclusionMarker annotates cells next to a sunk ship.
const ExclusionMarker = '*'

// hunter picks the next cell to fire at while no ship is being destroyed.
type hunter func(m *machine) (game.Point, error)

// machine is the hunt/destroy state of one game.
type machine struct {
	board    *game.Board
	rng      *rand.Rand
	mode     mode
	excluded [game.Size * game.Size]bool
	anchor   game.Point  // First hit on the ship being destroyed
	alive    map[int]int // Ship length -> ships still afloat
}

func newMachine(board *game.Board, rng *rand.Rand) *machine {
	return &machine{
		board: board,
		rng:   rng,
		mode:  hunting,
		alive: board.Fleet().Alive(),
	}
}

// play alternates hunting and destroying until the board is won.
func play(board *game.Board, rng *rand.Rand, pick hunter) error {
	m := newMachine(board, rng)
	for !board.IsWon() {
		var err error
		switch m.mode {
		case hunting:
			err = m.hunt(pick)
		case destroying:
			err = m.destroy()
			m.mode = hunting
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *machine) hunt(pick hunter) error {
	p, err := pick(m)
	if err != nil {
		return err
	}
	result, err := m.check(p)
	if err != nil {
		return err
	}

	switch result.Kind {
	case game.Miss:
	case game.Hit:
		m.mode = destroying
		m.anchor = p
	case game.Sunk:
		m.sink(result.Length, []game.Point{p})
	}
	return nil
}

// destroy fires around the anchor until the ship it belongs to is sunk.
func (m *machine) destroy() error {
	ship := []game.Point{m.anchor}

	// Find a second cell among the anchor's neighbours
	candidates := m.anchor.Adjacent()
	var second game.Point
	found := false
	for len(candidates) > 0 && !found {
		i := m.rng.Intn(len(candidates))
		p := candidates[i]
		candidates = slices.Delete(candidates, i, i+1)

		result, err := m.check(p)
		if err != nil {
			return err
		}
		switch result.Kind {
		case game.Miss:
		case game.Hit:
			second, found = p, true
		case game.Sunk:
			m.sink(result.Length, append(ship, p))
			return nil
		}
	}
	if !found {
		log.Debug().Msgf("no second cell found next to %s", m.anchor)
		return nil
	}
	ship = append(ship, second)

	// Walk outwards along the ship's axis from both ends
	directions := []game.Direction{game.Down, game.Up}
	if m.anchor.Y == second.Y {
		directions = []game.Direction{game.Left, game.Right}
	}
	for len(directions) > 0 {
		i := m.rng.Intn(len(directions))
		d := directions[i]
		directions = slices.Delete(directions, i, i+1)

		p := second
		if m.anchor.IsOn(d, second) {
			p = m.anchor
		}
		for {
			next, err := p.Move(d, 1)
			if err != nil {
				break
			}
			result, err := m.check(next)
			if err != nil {
				return err
			}
			if result.Kind == game.Miss {
				break
			}
			ship = append(ship, next)
			p = next
			if result.Kind == game.Sunk {
				m.sink(result.Length, ship)
				return nil
			}
		}
	}

	log.Debug().Msgf("ship through %s and %s not sunk after walking both ends", m.anchor, second)
	return nil
}

// check fires at p unless it is already checked or excluded, which count as a miss.
func (m *machine) check(p game.Point) (game.Result, error) {
	if !m.available(p) {
		return game.MissResult(), nil
	}
	result, err := m.board.Check(p)
	if err != nil {
		return game.Result{}, fmt.Errorf("firing at %s: %w", p, err)
	}
	return result, nil
}

func (m *machine) sink(length int, ship []game.Point) {
	m.alive[length]--
	m.exclude(ship)
}

// exclude blocks every unchecked cell touching the given ship cells.
func (m *machine) exclude(ship []game.Point) {
	for _, p := range ship {
		for _, n := range p.Neighbourhood() {
			if !m.board.IsChecked(n) && !m.excluded[slot(n)] {
				m.excluded[slot(n)] = true
				m.board.Mark(n, ExclusionMarker)
			}
		}
	}
}

func (m *machine) available(p game.Point) bool {
	return !m.board.IsChecked(p) && !m.excluded[slot(p)]
}

// aliveLengths returns the lengths of ships still afloat, longest first.
func (m *machine) aliveLengths() []int {
	lengths := make([]int, 0, len(m.alive))
	for length, count := range m.alive {
		if count > 0 {
			lengths = append(lengths, length)
		}
	}
	slices.Sort(lengths)
	slices.Reverse(lengths)
	return lengths
}

func slot(p game.Point) int {
	return p.Y*game.Size + p.X
}
