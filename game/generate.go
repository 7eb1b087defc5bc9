package game

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// PlacementTries bounds the random attempts made for each ship.
const PlacementTries = 50

// Generate returns a board populated at random with the ships of fleet,
// longest first. A ship that cannot be placed within PlacementTries attempts
// is skipped, so dense fleets may yield fewer ships than requested.
func Generate(fleet Fleet, rng *rand.Rand) *Board {
	b := NewBoard()
	for _, details := range fleet.Ships() {
		for i := 0; i < details.Quantity; i++ {
			if !placeRandomShip(b, details.Length, rng) {
				log.Debug().Msgf("gave up placing ship of length %d after %d tries", details.Length, PlacementTries)
			}
		}
	}
	return b
}

func placeRandomShip(b *Board, length int, rng *rand.Rand) bool {
	for tries := 0; tries < PlacementTries; tries++ {
		origin := Point{X: rng.Intn(Size), Y: rng.Intn(Size)}
		direction := Directions[rng.Intn(len(Directions))]
		if err := b.PlaceShip(origin, direction, length); err == nil {
			return true
		}
	}
	return false
}
