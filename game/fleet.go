package game

import (
	"fmt"
	"slices"
)

// PolishFleet is the name of the standard preset.
const PolishFleet = "polish"

// ShipDetails is the number of ships of a given length.
type ShipDetails struct {
	Length   int `yaml:"length"`
	Quantity int `yaml:"quantity"`
}

var presets = map[string][]ShipDetails{
	PolishFleet: {
		{Length: 4, Quantity: 1},
		{Length: 3, Quantity: 2},
		{Length: 2, Quantity: 3},
		{Length: 1, Quantity: 4},
	},
}

// Fleet is the manifest of ship lengths and quantities a board holds.
type Fleet struct {
	details []ShipDetails
}

// NewFleet returns a copy of the named preset.
func NewFleet(preset string) (Fleet, error) {
	details, ok := presets[preset]
	if !ok {
		return Fleet{}, fmt.Errorf("fleet %q: %w", preset, ErrUnknownFleet)
	}
	return Fleet{details: slices.Clone(details)}, nil
}

// Presets returns the names of the predefined fleets.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// AddShipDetails appends an entry of quantity ships of the given length.
func (f *Fleet) AddShipDetails(length, quantity int) {
	f.details = append(f.details, ShipDetails{Length: length, Quantity: quantity})
}

// AddShipOfLength registers one more ship of the given length.
func (f *Fleet) AddShipOfLength(length int) {
	for i := range f.details {
		if f.details[i].Length == length {
			f.details[i].Quantity++
			return
		}
	}
	f.details = append(f.details, ShipDetails{Length: length, Quantity: 1})
}

// Ships returns the entries ordered by descending length.
func (f Fleet) Ships() []ShipDetails {
	ships := slices.Clone(f.details)
	slices.SortStableFunc(ships, func(a, b ShipDetails) int {
		return b.Length - a.Length
	})
	return ships
}

// Alive maps each length to its quantity.
func (f Fleet) Alive() map[int]int {
	alive := make(map[int]int, len(f.details))
	for _, d := range f.details {
		alive[d.Length] += d.Quantity
	}
	return alive
}

// Total is the number of ships in the fleet.
func (f Fleet) Total() int {
	total := 0
	for _, d := range f.details {
		total += d.Quantity
	}
	return total
}

func (f Fleet) Clone() Fleet {
	return Fleet{details: slices.Clone(f.details)}
}

func (f Fleet) String() string {
	return fmt.Sprintf("%v", f.Ships())
}
