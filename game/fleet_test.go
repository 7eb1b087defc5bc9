package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFleet(t *testing.T) {
	t.Run("loading the polish preset", func(t *testing.T) {
		f, err := NewFleet(PolishFleet)

		require.NoError(t, err)
		require.Equal(t, 10, f.Total())
		require.Equal(t, map[int]int{4: 1, 3: 2, 2: 3, 1: 4}, f.Alive())
	})

	t.Run("rejecting unknown presets", func(t *testing.T) {
		_, err := NewFleet("armada")
		require.ErrorIs(t, err, ErrUnknownFleet)
	})

	t.Run("copying the preset", func(t *testing.T) {
		f, err := NewFleet(PolishFleet)
		require.NoError(t, err)
		f.AddShipOfLength(4)

		g, err := NewFleet(PolishFleet)
		require.NoError(t, err)
		require.Equal(t, 1, g.Alive()[4], "Presets should not be shared")
	})
}

func TestFleetShips(t *testing.T) {
	var f Fleet
	f.AddShipDetails(1, 4)
	f.AddShipDetails(3, 2)
	f.AddShipDetails(4, 1)
	f.AddShipOfLength(2)
	f.AddShipOfLength(2)
	f.AddShipOfLength(3)

	ships := f.Ships()

	require.Equal(t, []ShipDetails{
		{Length: 4, Quantity: 1},
		{Length: 3, Quantity: 3},
		{Length: 2, Quantity: 2},
		{Length: 1, Quantity: 4},
	}, ships, "Ships should be ordered longest first")
	require.Equal(t, 10, f.Total())
}

func TestResultString(t *testing.T) {
	require.Equal(t, "MISS", MissResult().String())
	require.Equal(t, "HIT", HitResult().String())
	require.Equal(t, "SUNK, 3", SunkResult(3).String())
}
