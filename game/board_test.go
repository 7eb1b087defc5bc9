package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewPoint(t *testing.T) {
	t.Run("accepting every on-board coordinate", func(t *testing.T) {
		for x := 0; x < Size; x++ {
			for y := 0; y < Size; y++ {
				p, err := NewPoint(x, y)
				require.NoError(t, err)
				require.Equal(t, Point{X: x, Y: y}, p)
			}
		}
	})

	t.Run("rejecting off-board coordinates", func(t *testing.T) {
		for _, c := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {10, 10}, {-5, 20}} {
			_, err := NewPoint(c[0], c[1])
			require.ErrorIs(t, err, ErrOutOfBounds, "x=%d y=%d", c[0], c[1])
		}
	})
}

func TestPointMove(t *testing.T) {
	p := Point{X: 5, Y: 5}

	t.Run("moving in each direction", func(t *testing.T) {
		expected := map[Direction]Point{
			Left:  {X: 3, Y: 5},
			Right: {X: 7, Y: 5},
			Up:    {X: 5, Y: 3},
			Down:  {X: 5, Y: 7},
		}
		for d, want := range expected {
			got, err := p.Move(d, 2)
			require.NoError(t, err)
			require.Equal(t, want, got, "direction %s", d)
		}
	})

	t.Run("failing when leaving the board", func(t *testing.T) {
		_, err := Point{X: 0, Y: 0}.Move(Left, 1)
		require.ErrorIs(t, err, ErrOutOfBounds)
		_, err = Point{X: 9, Y: 9}.Move(Down, 1)
		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("rejecting unknown directions", func(t *testing.T) {
		_, err := p.Move(Direction(7), 1)
		require.ErrorIs(t, err, ErrInvalidDirection)
		require.False(t, Point{X: 5, Y: 5}.IsOn(Direction(-1), p))
	})

	t.Run("detecting relative position", func(t *testing.T) {
		require.True(t, Point{X: 4, Y: 5}.IsOn(Left, p))
		require.False(t, Point{X: 4, Y: 5}.IsOn(Right, p))
		require.False(t, Point{X: 0, Y: 0}.IsOn(Left, Point{X: 0, Y: 0}))
	})

	t.Run("clipping neighbours at the corner", func(t *testing.T) {
		require.Len(t, Point{X: 0, Y: 0}.Adjacent(), 2)
		require.Len(t, Point{X: 0, Y: 0}.Neighbourhood(), 4)
		require.Len(t, p.Adjacent(), 4)
		require.Len(t, p.Neighbourhood(), 9)
	})
}

func TestPlaceShip(t *testing.T) {
	t.Run("placing a ship", func(t *testing.T) {
		b := NewBoard()
		err := b.PlaceShip(Point{X: 0, Y: 0}, Right, 4)

		require.NoError(t, err)
		require.Len(t, b.Ships(), 1)
		require.Equal(t, []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, b.Ships()[0].Points())
		require.Equal(t, map[int]int{4: 1}, b.Fleet().Alive())
		require.NoError(t, b.Validate())
	})

	t.Run("rejecting ships running off the board", func(t *testing.T) {
		b := NewBoard()
		before := *b

		err := b.PlaceShip(Point{X: 8, Y: 0}, Right, 4)

		require.ErrorIs(t, err, ErrOutOfBounds)
		require.Equal(t, before, *b, "Board should not change")
	})

	t.Run("rejecting ships touching another ship", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.PlaceShip(Point{X: 2, Y: 2}, Down, 3))
		before := b.String()
		beforeShips := b.Ships()

		// Diagonal contact at (3, 5)
		err := b.PlaceShip(Point{X: 3, Y: 5}, Right, 3)

		require.ErrorIs(t, err, ErrOccupied)
		require.Equal(t, before, b.String(), "Board should not change")
		require.Equal(t, beforeShips, b.Ships(), "Board should not change")
		require.Equal(t, map[int]int{3: 1}, b.Fleet().Alive())
	})

	t.Run("rejecting empty ships", func(t *testing.T) {
		b := NewBoard()
		require.ErrorIs(t, b.PlaceShip(Point{X: 2, Y: 2}, Down, 0), ErrInvalidLength)
	})

	t.Run("rejecting unknown directions", func(t *testing.T) {
		b := NewBoard()
		before := *b

		err := b.PlaceShip(Point{X: 2, Y: 2}, Direction(7), 3)

		require.ErrorIs(t, err, ErrInvalidDirection)
		require.Equal(t, before, *b, "Board should not change")
	})
}

func TestOffBoardAccess(t *testing.T) {
	b := NewBoard()
	_, err := b.Check(Point{X: 0, Y: 1})
	require.NoError(t, err)
	before := b.String()

	for _, p := range []Point{{X: 10, Y: 0}, {X: -1, Y: 3}, {X: 0, Y: 10}} {
		requirePanicsOutOfBounds(t, func() { b.IsChecked(p) })
		requirePanicsOutOfBounds(t, func() { b.Mark(p, '#') })
	}
	require.Equal(t, before, b.String(), "Board should not change")
}

func requirePanicsOutOfBounds(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "Expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "Panic value should be an error, got %v", r)
		require.ErrorIs(t, err, ErrOutOfBounds)
	}()
	fn()
}

func TestCheck(t *testing.T) {
	t.Run("sinking a ship cell by cell", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.PlaceShip(Point{X: 0, Y: 0}, Right, 4))

		expected := []Result{HitResult(), HitResult(), HitResult(), SunkResult(4)}
		for x, want := range expected {
			require.False(t, b.IsWon(), "Board should not be won before the last shot")
			got, err := b.Check(Point{X: x, Y: 0})
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
		require.True(t, b.IsWon())
		require.True(t, b.IsSunk(0))
		require.Equal(t, 4, b.CheckedCells())
	})

	t.Run("missing water", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.PlaceShip(Point{X: 0, Y: 0}, Right, 2))

		got, err := b.Check(Point{X: 5, Y: 5})

		require.NoError(t, err)
		require.Equal(t, MissResult(), got)
		require.True(t, b.IsChecked(Point{X: 5, Y: 5}))
		require.Equal(t, 1, b.CheckedCells())
	})

	t.Run("refusing to check a cell twice", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.PlaceShip(Point{X: 0, Y: 0}, Right, 1))
		_, err := b.Check(Point{X: 0, Y: 0})
		require.NoError(t, err)

		_, err = b.Check(Point{X: 0, Y: 0})

		require.ErrorIs(t, err, ErrAlreadyChecked)
		require.Equal(t, 1, b.CheckedCells(), "Rejected shot should not count")
	})

	t.Run("empty board is won", func(t *testing.T) {
		require.True(t, NewBoard().IsWon())
	})
}

func TestValidate(t *testing.T) {
	t.Run("rejecting empty ships", func(t *testing.T) {
		b := NewBoard()
		b.ships = append(b.ships, Ship{})
		require.ErrorIs(t, b.Validate(), ErrMalformedShip)
	})

	t.Run("rejecting bent ships", func(t *testing.T) {
		b := NewBoard()
		points := []Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}}
		for _, p := range points {
			b.cell(p).ship = true
			b.cell(p).owner = 0
		}
		b.ships = append(b.ships, Ship{points: points})
		require.ErrorIs(t, b.Validate(), ErrMalformedShip)
	})

	t.Run("rejecting touching ships", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.PlaceShip(Point{X: 1, Y: 1}, Right, 2))
		p := Point{X: 3, Y: 2}
		b.cell(p).ship = true
		b.cell(p).owner = 1
		b.ships = append(b.ships, Ship{points: []Point{p}})
		require.ErrorIs(t, b.Validate(), ErrOccupied)
	})
}

func TestBoardString(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.PlaceShip(Point{X: 0, Y: 0}, Right, 2))
	_, _ = b.Check(Point{X: 0, Y: 0})
	_, _ = b.Check(Point{X: 9, Y: 0})
	b.Mark(Point{X: 0, Y: 2}, '*')

	lines := []string{
		"  0 1 2 3 4 5 6 7 8 9",
		"0 V O . . . . . . . X ",
		"1 . . . . . . . . . . ",
		"2 * . . . . . . . . . ",
	}
	got := b.String()
	for _, line := range lines {
		require.Contains(t, got, line)
	}
}

func TestGenerate(t *testing.T) {
	fleet, err := NewFleet(PolishFleet)
	require.NoError(t, err)

	t.Run("keeping ships apart", func(t *testing.T) {
		for seed := uint64(1); seed <= 200; seed++ {
			b := Generate(fleet, rand.New(rand.NewSource(seed)))
			require.NoError(t, b.Validate(), "seed %d", seed)
			require.LessOrEqual(t, b.Fleet().Total(), fleet.Total())
			for _, ship := range b.Ships() {
				for _, p := range ship.Points() {
					for _, n := range p.Neighbourhood() {
						if ship.Has(n) {
							continue
						}
						for _, other := range b.Ships() {
							if !other.Has(p) {
								require.False(t, other.Has(n), "seed %d: ships touch at %s", seed, n)
							}
						}
					}
				}
			}
		}
	})

	t.Run("reproducing a board from a seed", func(t *testing.T) {
		b1 := Generate(fleet, rand.New(rand.NewSource(42)))
		b2 := Generate(fleet, rand.New(rand.NewSource(42)))
		require.Equal(t, b1.String(), b2.String())
		require.Equal(t, b1.Ships(), b2.Ships())
	})

	t.Run("giving up on fleets that do not fit", func(t *testing.T) {
		var crowded Fleet
		crowded.AddShipDetails(10, 30)

		b := Generate(crowded, rand.New(rand.NewSource(7)))

		require.NoError(t, b.Validate())
		require.Less(t, b.Fleet().Total(), 30)
	})
}
