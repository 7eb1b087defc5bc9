package strategy

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"warships/game"

	"golang.org/x/exp/rand"
)

var (
	ErrNoTarget        = errors.New("no cell left worth firing at")
	ErrUnknownStrategy = errors.New("strategy does not exist")
)

// Strategy plays a game on board until every ship is sunk.
type Strategy interface {
	Run(board *game.Board) error
}

// Factory builds a fresh strategy for a single game.
type Factory func(rng *rand.Rand) Strategy

type Option func(b *base)

type base struct {
	rng *rand.Rand
}

// WithRand sets the source of every random choice the strategy makes.
func WithRand(rng *rand.Rand) Option {
	return func(b *base) {
		if rng != nil {
			b.rng = rng
		}
	}
}

func newBase(options []Option) base {
	b := base{ // Default values
		rng: rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(&b)
	}
	return b
}

const (
	AnalyticalName = "analytical"
	HumanName      = "human"
	RandomName     = "random"
)

var factories = map[string]Factory{
	AnalyticalName: func(rng *rand.Rand) Strategy { return NewAnalytical(WithRand(rng)) },
	HumanName:      func(rng *rand.Rand) Strategy { return NewHuman(WithRand(rng)) },
	RandomName:     func(rng *rand.Rand) Strategy { return NewRandom(WithRand(rng)) },
}

// New returns the factory registered under name.
func New(name string) (Factory, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("strategy %q: %w", name, ErrUnknownStrategy)
	}
	return factory, nil
}

// Names lists the registered strategies.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
