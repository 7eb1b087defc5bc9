package engine

import (
	"errors"

	"warships/experiments/metrics"
	"warships/game"
)

// MaxShots is the most shots a game can take: one per cell.
const MaxShots = game.Size * game.Size

var (
	ErrInvalidBoard = errors.New("board breaks placement rules")
	ErrUnfinished   = errors.New("strategy stopped before the board was won")
)

type Engine interface {
	// Run plays the game till the board is won and reports how it went
	Run() (metrics.GameMetric, error)
}
