package engine

import (
	"fmt"
	"time"

	"warships/experiments/metrics"
	"warships/game"
	"warships/strategy"

	"github.com/rs/zerolog/log"
)

// Local plays one game in the calling goroutine.
type Local struct {
	Board    *game.Board
	Strategy strategy.Strategy
}

func LocalEngine(board *game.Board, s strategy.Strategy) *Local {
	if board == nil {
		panic("board is nil")
	}
	if s == nil {
		panic("strategy is nil")
	}
	return &Local{
		Board:    board,
		Strategy: s,
	}
}

// Run executes the strategy until the board is won.
func (e *Local) Run() (metrics.GameMetric, error) {
	metric := metrics.GameMetric{
		Ships:     len(e.Board.Ships()),
		StartTime: time.Now(),
	}

	if err := e.Board.Validate(); err != nil {
		return metric, fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}

	log.Debug().Msgf("starting game with %d ships", metric.Ships)

	err := e.Strategy.Run(e.Board)
	metric.Shots = e.Board.CheckedCells()
	metric.EndTime = time.Now()
	metric.Duration = metric.EndTime.Sub(metric.StartTime)
	if err != nil {
		return metric, fmt.Errorf("strategy failed after %d shots: %w", metric.Shots, err)
	}
	if !e.Board.IsWon() {
		return metric, fmt.Errorf("%d shots fired: %w", metric.Shots, ErrUnfinished)
	}
	if metric.Shots > MaxShots {
		return metric, fmt.Errorf("%d shots fired on %d cells: %w", metric.Shots, MaxShots, ErrUnfinished)
	}

	log.Debug().Msgf("game won after %d shots", metric.Shots)
	return metric, nil
}
