package metrics

import (
	"sync/atomic"
	"time"
)

// GameMetric describes one finished game.
type GameMetric struct {
	Shots     int // Cells checked before the board was won
	Ships     int // Ships actually placed on the board
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// RunMetric summarises a whole Monte Carlo run.
type RunMetric struct {
	Games        int
	Workers      int
	Completed    int
	Failed       int
	AverageShots float64
	StartTime    time.Time
	Duration     time.Duration
}

// Collector counts finished games. Safe for concurrent use.
type Collector interface {
	Start(games, workers int)
	AddGame(metric GameMetric)
	AddFailure()
	Done() int
	Complete() RunMetric
}

type collector struct {
	games     int
	workers   int
	startTime time.Time
	completed atomic.Int64
	failed    atomic.Int64
	shots     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(games, workers int) {
	c.startTime = time.Now()
	c.games = games
	c.workers = workers
}

func (c *collector) AddGame(metric GameMetric) {
	c.completed.Add(1)
	c.shots.Add(int64(metric.Shots))
}

func (c *collector) AddFailure() {
	c.failed.Add(1)
}

// Done is the number of games finished so far, failed ones included.
func (c *collector) Done() int {
	return int(c.completed.Load() + c.failed.Load())
}

func (c *collector) Complete() RunMetric {
	completed := int(c.completed.Load())
	average := 0.0
	if completed > 0 {
		average = float64(c.shots.Load()) / float64(completed)
	}
	return RunMetric{
		Games:        c.games,
		Workers:      c.workers,
		Completed:    completed,
		Failed:       int(c.failed.Load()),
		AverageShots: average,
		StartTime:    c.startTime,
		Duration:     time.Since(c.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(games, workers int) {}
func (c *dummyCollector) AddGame(metric GameMetric) {}
func (c *dummyCollector) AddFailure()               {}
func (c *dummyCollector) Done() int                 { return 0 }
func (c *dummyCollector) Complete() RunMetric       { return RunMetric{} }
