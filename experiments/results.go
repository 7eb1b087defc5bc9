package experiments

import (
	"fmt"
	"slices"

	"warships/engine"
	"warships/experiments/metrics"
)

// Results aggregates a Monte Carlo run. Wins[k] counts games won in exactly
// k shots; Probabilities[k] is the share of all games won in k shots or fewer.
type Results struct {
	Games         int
	Wins          []int
	Probabilities []float64
	Records       []metrics.GameRecord
	Failures      []metrics.FailureRecord
	Run           metrics.RunMetric
}

func newResults(games int) *Results {
	return &Results{
		Games: games,
		Wins:  make([]int, engine.MaxShots+1),
	}
}

func (r *Results) add(outcome trial) {
	if outcome.err != nil {
		r.Failures = append(r.Failures, metrics.FailureRecord{
			Trial: outcome.index,
			Seed:  outcome.seed,
			Err:   outcome.err,
		})
		return
	}
	r.Wins[outcome.metric.Shots]++
	r.Records = append(r.Records, metrics.GameRecord{
		Trial:      outcome.index,
		Seed:       outcome.seed,
		GameMetric: outcome.metric,
	})
}

func (r *Results) done() int {
	return len(r.Records) + len(r.Failures)
}

// Completed is the number of games that ended in a win.
func (r *Results) Completed() int {
	return len(r.Records)
}

func (r *Results) finish() {
	slices.SortFunc(r.Records, func(a, b metrics.GameRecord) int { return a.Trial - b.Trial })
	slices.SortFunc(r.Failures, func(a, b metrics.FailureRecord) int { return a.Trial - b.Trial })
	r.Probabilities = CumulativeProbability(r.Wins, r.Games)
}

// Write stores the distribution, summary, game records and failures.
func (r *Results) Write(w *metrics.Writer) error {
	if err := w.WriteDistribution(r.Wins, r.Probabilities); err != nil {
		return fmt.Errorf("failed to store distribution: %w", err)
	}
	if err := w.WriteSummary(r.Wins, r.Probabilities); err != nil {
		return fmt.Errorf("failed to store summary: %w", err)
	}
	if err := w.WriteGameRecords(r.Records); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := w.WriteFailures(r.Failures); err != nil {
		return fmt.Errorf("failed to store failures: %w", err)
	}
	return nil
}

// CumulativeProbability turns a win histogram into the probability of having
// won within each number of shots. Empty buckets repeat the previous value.
func CumulativeProbability(wins []int, games int) []float64 {
	probabilities := make([]float64, len(wins))
	if games <= 0 {
		return probabilities
	}
	current := 0.0
	for shots, count := range wins {
		if count != 0 {
			current += float64(count) / float64(games)
		}
		probabilities[shots] = current
	}
	return probabilities
}
