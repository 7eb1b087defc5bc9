package experiments

import (
	"context"
	"fmt"
	"io"

	"warships/experiments/metrics"
	"warships/strategy"

	"github.com/rs/zerolog/log"
)

// RunExperiment plays cfg.Games games with the configured strategy and fleet.
// Progress and the final lists go to out when cfg.Output.Console is set; the
// result files are stored under cfg.Output.Dir when it is not empty.
func RunExperiment(ctx context.Context, cfg *Config, out io.Writer) (*Results, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	factory, err := strategy.New(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	fleet, err := cfg.BuildFleet()
	if err != nil {
		return nil, err
	}

	log.Info().Msgf("starting %s experiment with fleet %s...", cfg.Strategy, fleet)

	options := []Option{
		WithWorkers(cfg.Workers),
		WithFleet(fleet),
		WithCollector(metrics.NewCollector()),
	}
	if cfg.Seed > 0 {
		options = append(options, WithSeed(cfg.Seed))
	}
	var reporter *metrics.ConsoleReporter
	if cfg.Output.Console && out != nil {
		reporter = metrics.NewConsoleReporter(out, cfg.Games)
		options = append(options, WithProgress(reporter.Report))
	}
	tester := NewTester(options...)

	results, err := tester.Run(ctx, factory, cfg.Games)
	if err != nil {
		return nil, err
	}
	if reporter != nil {
		reporter.Finish(results.Wins, results.Probabilities)
	}

	log.Info().Msgf("completed %s experiment, average %.2f shots per game", cfg.Strategy, results.Run.AverageShots)

	if cfg.Output.Dir == "" {
		return results, nil
	}

	// Record the seed actually used so the run can be repeated
	stored := *cfg
	stored.Seed = tester.Seed()

	writer, err := metrics.NewWriter(cfg.Output.Dir, cfg.Strategy)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteConfig(stored); err != nil {
		return nil, fmt.Errorf("failed to store config: %w", err)
	}
	log.Info().Msg("stored config")

	if err := results.Write(writer); err != nil {
		return nil, err
	}
	log.Info().Msgf("stored results in %s", writer.Dir())
	return results, nil
}
