package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"warships/engine"
	"warships/experiments"
	"warships/game"
	"warships/meta"
	"warships/strategy"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

func newSimulateCmd() *cobra.Command {
	var (
		configPath string
		quiet      bool
		flags      = experiments.DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play many games and print the distribution of shots needed to win",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := experiments.DefaultConfig()
			if configPath != "" {
				loaded, err := experiments.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			// Flags given explicitly override the file
			changed := cmd.Flags().Changed
			if changed("strategy") {
				cfg.Strategy = flags.Strategy
			}
			if changed("games") {
				cfg.Games = flags.Games
			}
			if changed("workers") {
				cfg.Workers = flags.Workers
			}
			if changed("seed") {
				cfg.Seed = flags.Seed
			}
			if changed("fleet") {
				cfg.Fleet = experiments.FleetConfig{Preset: flags.Fleet.Preset}
			}
			if changed("output-dir") {
				cfg.Output.Dir = flags.Output.Dir
			}
			if quiet {
				cfg.Output.Console = false
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			_, err := experiments.RunExperiment(ctx, cfg, cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML experiment config")
	cmd.Flags().StringVarP(&flags.Strategy, "strategy", "s", flags.Strategy, fmt.Sprintf("Strategy to evaluate %v", strategy.Names()))
	cmd.Flags().IntVarP(&flags.Games, "games", "n", flags.Games, "Number of games")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", flags.Workers, "Number of goroutines playing games")
	cmd.Flags().Uint64Var(&flags.Seed, "seed", 0, "Base seed, 0 picks one from the clock")
	cmd.Flags().StringVar(&flags.Fleet.Preset, "fleet", flags.Fleet.Preset, fmt.Sprintf("Fleet preset %v", game.Presets()))
	cmd.Flags().StringVarP(&flags.Output.Dir, "output-dir", "o", flags.Output.Dir, "Results directory, empty disables file output")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print progress or the final lists")

	return cmd
}

func newPlayCmd() *cobra.Command {
	var (
		name   string
		seed   uint64
		preset string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game and print the final board",
		RunE: func(cmd *cobra.Command, args []string) error {
			factory, err := strategy.New(name)
			if err != nil {
				return err
			}
			board, rng, err := generateBoard(preset, seed)
			if err != nil {
				return err
			}

			metric, err := engine.LocalEngine(board, factory(rng)).Run()
			fmt.Fprintln(cmd.OutOrStdout(), board)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Won after %d shots\n", metric.Shots)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "strategy", "s", meta.STRATEGY, fmt.Sprintf("Strategy to play %v", strategy.Names()))
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed, 0 picks one from the clock")
	cmd.Flags().StringVar(&preset, "fleet", meta.FLEET, fmt.Sprintf("Fleet preset %v", game.Presets()))

	return cmd
}

func newBoardCmd() *cobra.Command {
	var (
		seed   uint64
		preset string
	)

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print a randomly generated board",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, _, err := generateBoard(preset, seed)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), board)
			fmt.Fprintf(cmd.OutOrStdout(), "Fleet: %s\n", board.Fleet())
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed, 0 picks one from the clock")
	cmd.Flags().StringVar(&preset, "fleet", meta.FLEET, fmt.Sprintf("Fleet preset %v", game.Presets()))

	return cmd
}

func generateBoard(preset string, seed uint64) (*game.Board, *rand.Rand, error) {
	fleet, err := game.NewFleet(preset)
	if err != nil {
		return nil, nil, err
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	return game.Generate(fleet, rng), rng, nil
}
