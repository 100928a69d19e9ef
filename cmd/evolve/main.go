package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ryanfaulkenberry100/one-seeker/internal/config"
	"github.com/ryanfaulkenberry100/one-seeker/internal/evolve"
	"github.com/ryanfaulkenberry100/one-seeker/internal/logging"
	"github.com/ryanfaulkenberry100/one-seeker/internal/rng"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("evolve", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to YAML config file (built-in defaults when empty)")
	generations := fs.Int("generations", 0, "override ga.generations")
	method := fs.String("selection", "", "override ga.selection (alias|roulette)")
	seed := fs.Int64("seed", 0, "override seed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *generations > 0 {
		cfg.GA.Generations = *generations
	}
	if *method != "" {
		cfg.GA.Selection = *method
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewSlog(stdout, cfg.Logging.Level)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	logger.Info("one-seeker",
		"config", *configPath,
		"population", cfg.GA.PopulationSize,
		"chromosome", cfg.GA.ChromosomeSize,
		"generations", cfg.GA.Generations,
		"selection", cfg.SelectionMethod().String(),
		"rng", cfg.RNG,
		"seed", cfg.Seed,
	)

	src, err := rng.New(cfg.RNG, cfg.Seed)
	if err != nil {
		return err
	}

	runLog, err := logging.NewRunLog(cfg.Logging.CSVPath, cfg.Logging.JSONPath)
	if err != nil {
		return fmt.Errorf("creating run log: %w", err)
	}
	if err := runLog.Init(); err != nil {
		return fmt.Errorf("initializing run log: %w", err)
	}
	defer func() {
		if err := runLog.Close(); err != nil {
			logger.Warn("closing run log", "error", err)
		}
	}()

	startTime := time.Now()
	res, err := evolve.New(cfg, src, logger, runLog).Run()
	if err != nil {
		return err
	}

	logger.Info("run complete",
		"generations", res.Generations,
		"elapsed", time.Since(startTime),
		"found_perfect", res.FoundPerfect,
		"best_fitness", res.Best.Fitness(),
		"best_generation", res.BestGeneration,
		"best", res.Best.String(),
	)

	if cfg.Logging.ChampionPath != "" {
		if err := logging.SaveChampion(cfg.Logging.ChampionPath, res.Best, res.BestGeneration); err != nil {
			logger.Warn("failed to save champion", "path", cfg.Logging.ChampionPath, "error", err)
		}
	}
	return nil
}
