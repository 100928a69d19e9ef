// Package evolve drives the generation loop: evaluate, report, select,
// breed and replace, until the generation budget runs out or an all-ones
// chromosome appears.
package evolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ryanfaulkenberry100/one-seeker/internal/chromosome"
	"github.com/ryanfaulkenberry100/one-seeker/internal/config"
	"github.com/ryanfaulkenberry100/one-seeker/internal/eval"
	"github.com/ryanfaulkenberry100/one-seeker/internal/ga"
	"github.com/ryanfaulkenberry100/one-seeker/internal/logging"
	"github.com/ryanfaulkenberry100/one-seeker/internal/rng"
	"github.com/ryanfaulkenberry100/one-seeker/internal/selection"
	"github.com/ryanfaulkenberry100/one-seeker/internal/stats"
)

// Result summarises a finished run
type Result struct {
	Generations    int  // reproduction rounds completed
	FoundPerfect   bool // an all-ones chromosome was evaluated
	Best           chromosome.Chromosome
	BestGeneration int
	Evaluations    int
}

// Evolver runs one evolution with a fixed configuration and random source.
type Evolver struct {
	cfg       *config.Config
	method    selection.Method
	rng       rng.Source
	evaluator *eval.Evaluator
	logger    *slog.Logger
	runLog    *logging.RunLog

	// alias is rebuilt in place every generation.
	alias selection.AliasTable
}

// New creates an evolver. runLog may be nil.
func New(cfg *config.Config, src rng.Source, logger *slog.Logger, runLog *logging.RunLog) *Evolver {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Evolver{
		cfg:       cfg,
		method:    cfg.SelectionMethod(),
		rng:       src,
		evaluator: eval.NewEvaluator(),
		logger:    logger,
		runLog:    runLog,
	}
}

// Run evolves a fresh random population.
func (e *Evolver) Run() (Result, error) {
	gc := e.cfg.GA
	pop, err := ga.NewPopulation(gc.PopulationSize, gc.ChromosomeSize, e.rng)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for gen := 0; ; gen++ {
		fitness := e.evaluator.EvaluatePopulation(pop)
		summary := stats.Summarize(fitness, gc.ChromosomeSize)

		best := pop.Best()
		if gen == 0 || fitness[best] > res.Best.Fitness() {
			res.Best = pop.Chromosomes[best].Clone()
			res.BestGeneration = gen
		}

		if err := e.report(gen, pop, summary, best); err != nil {
			return res, err
		}

		if summary.Perfect > 0 {
			res.FoundPerfect = true
			if gc.StopOnAllOnes {
				e.logger.Info("perfect chromosome found", "generation", gen, "alleles", res.Best.String())
				break
			}
		}
		if gen == gc.Generations {
			break
		}

		sel, err := e.selector(fitness)
		if err != nil {
			return res, fmt.Errorf("generation %d: %w", gen, err)
		}

		offspring := ga.NextGeneration(pop, sel, gc.CrossoverRate, gc.MutationRate, e.rng, e.onMate(gen))
		pop.Replace(offspring)
		res.Generations = gen + 1
	}

	res.Evaluations = e.evaluator.Evaluations()
	return res, nil
}

// selector builds this generation's selection structure. A population with
// no fitness at all is sampled uniformly.
func (e *Evolver) selector(fitness []int) (selection.Selector, error) {
	sel, err := e.build(fitness)
	if errors.Is(err, selection.ErrDegeneratePopulation) {
		e.logger.Warn("population has zero total fitness, selecting uniformly")
		uniform := make([]int, len(fitness))
		for i := range uniform {
			uniform[i] = 1
		}
		sel, err = e.build(uniform)
	}
	if err != nil {
		return nil, err
	}

	if e.logger.Enabled(context.Background(), slog.LevelDebug) {
		switch s := sel.(type) {
		case *selection.AliasTable:
			e.logger.Debug("selection table", "method", e.method.String(), "prob", s.Prob, "alias", s.Alias, "aliased", s.Aliased())
		case selection.RouletteTable:
			e.logger.Debug("selection table", "method", e.method.String(), "cumulative", []float64(s))
		}
	}
	return sel, nil
}

func (e *Evolver) build(fitness []int) (selection.Selector, error) {
	if e.method == selection.MethodAlias {
		if err := e.alias.Rebuild(fitness); err != nil {
			return nil, err
		}
		return &e.alias, nil
	}
	return selection.New(e.method, fitness)
}

func (e *Evolver) report(gen int, pop *ga.Population, summary stats.Summary, best int) error {
	lc := e.cfg.Logging

	if lc.EveryGenSummary {
		e.logger.Info("generation",
			"generation", gen,
			"best", summary.Best,
			"mean", fmt.Sprintf("%.2f", summary.Mean),
			"std", fmt.Sprintf("%.2f", summary.Std),
			"worst", summary.Worst,
			"perfect", summary.Perfect,
		)
	}

	if lc.PrintPopulation {
		for i, c := range pop.Chromosomes {
			e.logger.Info("member", "generation", gen, "index", i, "fitness", c.Fitness(), "alleles", c.String())
		}
	}

	if gen%10 == 0 && lc.TopNDebug > 0 {
		for rank, i := range pop.TopK(lc.TopNDebug) {
			c := pop.Chromosomes[i]
			e.logger.Debug("top chromosome", "generation", gen, "rank", rank+1, "index", i, "fitness", c.Fitness(), "alleles", c.String())
		}
	}

	if e.runLog != nil {
		line := logging.NewGenerationSummary(gen, e.method.String(), summary, pop.Chromosomes[best])
		if err := e.runLog.LogGeneration(line); err != nil {
			return fmt.Errorf("write run log: %w", err)
		}
	}
	return nil
}

func (e *Evolver) onMate(gen int) func(ga.Mating) {
	if !e.cfg.Logging.Mating {
		return nil
	}
	return func(m ga.Mating) {
		e.logger.Info("mating",
			"generation", gen,
			"parent1", m.Parent1,
			"parent2", m.Parent2,
			"locus", m.Locus,
			"mutations", m.Mutations,
		)
	}
}
