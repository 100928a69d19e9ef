package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ryanfaulkenberry100/one-seeker/internal/rng"
	"github.com/ryanfaulkenberry100/one-seeker/internal/selection"
	"github.com/ryanfaulkenberry100/one-seeker/internal/stats"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	fitnessFlag := fs.String("fitness", "", "comma-separated non-negative fitness values, e.g. 3,1,0,4")
	methodFlag := fs.String("method", "alias", "selection method (alias|roulette)")
	draws := fs.Int("draws", 100000, "number of draws")
	seed := fs.Int64("seed", 1, "random seed")
	kind := fs.String("rng", rng.KindMath, "random source (math|chacha)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fitness, err := parseFitness(*fitnessFlag)
	if err != nil {
		return err
	}
	if *draws <= 0 {
		return fmt.Errorf("draws must be positive, got %d", *draws)
	}
	method, err := selection.ParseMethod(*methodFlag)
	if err != nil {
		return err
	}
	src, err := rng.New(*kind, *seed)
	if err != nil {
		return err
	}

	sel, err := selection.New(method, fitness)
	if err != nil {
		return err
	}

	observed := make([]int, len(fitness))
	for i := 0; i < *draws; i++ {
		observed[sel.Select(src.Float64())]++
	}

	fit, err := stats.GoodnessOfFit(observed, fitness)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Method: %s, Draws: %d, Seed: %d, RNG: %s\n", method, *draws, *seed, *kind)
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "index\tfitness\texpected\tobserved\trel_err\t")
	for i := range fitness {
		relErr := "-"
		if fit.Expected[i] > 0 {
			relErr = fmt.Sprintf("%.4f", math.Abs(float64(observed[i])-fit.Expected[i])/fit.Expected[i])
		}
		fmt.Fprintf(w, "%d\t%d\t%.1f\t%d\t%s\t\n", i, fitness[i], fit.Expected[i], observed[i], relErr)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Chi-square: %.4f (dof=%d), p-value: %.4f\n", fit.ChiSquare, fit.DoF, fit.PValue)
	return nil
}

// parseFitness reads a comma-separated list of integers.
func parseFitness(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("-fitness is required")
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("fitness %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
