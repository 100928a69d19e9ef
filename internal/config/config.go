package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/ryanfaulkenberry100/one-seeker/internal/rng"
	"github.com/ryanfaulkenberry100/one-seeker/internal/selection"
)

// EnvPrefix prefixes every environment variable override, e.g. SEEKER_SEED.
const EnvPrefix = "SEEKER_"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root configuration structure
type Config struct {
	Seed    int64     `yaml:"seed" env:"SEED"`
	RNG     string    `yaml:"rng" env:"RNG"` // math|chacha
	GA      GAConfig  `yaml:"ga" envPrefix:"GA_"`
	Logging LogConfig `yaml:"logging" envPrefix:"LOGGING_"`
}

// GAConfig defines genetic algorithm parameters
type GAConfig struct {
	PopulationSize int     `yaml:"population_size" env:"POPULATION_SIZE"` // must be even
	ChromosomeSize int     `yaml:"chromosome_size" env:"CHROMOSOME_SIZE"`
	Generations    int     `yaml:"generations" env:"GENERATIONS"`
	CrossoverRate  float64 `yaml:"crossover_rate" env:"CROSSOVER_RATE"`
	MutationRate   float64 `yaml:"mutation_rate" env:"MUTATION_RATE"`
	StopOnAllOnes  bool    `yaml:"stop_on_all_ones" env:"STOP_ON_ALL_ONES"`
	Selection      string  `yaml:"selection" env:"SELECTION"` // alias|roulette
}

// LogConfig defines logging parameters
type LogConfig struct {
	Level           string `yaml:"level" env:"LEVEL"` // debug|info|warn|error
	EveryGenSummary bool   `yaml:"every_gen_summary" env:"EVERY_GEN_SUMMARY"`
	PrintPopulation bool   `yaml:"print_population" env:"PRINT_POPULATION"`
	Mating          bool   `yaml:"mating" env:"MATING"`
	TopNDebug       int    `yaml:"topn_debug" env:"TOPN_DEBUG"`
	CSVPath         string `yaml:"csv_path" env:"CSV_PATH"`
	JSONPath        string `yaml:"json_path" env:"JSON_PATH"`
	ChampionPath    string `yaml:"champion_path" env:"CHAMPION_PATH"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Seed: 1337,
		RNG:  rng.KindMath,
		GA: GAConfig{
			PopulationSize: 100,
			ChromosomeSize: 20,
			Generations:    40,
			CrossoverRate:  0.7,
			MutationRate:   0.001,
			StopOnAllOnes:  true,
			Selection:      selection.MethodAlias.String(),
		},
		Logging: LogConfig{
			Level:           "info",
			EveryGenSummary: true,
			TopNDebug:       5,
			CSVPath:         "runs/run.csv",
			JSONPath:        "runs/run.jsonl",
			ChampionPath:    "artifacts/champion.json",
		},
	}
}

// Load reads an optional YAML config file over the defaults, applies
// SEEKER_* environment overrides and validates the result. An empty path
// skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// Only the first error keeps the message readable
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every out-of-range field.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.GA.PopulationSize <= 0 || c.GA.PopulationSize%2 != 0 {
		invalid("ga.population_size must be positive and even, got %d", c.GA.PopulationSize)
	}
	if c.GA.ChromosomeSize <= 0 {
		invalid("ga.chromosome_size must be positive, got %d", c.GA.ChromosomeSize)
	}
	if c.GA.Generations <= 0 {
		invalid("ga.generations must be positive, got %d", c.GA.Generations)
	}
	if c.GA.CrossoverRate < 0 || c.GA.CrossoverRate > 1 {
		invalid("ga.crossover_rate must be in [0,1], got %v", c.GA.CrossoverRate)
	}
	if c.GA.MutationRate < 0 || c.GA.MutationRate > 1 {
		invalid("ga.mutation_rate must be in [0,1], got %v", c.GA.MutationRate)
	}
	if _, err := selection.ParseMethod(c.GA.Selection); err != nil {
		invalid("ga.selection: %v", err)
	}
	if c.RNG != rng.KindMath && c.RNG != rng.KindChaCha {
		invalid("rng must be %q or %q, got %q", rng.KindMath, rng.KindChaCha, c.RNG)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		invalid("logging.level: %v", err)
	}
	if c.Logging.TopNDebug < 0 {
		invalid("logging.topn_debug must not be negative, got %d", c.Logging.TopNDebug)
	}

	return errors.Join(errs...)
}

// SelectionMethod returns the parsed ga.selection value.
func (c *Config) SelectionMethod() selection.Method {
	m, err := selection.ParseMethod(c.GA.Selection)
	if err != nil {
		return selection.MethodAlias
	}
	return m
}
