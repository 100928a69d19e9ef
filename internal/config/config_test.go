package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanfaulkenberry100/one-seeker/internal/selection"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, selection.MethodAlias, cfg.SelectionMethod())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
seed: 7
rng: chacha
ga:
  population_size: 30
  selection: roulette
  stop_on_all_ones: false
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "chacha", cfg.RNG)
	assert.Equal(t, 30, cfg.GA.PopulationSize)
	assert.Equal(t, selection.MethodRoulette, cfg.SelectionMethod())
	assert.False(t, cfg.GA.StopOnAllOnes)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched fields keep their defaults.
	assert.Equal(t, 20, cfg.GA.ChromosomeSize)
	assert.Equal(t, 0.7, cfg.GA.CrossoverRate)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "ga:\n  population_size: 30\n")
	t.Setenv("SEEKER_GA_POPULATION_SIZE", "12")
	t.Setenv("SEEKER_GA_MUTATION_RATE", "0.05")
	t.Setenv("SEEKER_SEED", "99")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.GA.PopulationSize)
	assert.Equal(t, 0.05, cfg.GA.MutationRate)
	assert.Equal(t, int64(99), cfg.Seed)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "ga: [not, a, map]"))
	assert.Error(t, err)

	t.Setenv("SEEKER_GA_GENERATIONS", "many")
	_, err = Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"odd population", func(c *Config) { c.GA.PopulationSize = 11 }},
		{"zero population", func(c *Config) { c.GA.PopulationSize = 0 }},
		{"zero chromosome", func(c *Config) { c.GA.ChromosomeSize = 0 }},
		{"zero generations", func(c *Config) { c.GA.Generations = 0 }},
		{"crossover above one", func(c *Config) { c.GA.CrossoverRate = 1.5 }},
		{"negative mutation", func(c *Config) { c.GA.MutationRate = -0.1 }},
		{"unknown selection", func(c *Config) { c.GA.Selection = "tournament" }},
		{"unknown rng", func(c *Config) { c.RNG = "mt19937" }},
		{"unknown level", func(c *Config) { c.Logging.Level = "chatty" }},
		{"negative topn", func(c *Config) { c.Logging.TopNDebug = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.GA.PopulationSize = 3
	cfg.GA.Generations = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "population_size")
	assert.Contains(t, err.Error(), "generations")
}
