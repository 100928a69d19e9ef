// Package logging builds the process logger and writes run artifacts: the
// per-generation CSV/JSONL run log and the champion chromosome.
package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ryanfaulkenberry100/one-seeker/internal/chromosome"
	"github.com/ryanfaulkenberry100/one-seeker/internal/stats"
)

// RunLog writes one record per generation to an optional CSV file and an
// optional JSON-lines file. An empty path disables that sink.
type RunLog struct {
	csvPath     string
	jsonPath    string
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	initialized bool
}

// NewRunLog creates a new run log
func NewRunLog(csvPath, jsonPath string) (*RunLog, error) {
	l := &RunLog{
		csvPath:  csvPath,
		jsonPath: jsonPath,
	}

	// Ensure directories exist
	for _, p := range []string{csvPath, jsonPath} {
		if p == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Init opens the log files and writes the CSV header
func (l *RunLog) Init() error {
	var err error

	if l.csvPath != "" {
		l.csvFile, err = os.Create(l.csvPath)
		if err != nil {
			return err
		}
		l.csvWriter = csv.NewWriter(l.csvFile)

		header := []string{
			"generation", "selection", "best_fitness", "mean_fitness", "std_fitness",
			"worst_fitness", "perfect", "best_chromosome",
		}
		if err := l.csvWriter.Write(header); err != nil {
			return err
		}
	}

	if l.jsonPath != "" {
		l.jsonFile, err = os.OpenFile(l.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
	}

	l.initialized = true
	return nil
}

// Close flushes and closes all log files
func (l *RunLog) Close() error {
	var firstErr error
	if l.csvWriter != nil {
		l.csvWriter.Flush()
		firstErr = l.csvWriter.Error()
	}
	if l.csvFile != nil {
		if err := l.csvFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if l.jsonFile != nil {
		if err := l.jsonFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.initialized = false
	return firstErr
}

// GenerationSummary holds per-generation statistics
type GenerationSummary struct {
	Generation     int     `json:"generation"`
	Selection      string  `json:"selection"`
	BestFitness    int     `json:"best_fitness"`
	MeanFitness    float64 `json:"mean_fitness"`
	StdFitness     float64 `json:"std_fitness"`
	WorstFitness   int     `json:"worst_fitness"`
	Perfect        int     `json:"perfect"`
	BestChromosome string  `json:"best_chromosome"`
}

// NewGenerationSummary flattens a fitness summary for the run log.
func NewGenerationSummary(gen int, selection string, s stats.Summary, best chromosome.Chromosome) GenerationSummary {
	return GenerationSummary{
		Generation:     gen,
		Selection:      selection,
		BestFitness:    s.Best,
		MeanFitness:    s.Mean,
		StdFitness:     s.Std,
		WorstFitness:   s.Worst,
		Perfect:        s.Perfect,
		BestChromosome: best.String(),
	}
}

// LogGeneration appends a generation summary to every enabled sink
func (l *RunLog) LogGeneration(summary GenerationSummary) error {
	if !l.initialized {
		return nil
	}

	if l.csvWriter != nil {
		row := []string{
			strconv.Itoa(summary.Generation),
			summary.Selection,
			strconv.Itoa(summary.BestFitness),
			fmt.Sprintf("%.4f", summary.MeanFitness),
			fmt.Sprintf("%.4f", summary.StdFitness),
			strconv.Itoa(summary.WorstFitness),
			strconv.Itoa(summary.Perfect),
			summary.BestChromosome,
		}
		if err := l.csvWriter.Write(row); err != nil {
			return err
		}
		l.csvWriter.Flush()
		if err := l.csvWriter.Error(); err != nil {
			return err
		}
	}

	if l.jsonFile != nil {
		line, err := json.Marshal(summary)
		if err != nil {
			return err
		}
		if _, err := l.jsonFile.Write(append(line, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// Champion is the saved form of the best chromosome of a run
type Champion struct {
	Generation int    `json:"generation"`
	Fitness    int    `json:"fitness"`
	Length     int    `json:"length"`
	Alleles    string `json:"alleles"`
}

// SaveChampion saves the champion chromosome to a file
func SaveChampion(path string, c chromosome.Chromosome, gen int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data := Champion{
		Generation: gen,
		Fitness:    c.Fitness(),
		Length:     c.Len(),
		Alleles:    c.String(),
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, jsonData, 0644)
}
