package metrics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type GameRecord struct {
	Trial int
	Seed  uint64
	GameMetric
}

type FailureRecord struct {
	Trial int
	Seed  uint64
	Err   error
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	parent := filepath.Join(root, name)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Create a subfolder named by current timestamp, suffixed when a run
	// in the same millisecond already took it
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(parent, timestamp)
	for i := 1; ; i++ {
		err := os.Mkdir(baseDir, 0755)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
		baseDir = filepath.Join(parent, fmt.Sprintf("%s-%d", timestamp, i))
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir is the directory every file is written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteConfig stores the run configuration as YAML.
func (w *Writer) WriteConfig(config any) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	path := filepath.Join(w.baseDir, "config.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// WriteSummary stores the histogram and the curve as two bracketed lists.
func (w *Writer) WriteSummary(wins []int, probabilities []float64) error {
	path := filepath.Join(w.baseDir, "summary.txt")
	content := FormatInts(wins) + "\n" + FormatFloats(probabilities)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write summary file: %w", err)
	}
	return nil
}

func (w *Writer) WriteDistribution(wins []int, probabilities []float64) error {
	if len(wins) != len(probabilities) {
		return fmt.Errorf("distribution has %d wins but %d probabilities", len(wins), len(probabilities))
	}

	rows := make([][]string, len(wins))
	for shots := range wins {
		rows[shots] = []string{
			strconv.Itoa(shots),
			strconv.Itoa(wins[shots]),
			strconv.FormatFloat(probabilities[shots], 'f', -1, 64),
		}
	}
	return w.writeCSV("distribution.csv", []string{"shots", "wins", "cumulative_probability"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Trial),
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Shots),
			strconv.Itoa(record.Ships),
			record.StartTime.Format(time.RFC3339Nano),
			record.Duration.String(),
		}
	}
	return w.writeCSV("game_records.csv", []string{"trial", "seed", "shots", "ships", "start_time", "duration"}, rows)
}

func (w *Writer) WriteFailures(records []FailureRecord) error {
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Trial),
			strconv.FormatUint(record.Seed, 10),
			strings.ReplaceAll(record.Err.Error(), "\n", " "),
		}
	}
	return w.writeCSV("failures.csv", []string{"trial", "seed", "error"}, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	// Write each row
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
