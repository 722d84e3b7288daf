package sampler

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/scorehook/internal/domain/model"
	"github.com/okian/scorehook/pkg/logger"
)

const directoryPermission = 0o750

// Run generates cfg.Count records through inv and writes them to cfg.Output.
func Run(ctx context.Context, cfg *Config, inv Invoker) (*Stats, error) {
	if err := validate(cfg, inv); err != nil {
		return nil, err
	}

	stats := &Stats{StartTime: time.Now()}
	defer func() {
		stats.EndTime = time.Now()
		stats.Duration = stats.EndTime.Sub(stats.StartTime)
	}()

	records, err := generateRecords(ctx, cfg, inv, stats)
	if err != nil {
		return stats, fmt.Errorf("record generation failed: %w", err)
	}

	path, err := saveRecords(ctx, cfg.Output, records)
	if err != nil {
		return stats, fmt.Errorf("saving records failed: %w", err)
	}
	stats.Output = path

	logFinalStats(ctx, stats)

	return stats, nil
}

func validate(cfg *Config, inv Invoker) error {
	switch {
	case cfg == nil:
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	case inv == nil:
		return fmt.Errorf("%w: nil invoker", ErrInvalidConfig)
	case cfg.Count <= 0:
		return fmt.Errorf("%w: count must be positive", ErrInvalidConfig)
	case cfg.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive", ErrInvalidConfig)
	case cfg.Function == "":
		return fmt.Errorf("%w: function must not be empty", ErrInvalidConfig)
	}
	return nil
}

// saveRecords writes records as a JSON array, one record per line, and
// returns the path written.
func saveRecords(ctx context.Context, filename string, records []model.ScoreRecord) (string, error) {
	if len(records) == 0 {
		return "", ErrNoRecords
	}

	if filename == "" {
		filename = "generated_records_" + time.Now().Format("20060102_150405") + ".json"
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(ctx, "failed to close file", logger.Error(err))
		}
	}()

	if _, err := file.WriteString("[\n"); err != nil {
		return "", fmt.Errorf("failed to write opening bracket: %w", err)
	}
	for i, rec := range records {
		line, err := json.Marshal(rec)
		if err != nil {
			return "", fmt.Errorf("failed to marshal record %d: %w", i, err)
		}
		if i < len(records)-1 {
			line = append(line, ',')
		}
		line = append(line, '\n')
		if _, err := file.Write(line); err != nil {
			return "", fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	if _, err := file.WriteString("]\n"); err != nil {
		return "", fmt.Errorf("failed to write closing bracket: %w", err)
	}

	logger.Get().Info(ctx, "records saved to file", logger.String("filename", filename))
	return filename, nil
}

func logFinalStats(ctx context.Context, stats *Stats) {
	elapsed := time.Since(stats.StartTime)
	var perSecond float64
	if elapsed > 0 {
		perSecond = float64(stats.Generated) / elapsed.Seconds()
	}

	logger.Get().Info(ctx, "final statistics",
		logger.Int("generated", stats.Generated),
		logger.Int("failed", stats.Failed),
		logger.String("output", stats.Output),
		logger.Duration("duration", elapsed),
		logger.Float64("recordsPerSecond", perSecond))
}
