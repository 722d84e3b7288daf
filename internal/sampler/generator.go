package sampler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/scorehook/internal/domain/model"
	"github.com/okian/scorehook/pkg/logger"
)

const reportInterval = time.Second

// generateRecords runs cfg.Function on cfg.Count fresh contexts and returns
// the records in context order. The first step error cancels the remaining work.
func generateRecords(ctx context.Context, cfg *Config, inv Invoker, stats *Stats) ([]model.ScoreRecord, error) {
	log := logger.Named("sampler")
	log.Info(ctx, "generating records",
		logger.String("function", cfg.Function),
		logger.Int("count", cfg.Count),
		logger.Int("workers", cfg.Workers))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	records := make([]model.ScoreRecord, cfg.Count)
	var (
		generated int64
		failed    int64
		firstErr  error
		errOnce   sync.Once
	)
	fail := func(err error) {
		atomic.AddInt64(&failed, 1)
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	workerCount := min(cfg.Workers, cfg.Count)
	indexChan := make(chan int, workerCount*2)
	var wg sync.WaitGroup

	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexChan {
				if ctx.Err() != nil {
					return
				}
				rec, err := runOne(ctx, cfg.Function, inv, log)
				if err != nil {
					fail(fmt.Errorf("context %d: %w", i, err))
					return
				}
				records[i] = rec
				atomic.AddInt64(&generated, 1)
			}
		}()
	}

	stopReport := make(chan struct{})
	go reportProgress(ctx, log, cfg.Count, &generated, stopReport)

	go func() {
		defer close(indexChan)
		for i := 0; i < cfg.Count; i++ {
			select {
			case <-ctx.Done():
				return
			case indexChan <- i:
			}
		}
	}()

	wg.Wait()
	close(stopReport)

	stats.Generated = int(atomic.LoadInt64(&generated))
	stats.Failed = int(atomic.LoadInt64(&failed))

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil && stats.Generated < cfg.Count {
		return nil, fmt.Errorf("context cancelled during generation: %w", err)
	}

	log.Info(ctx, "generated records successfully", logger.Int("count", stats.Generated))
	return records, nil
}

// runOne drives a single fresh virtual user through the step.
func runOne(ctx context.Context, function string, inv Invoker, log logger.Logger) (model.ScoreRecord, error) {
	vu := model.NewContext()
	events := logEvents{ctx: ctx, logger: log, vuID: vu.ID}

	if err := inv.Invoke(function, vu, events); err != nil {
		return model.ScoreRecord{}, err
	}
	rec, ok := vu.Record()
	if !ok {
		return model.ScoreRecord{}, ErrMissingRecord
	}
	return rec, nil
}

func reportProgress(ctx context.Context, log logger.Logger, total int, generated *int64, stop <-chan struct{}) {
	ticker := time.NewTicker(reportInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
			log.Info(ctx, "progress",
				logger.Int64("generated", atomic.LoadInt64(generated)),
				logger.Int("total", total))
		}
	}
}
