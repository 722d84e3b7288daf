// Package sampler runs a scenario step over many fresh virtual-user contexts
// and writes the records they produce to a JSON fixture file.
package sampler

import (
	"time"

	"github.com/okian/scorehook/internal/domain/model"
	"github.com/okian/scorehook/internal/scenario"
)

// Config holds configuration for one sampling run.
type Config struct {
	Count    int    // Number of virtual-user contexts
	Workers  int    // Number of concurrent workers
	Function string // Registered step to run on each context
	Output   string // Output file; empty picks generated_records_TIMESTAMP.json
}

// Invoker runs a named step against a context. *scenario.Registry implements it.
type Invoker interface {
	Invoke(name string, vu *model.Context, events scenario.Events) error
}

// Stats holds run statistics.
type Stats struct {
	Generated int
	Failed    int
	Output    string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}
