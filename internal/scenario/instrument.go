package scenario

import (
	"errors"
	"time"

	"github.com/okian/scorehook/internal/domain/model"
	"github.com/okian/scorehook/internal/domain/scoring"
	"github.com/okian/scorehook/pkg/metrics"
)

// Recorder receives step observations. *metrics.Manager implements it.
type Recorder interface {
	StepInvoked(function string)
	StepFailed(function, reason string)
	StepLatency(function string, latencyMs float64)
	RecordGenerated(score int)
}

// Instrument wraps fn so each call is counted and timed on rec, and any score
// record the step leaves in vars.data is observed. The wrapped step itself
// stays free of side effects. A nil rec uses the process-wide manager.
func Instrument(name string, fn Func, rec Recorder) Func {
	if rec == nil {
		rec = metrics.Default()
	}

	return func(vu *model.Context, events Events, done Done) error {
		start := time.Now()
		rec.StepInvoked(name)

		err := fn(vu, events, done)
		rec.StepLatency(name, float64(time.Since(start).Microseconds())/1000)

		if err != nil {
			rec.StepFailed(name, failureReason(err))
			return err
		}
		if r, ok := vu.Record(); ok {
			rec.RecordGenerated(r.Score)
		}
		return nil
	}
}

// InstrumentAll wraps every registered step in place.
func (r *Registry) InstrumentAll(rec Recorder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, fn := range r.funcs {
		r.funcs[name] = Instrument(name, fn, rec)
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, scoring.ErrStructuralAccess):
		return "structural_access"
	default:
		return "error"
	}
}
