// Package scenario is the plugin surface a load-testing harness calls into
// between its built-in actions: named step functions that read and write a
// virtual-user context and then signal completion.
package scenario

import (
	"github.com/okian/scorehook/internal/domain/model"
)

// Events is the harness instrumentation handle passed to every step.
type Events interface {
	Emit(name string, args ...any)
}

// Done tells the harness a step has finished.
type Done func()

// Func is a scenario step. It must call done exactly once when it returns
// nil, and must not call it when it returns an error.
type Func func(vu *model.Context, events Events, done Done) error

// NopEvents discards everything emitted to it.
type NopEvents struct{}

// Emit implements Events.
func (NopEvents) Emit(string, ...any) {}
