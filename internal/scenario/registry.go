package scenario

import (
	"fmt"
	"sort"
	"sync"

	"github.com/okian/scorehook/internal/domain/model"
	"github.com/okian/scorehook/internal/domain/scoring"
)

// CreateRandomScore is the name scenarios reference the score step by.
const CreateRandomScore = "createRandomScore"

// Registry maps function names, as written in a scenario definition, to steps.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Default returns a registry exposing the score step backed by gen.
func Default(gen *scoring.Generator) *Registry {
	r := NewRegistry()
	_ = r.Register(CreateRandomScore, ScoreStep(gen))
	return r
}

// ScoreStep adapts the generator to the Func signature.
func ScoreStep(gen *scoring.Generator) Func {
	return func(vu *model.Context, events Events, done Done) error {
		return gen.CreateRandomScore(vu, events, done)
	}
}

// Register adds fn under name.
func (r *Registry) Register(name string, fn Func) error {
	if name == "" || fn == nil {
		return fmt.Errorf("%w: %q", ErrInvalidFunction, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.funcs[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateFunction, name)
	}
	r.funcs[name] = fn
	return nil
}

// Lookup returns the step registered under name.
func (r *Registry) Lookup(name string) (Func, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
	return fn, nil
}

// Names lists registered functions in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the named step the way a harness would and checks that it
// kept the completion contract. Step errors are returned unchanged.
func (r *Registry) Invoke(name string, vu *model.Context, events Events) error {
	fn, err := r.Lookup(name)
	if err != nil {
		return err
	}
	if events == nil {
		events = NopEvents{}
	}

	calls := 0
	if err := fn(vu, events, func() { calls++ }); err != nil {
		return err
	}
	if calls != 1 {
		return fmt.Errorf("%w: %s signalled %d times", ErrCompletionSignal, name, calls)
	}
	return nil
}
