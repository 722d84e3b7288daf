package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

// DataKey is the vars key the score step writes to.
const DataKey = "data"

// Vars holds the per-virtual-user variables later steps read from.
type Vars map[string]any

// Context is the per-virtual-user state a harness threads through every
// scenario step. It is owned by a single execution at a time.
type Context struct {
	ID   string
	Vars Vars
}

// NewContext returns a context with a fresh ID and empty vars.
func NewContext() *Context {
	return &Context{
		ID:   uuid.New().String(),
		Vars: make(Vars),
	}
}

// Record returns the score record stored under vars.data, if any.
func (c *Context) Record() (ScoreRecord, bool) {
	if c == nil || c.Vars == nil {
		return ScoreRecord{}, false
	}
	rec, ok := c.Vars[DataKey].(ScoreRecord)
	return rec, ok
}

// Payload encodes vars as JSON, the shape a templated request body sees.
func (c *Context) Payload() ([]byte, error) {
	if c == nil || c.Vars == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.Vars)
}
