package sampler

import (
	"context"

	"github.com/okian/scorehook/pkg/logger"
)

// logEvents forwards step instrumentation to the debug log.
type logEvents struct {
	ctx    context.Context
	logger logger.Logger
	vuID   string
}

func (e logEvents) Emit(name string, args ...any) {
	e.logger.Debug(e.ctx, "step event",
		logger.String("vu", e.vuID),
		logger.String("event", name),
		logger.Any("args", args))
}
