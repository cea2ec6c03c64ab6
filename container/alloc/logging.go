package alloc

import (
	"context"
	"log/slog"
)

// Logging wraps another allocator and reports every event to a logger.
// Successful events are logged at debug level, refusals at warn.
type Logging struct {
	next   Allocator
	logger *slog.Logger
}

// NewLogging returns a Logging allocator. Nil next means Default, nil
// logger means slog.Default().
func NewLogging(next Allocator, logger *slog.Logger) *Logging {
	if next == nil {
		next = Default
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Logging{next: next, logger: logger}
}

// Acquire forwards b and logs the outcome.
func (l *Logging) Acquire(b Block) error {
	if err := l.next.Acquire(b); err != nil {
		l.logger.Warn("allocation refused", blockAttrs(b, slog.String("error", err.Error()))...)
		return err
	}
	if l.logger.Enabled(context.Background(), slog.LevelDebug) {
		l.logger.Debug("acquire", blockAttrs(b)...)
	}
	return nil
}

// Release logs b and forwards it.
func (l *Logging) Release(b Block) {
	if l.logger.Enabled(context.Background(), slog.LevelDebug) {
		l.logger.Debug("release", blockAttrs(b)...)
	}
	l.next.Release(b)
}

func blockAttrs(b Block, extra ...slog.Attr) []any {
	args := []any{
		slog.String("label", b.Label),
		slog.Int("count", b.Count),
		slog.Int("bytes", b.Bytes()),
	}
	for _, a := range extra {
		args = append(args, a)
	}
	return args
}
