// Package rlog carries a structured charmbracelet/log logger through a
// context.Context for the runner and the CLI, and tracks elapsed time for
// the solve phases that get logged at completion.
//
// Grounded on matzehuels-stacktower/internal/cli/log.go's withLogger /
// loggerFromContext / progress pattern.
package rlog

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w at the given level, with timestamps
// enabled.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext retrieves the logger attached to ctx, or log.Default() if
// none was attached.
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}

// Progress tracks the start time of a solve phase and logs its completion
// with elapsed duration. Safe for sequential use by a single goroutine.
type Progress struct {
	logger *log.Logger
	start  time.Time
}

// NewProgress starts a Progress tracker against ctx's logger.
func NewProgress(ctx context.Context) *Progress {
	return &Progress{logger: FromContext(ctx), start: time.Now()}
}

// Done logs msg with the elapsed time since NewProgress, and returns that
// elapsed duration so callers can also record it (e.g. runner.Result.Times).
func (p *Progress) Done(msg string) time.Duration {
	elapsed := time.Since(p.start)
	p.logger.Infof("%s (%s)", msg, elapsed.Round(time.Millisecond))

	return elapsed
}
