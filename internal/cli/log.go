// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps writing to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command and logs its outcome once, carrying the
// fields that identify the run (method, output directory, ...).
type progress struct {
	logger *log.Logger
	start  time.Time
	fields []any
}

func newProgress(l *log.Logger, keyvals ...any) *progress {
	return &progress{logger: l, start: time.Now(), fields: keyvals}
}

// done logs msg at info level with the run fields, keyvals and the elapsed
// time, e.g. `saved results method=dahu output=out images=4 elapsed=1.234s`.
func (p *progress) done(msg string, keyvals ...any) {
	kv := make([]any, 0, len(p.fields)+len(keyvals)+2)
	kv = append(kv, p.fields...)
	kv = append(kv, keyvals...)
	kv = append(kv, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, kv...)
}

type ctxKey struct{}

// withLogger attaches l to ctx for the commands run below the root.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext returns the attached logger or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
