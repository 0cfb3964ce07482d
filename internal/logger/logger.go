// Package logger wraps zerolog.Logger with the constructors and
// context helpers the patient record service uses.
//
// Logger embeds zerolog.Logger, so the whole zerolog API (Debug, Info,
// Warn, Error, Fatal, ...) is available on *Logger directly. Handlers and
// repositories obtain request-scoped loggers via FromContext or
// FromRequest instead of holding their own.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so helper methods can be added without
// shadowing the upstream API.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the process-wide *Logger for the given role label
// (e.g. "stroke-records-server").
//
// Configuration:
//   - global level Debug, every level is emitted;
//   - a "role" field carrying the role label;
//   - a "ts" timestamp on every entry;
//   - a "func" caller field holding the fully-qualified function name.
//
// Entries are written to os.Stdout as JSON.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}

	zerolog.CallerFieldName = "func"
	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a *Logger inheriting the receiver's fields. The
// child can gain extra fields without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped *Logger that middleware attached
// to the request context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the *Logger stored in ctx. When ctx carries none,
// zerolog falls back to its global logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
