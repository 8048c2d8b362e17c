package logging

import (
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverPanic logs a panic with its stack trace and re-panics.
// Call it with defer at the start of main functions.
func RecoverPanic(logger *zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	logger.Error().
		Interface("panic", r).
		Str("go_version", runtime.Version()).
		Str("stack", string(debug.Stack())).
		Msg("PANIC")
	panic(r)
}
