package logging

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// StartupTrace records how long the kiosk takes from launch to the window
// being presented. It is active only at debug level.
type StartupTrace struct {
	mu      sync.Mutex
	start   time.Time
	enabled bool
	done    bool
	steps   []startupStep
	logger  *zerolog.Logger
	flushed int // steps already written to logger
}

type startupStep struct {
	name string
	at   time.Duration
}

var (
	traceMu  sync.Mutex
	trace    *StartupTrace
	disabled = &StartupTrace{}
)

// InitStartupTrace starts the process-wide trace. Only the first call counts.
func InitStartupTrace(level string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if trace != nil {
		return
	}
	trace = newStartupTrace(time.Now(), level == "debug" || level == "trace")
	trace.Mark("process_start")
}

func newStartupTrace(start time.Time, enabled bool) *StartupTrace {
	return &StartupTrace{start: start, enabled: enabled}
}

// Trace returns the process-wide trace, or a disabled one before
// InitStartupTrace.
func Trace() *StartupTrace {
	traceMu.Lock()
	defer traceMu.Unlock()
	if trace == nil {
		return disabled
	}
	return trace
}

// SetLogger attaches the logger. Steps marked before it are written now.
func (st *StartupTrace) SetLogger(logger *zerolog.Logger) {
	if !st.Enabled() {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.logger = logger
	st.flushLocked()
}

// Mark records a named step. Steps after Finish are ignored.
func (st *StartupTrace) Mark(name string) {
	if !st.Enabled() {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.done {
		return
	}
	st.steps = append(st.steps, startupStep{name: name, at: time.Since(st.start)})
	st.flushLocked()
}

func (st *StartupTrace) flushLocked() {
	if st.logger == nil {
		return
	}
	for ; st.flushed < len(st.steps); st.flushed++ {
		step := st.steps[st.flushed]
		ev := st.logger.Debug().
			Str("step", step.name).
			Dur("elapsed", step.at)
		if st.flushed > 0 {
			ev = ev.Dur("since_previous", step.at-st.steps[st.flushed-1].at)
		}
		ev.Msg("startup")
	}
}

// Finish logs the whole timeline once.
func (st *StartupTrace) Finish() {
	if !st.Enabled() {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.done {
		return
	}
	st.done = true
	if st.logger == nil {
		return
	}

	timeline := zerolog.Dict()
	for _, step := range st.steps {
		timeline = timeline.Dur(step.name, step.at)
	}
	st.logger.Info().
		Dur("total", time.Since(st.start)).
		Dict("steps", timeline).
		Msg("startup complete")
}

// Enabled reports whether steps are recorded.
func (st *StartupTrace) Enabled() bool {
	return st != nil && st.enabled
}
