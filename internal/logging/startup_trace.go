package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// StartupTrace records named checkpoints between process launch and first
// paint. Marks recorded before a logger is available are emitted once
// SetLogger runs. Disabled outside debug/trace level, where every method
// is a no-op.
type StartupTrace struct {
	mu      sync.Mutex
	start   time.Time
	marks   []traceMark
	emitted int // marks already written to the logger
	logger  *zerolog.Logger
	active  bool
	done    bool
}

type traceMark struct {
	name    string
	elapsed time.Duration
}

var (
	traceInstance *StartupTrace
	traceInit     sync.Once
)

// InitStartupTrace captures T0 and arms the global trace when logLevel is
// debug or trace. Call it first thing in main.
func InitStartupTrace(logLevel string) {
	traceInit.Do(func() {
		traceInstance = &StartupTrace{
			start:  time.Now(),
			active: logLevel == "debug" || logLevel == "trace",
		}
		traceInstance.Mark("process_start")
	})
}

// Trace returns the global startup trace; before InitStartupTrace it
// returns an inert instance.
func Trace() *StartupTrace {
	if traceInstance == nil {
		return &StartupTrace{}
	}
	return traceInstance
}

// Mark records a checkpoint. Safe before SetLogger; the line is written
// once a logger arrives.
func (t *StartupTrace) Mark(name string) {
	if t == nil || !t.active {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return
	}
	t.marks = append(t.marks, traceMark{name: name, elapsed: time.Since(t.start)})
	t.flushLocked()
}

// SetLogger attaches the logger and emits any checkpoints recorded so far.
func (t *StartupTrace) SetLogger(logger *zerolog.Logger) {
	if t == nil || !t.active {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logger = logger
	t.flushLocked()
}

func (t *StartupTrace) flushLocked() {
	if t.logger == nil {
		return
	}
	for ; t.emitted < len(t.marks); t.emitted++ {
		m := t.marks[t.emitted]
		ev := t.logger.Debug().Str("checkpoint", m.name).Int64("t_ms", m.elapsed.Milliseconds())
		if t.emitted > 0 {
			delta := m.elapsed - t.marks[t.emitted-1].elapsed
			ev = ev.Int64("delta_ms", delta.Milliseconds())
		}
		ev.Msg("startup checkpoint")
	}
}

// Finish closes the trace and logs a one-line summary of all checkpoints.
// Further Marks are ignored.
func (t *StartupTrace) Finish() {
	if t == nil || !t.active {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return
	}
	t.done = true
	if t.logger == nil {
		return
	}

	parts := make([]string, 0, len(t.marks))
	for _, m := range t.marks {
		parts = append(parts, fmt.Sprintf("%s:%d", m.name, m.elapsed.Milliseconds()))
	}
	t.logger.Info().
		Int64("total_ms", time.Since(t.start).Milliseconds()).
		Str("checkpoints", strings.Join(parts, ",")).
		Msg("startup complete")
}
