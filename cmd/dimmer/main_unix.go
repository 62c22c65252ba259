//go:build linux || darwin

package main

import (
	"context"
	"runtime/debug"
	"strconv"

	"github.com/bnema/dimmer/internal/logging"
	"golang.org/x/sys/unix"
)

// enableCrashForensics makes native crashes debuggable: Go tracebacks
// include all goroutines on fatal signals, and the core-dump soft limit is
// raised to the hard limit so WebKit segfaults can leave a core behind.
func enableCrashForensics() {
	debug.SetTraceback("crash")

	var lim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_CORE, &lim); err != nil || lim.Cur >= lim.Max {
		return
	}
	lim.Cur = lim.Max
	_ = unix.Setrlimit(unix.RLIMIT_CORE, &lim)
}

// logCoreDumpLimits records the effective RLIMIT_CORE so a missing core
// file after a crash can be explained from the log alone.
func logCoreDumpLimits(ctx context.Context) {
	log := logging.FromContext(ctx)

	var lim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_CORE, &lim); err != nil {
		log.Debug().Err(err).Msg("RLIMIT_CORE unavailable")
		return
	}

	fmtLim := func(v uint64) string {
		if v == unix.RLIM_INFINITY {
			return "infinity"
		}
		return strconv.FormatUint(v, 10)
	}
	log.Debug().Str("soft", fmtLim(lim.Cur)).Str("hard", fmtLim(lim.Max)).Msg("core dump limits")
}
