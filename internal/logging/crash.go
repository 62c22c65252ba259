package logging

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
)

// crashLogger receives crash and panic reports. Signal handlers cannot take
// a logger argument, so it lives in a package variable.
var (
	crashLogger   *zerolog.Logger
	crashLoggerMu sync.Mutex
)

// SetupCrashHandler installs signal handlers that log fatal signals before
// the process dies. Call once after the logger is ready.
func SetupCrashHandler(logger *zerolog.Logger) {
	crashLoggerMu.Lock()
	crashLogger = logger
	crashLoggerMu.Unlock()

	c := make(chan os.Signal, 1)
	signal.Notify(c,
		syscall.SIGSEGV, // Segmentation violation
		syscall.SIGABRT, // Abort signal
		syscall.SIGFPE,  // Floating point exception
		syscall.SIGBUS,  // Bus error
		syscall.SIGILL,  // Illegal instruction
	)

	go func() {
		sig := <-c
		handleCrash(sig)
	}()
}

// SetupPanicRecovery logs panic details before re-panicking.
// Call with defer at the start of main functions.
func SetupPanicRecovery() {
	if r := recover(); r != nil {
		logPanic(r)
	}
}

// handleCrash logs crash information and exits.
func handleCrash(sig os.Signal) {
	logger := getCrashLogger()
	if logger == nil {
		fmt.Fprintf(os.Stderr, "CRASH: caught signal %v but no logger available\n", sig)
		os.Exit(1)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	logger.Error().
		Str("signal", sig.String()).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Int("num_cpu", runtime.NumCPU()).
		Uint64("alloc_kb", m.Alloc/1024).
		Uint64("total_alloc_kb", m.TotalAlloc/1024).
		Uint64("sys_kb", m.Sys/1024).
		Uint32("num_gc", m.NumGC).
		Msg("caught fatal signal")
	logger.Error().Msgf("stack trace:\n%s", debug.Stack())

	// Conventional exit code for death by signal
	if s, ok := sig.(syscall.Signal); ok {
		os.Exit(128 + int(s))
	}
	os.Exit(1)
}

// logPanic logs panic information and re-raises it.
func logPanic(r any) {
	logger := getCrashLogger()
	if logger == nil {
		fmt.Fprintf(os.Stderr, "PANIC: %v but no logger available\n", r)
	} else {
		logger.Error().Interface("panic", r).Msg("panic recovered for logging")
		logger.Error().Msgf("stack trace:\n%s", debug.Stack())
	}

	// Re-panic to keep the normal crash behavior
	panic(r)
}

func getCrashLogger() *zerolog.Logger {
	crashLoggerMu.Lock()
	defer crashLoggerMu.Unlock()
	return crashLogger
}
