package logging

import (
	"context"
	"sync"

	"github.com/bnema/puregotk/v4/glib"
	"github.com/rs/zerolog"
)

// The GLib default handler is process-global and its callback cannot carry
// a Go pointer, so the target logger lives here.
var (
	glibTarget  zerolog.Logger
	glibInstall sync.Once
)

// InstallGLibLogHandler routes GLib-family messages (GTK, GDK, WebKit) into
// logger instead of stderr. Must run before the first GTK call. withDebug
// additionally surfaces G_LOG_LEVEL_DEBUG messages, which GLib suppresses
// by default.
func InstallGLibLogHandler(ctx context.Context, logger zerolog.Logger, withDebug bool) {
	glibInstall.Do(func() {
		glibTarget = logger
		if withDebug {
			glib.LogSetDebugEnabled(true)
		}
		handler := glib.LogFunc(routeGLibMessage)
		glib.LogSetDefaultHandler(&handler, 0)
		FromContext(ctx).Info().Bool("glib_debug", withDebug).Msg("GLib log handler installed")
	})
}

func routeGLibMessage(domain string, level glib.LogLevelFlags, message string, _ uintptr) {
	var ev *zerolog.Event
	switch {
	case level&(glib.GLogLevelErrorValue|glib.GLogLevelCriticalValue) != 0:
		ev = glibTarget.Error()
	case level&glib.GLogLevelWarningValue != 0:
		ev = glibTarget.Warn()
	case level&(glib.GLogLevelMessageValue|glib.GLogLevelInfoValue) != 0:
		ev = glibTarget.Info()
	default:
		ev = glibTarget.Debug()
	}
	if domain != "" {
		ev = ev.Str("glib_domain", domain)
	}
	ev.Msg(message)
}
