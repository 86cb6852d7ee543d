package common

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-global logger shared by the execution layer. It defaults
// to warn level so operator debug events stay silent unless enabled.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	Level(zerolog.WarnLevel).
	With().Timestamp().Logger()

// SetLogLevel adjusts the global log level at runtime.
func SetLogLevel(level zerolog.Level) {
	Log = Log.Level(level)
}
