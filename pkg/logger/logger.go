package logger

import (
	"github.com/hsdfat/go-zlog/logger"
	"go.uber.org/zap"
)

// Log is the process logger of the bssap tools. The codec packages never
// log; only the CLI and infrastructure packages use it.
var Log logger.LoggerI = logger.NewLogger()

func init() {
	// report the caller of Log, not this wrapper
	Log.(*logger.Logger).SugaredLogger = Log.(*logger.Logger).SugaredLogger.WithOptions(zap.AddCallerSkip(1))
}

// SetLevel sets the global log level.
// Valid levels: "debug", "info", "warn", "error", "fatal"
func SetLevel(level string) {
	logger.SetLevel(level)
}

// WithFields returns a logger that adds the given key/value pairs to every
// entry, e.g. WithFields("input", path, "format", "hex")
func WithFields(args ...any) logger.LoggerI {
	return Log.With(args...).(logger.LoggerI)
}

// ForMessage returns a logger tagged with a decoded message's position in
// the input stream and its type name
func ForMessage(index int, name string) logger.LoggerI {
	return WithFields("msg_index", index, "msg_type", name)
}
