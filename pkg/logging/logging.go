package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	once      sync.Once
	singleton *log.Logger
)

func getLogger() *log.Logger {
	once.Do(func() {
		singleton = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Prefix:          "raytracer",
		})
		singleton.SetLevel(log.InfoLevel)
	})
	return singleton
}

// Logger returns the shared logger. It satisfies core.Logger.
func Logger() *log.Logger {
	return getLogger()
}

// SetLevel parses one of debug, info, warn, error or fatal
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	getLogger().SetLevel(lvl)
	return nil
}

// SetOutput redirects log output
func SetOutput(w io.Writer) {
	getLogger().SetOutput(w)
}

// With returns a child logger carrying the given key/value pairs
func With(keyvals ...interface{}) *log.Logger {
	return getLogger().With(keyvals...)
}

func Debug(msg string, keyvals ...interface{}) {
	getLogger().Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...interface{}) {
	getLogger().Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	getLogger().Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	getLogger().Error(msg, keyvals...)
}

func Fatal(msg string, keyvals ...interface{}) {
	getLogger().Fatal(msg, keyvals...)
}
