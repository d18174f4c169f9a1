package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// LevelEnv names the environment variable that overrides the log level
const LevelEnv = "SLEEP_GUARD_LOG_LEVEL"

var (
	log  *logrus.Logger
	once sync.Once
)

// Init initializes the logger with the specified level
func Init(level string) {
	log = logrus.New()

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(os.Stderr)

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("Invalid log level, using info")
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)
}

// Get returns the global logger instance, initializing it from the
// environment on first use
func Get() *logrus.Logger {
	once.Do(func() {
		if log != nil {
			return
		}
		level := os.Getenv(LevelEnv)
		if level == "" {
			level = "info"
		}
		Init(level)
	})
	return log
}

// WithField creates a new entry with a single field
func WithField(key string, value interface{}) *logrus.Entry {
	return Get().WithField(key, value)
}

// WithFields creates a new entry with the specified fields
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Get().WithFields(fields)
}

// WithComponent scopes log entries to one part of the application
func WithComponent(name string) *logrus.Entry {
	return WithField("component", name)
}
