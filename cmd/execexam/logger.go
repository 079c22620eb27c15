package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// newLogger creates the shared logger. The level comes from LOG_LEVEL and
// defaults to warn so log lines do not mix with the diagnostics; --verbose
// raises it to debug.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "warn"
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid LOG_LEVEL '%s', defaulting to 'warn'\n", logLevel)
		level = logrus.WarnLevel
	}
	log.SetLevel(level)
	return log
}
