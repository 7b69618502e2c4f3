// Package logger provides leveled console logging for the API server.
package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"
)

var logger *logging.Logger

func init() {
	InitLogger(logging.INFO)
}

// InitLogger (re)configures the console backend with the given level.
func InitLogger(level logging.Level) {
	newLogger := logging.MustGetLogger("forkful")

	format := logging.MustStringFormatter(
		`%{time:2006/01/02 15:04:05} %{level} - %{message}`,
	)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "forkful")

	newLogger.SetBackend(leveled)
	logger = newLogger
}

// ParseLevel maps a config string to a logging level, defaulting to INFO.
func ParseLevel(s string) logging.Level {
	level, err := logging.LogLevel(s)
	if err != nil {
		return logging.INFO
	}
	return level
}

// sprint joins args with single spaces regardless of their types.
func sprint(args ...any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

func Debug(args ...any) {
	logger.Debug(sprint(args...))
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Info(args ...any) {
	logger.Info(sprint(args...))
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warning(args ...any) {
	logger.Warning(sprint(args...))
}

func Warningf(format string, args ...any) {
	logger.Warningf(format, args...)
}

func Error(args ...any) {
	logger.Error(sprint(args...))
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
