// Package logging is the operator log: structured logrus output carrying the
// service name, with the level taken from configuration.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus with the service context
type Logger struct {
	*logrus.Logger
	serviceName string
}

// New creates a text logger writing to out at the given level
func New(serviceName, level string, out io.Writer) *Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	log.SetLevel(ParseLevel(level))
	log.SetOutput(out)

	return &Logger{
		Logger:      log,
		serviceName: serviceName,
	}
}

// NewFile creates a JSON logger appending to path, creating parent directories.
// The returned closer releases the file.
func NewFile(serviceName, level, path string) (*Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := New(serviceName, level, f)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	return l, f, nil
}

// Discard returns a logger that drops everything; used by tests and as a fallback
func Discard() *Logger {
	return New("discard", "panic", io.Discard)
}

// ParseLevel maps a config level name to a logrus level, defaulting to info
func ParseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// WithRequest adds the request method, URL and id
func (l *Logger) WithRequest(method, url, requestID string) *logrus.Entry {
	return l.WithFields(logrus.Fields{
		"service":    l.serviceName,
		"method":     method,
		"url":        url,
		"request_id": requestID,
	})
}

// WithError adds the error to the service context
func (l *Logger) WithError(err error) *logrus.Entry {
	return l.WithFields(logrus.Fields{
		"service": l.serviceName,
		"error":   err.Error(),
	})
}

// Service returns an entry carrying only the service name
func (l *Logger) Service() *logrus.Entry {
	return l.WithField("service", l.serviceName)
}
