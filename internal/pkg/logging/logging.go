// Package logging builds the application logger and the field conventions
// shared by adapters.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

// New creates a logrus logger writing to stdout.
// Unknown levels fall back to info, unknown formats to JSON.
func New(level, format string) *logrus.Logger {
	return NewWithOutput(level, format, os.Stdout)
}

// NewWithOutput creates a logger writing to out.
func NewWithOutput(level, format string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if strings.EqualFold(format, FormatText) {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger
}

// Component returns an entry tagged with the component name.
func Component(logger logrus.FieldLogger, name string) *logrus.Entry {
	return logger.WithField("component", name)
}

// LogError records err with the module/function/context triple used across adapters.
// data is attached only when non-nil.
func LogError(logger logrus.FieldLogger, module, funcName, context string, data any, err error) {
	fields := logrus.Fields{
		"module":   module,
		"funcName": funcName,
		"context":  context,
	}
	if data != nil {
		fields["data"] = data
	}
	logger.WithFields(fields).Error(err.Error())
}
