// Package logging provides the application logger and request ID
// propagation for request-scoped log correlation.
package logging

import (
	"github.com/sirupsen/logrus"
)

// New builds the application logger. Debug mode lowers the level so
// per-query and per-request diagnostics show up.
func New(debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
