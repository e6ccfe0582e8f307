// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger writing plain, timestamp-free lines to dst.
// The default level is Warn; verbose raises it to Info, quiet lowers it to
// Error. quiet wins when both are set.
func NewLogger(dst io.Writer, quiet, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(dst)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		DisableColors:          true,
	})
	switch {
	case quiet:
		log.SetLevel(logrus.ErrorLevel)
	case verbose:
		log.SetLevel(logrus.InfoLevel)
	default:
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// Warnf logs a warning unless quiet is set.
func Warnf(log logrus.FieldLogger, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	log.Warnf(format, a...)
}
