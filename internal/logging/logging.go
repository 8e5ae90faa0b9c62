// Package logging builds the logger shared by every component of a run.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// New returns a logger writing to out. Components add their own "prefix"
// field. verbose lowers the level to Debug and adds timestamps.
func New(out io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&prefixed.TextFormatter{
		DisableTimestamp: !verbose,
		FullTimestamp:    verbose,
		TimestampFormat:  "15:04:05.000",
		ForceFormatting:  true,
	})
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
