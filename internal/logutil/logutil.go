// Package logutil holds the shared logger and level plumbing for the CLI.
package logutil

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Commands configure its level once at
// startup; everything else just logs through it.
var Log = logrus.New()

// SetLevel maps a level name to the logger. Unknown names fall back to
// info.
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		Log.SetLevel(logrus.DebugLevel)
	case "info":
		Log.SetLevel(logrus.InfoLevel)
	case "warning", "warn":
		Log.SetLevel(logrus.WarnLevel)
	case "error":
		Log.SetLevel(logrus.ErrorLevel)
	case "fatal":
		Log.SetLevel(logrus.FatalLevel)
	default:
		Log.SetLevel(logrus.InfoLevel)
		Log.Warnf("unknown log level %q, using info", level)
	}
}
