package shared

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures the CLI logger, debug flag controls verbosity.
func SetupLogger(debug bool) *log.Logger {
	logger := log.New(os.Stderr)
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
