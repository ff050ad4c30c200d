// Wires logrus for internal diagnostic logging. This is entirely
// separate from the mandated stdout timeline trace: debug-level engine
// decisions go to Logger's output (stderr by default), never to the
// TraceSink.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Logger is the package-level logger used for internal diagnostics.
// The CLI sets its level from the --log-level flag.
var Logger = logrus.New()

// SetLogLevel parses and applies name as Logger's level.
func SetLogLevel(name string) error {
	level, err := parseLogLevelName(name)
	if err != nil {
		return err
	}
	Logger.SetLevel(level)
	return nil
}

func parseLogLevelName(name string) (logrus.Level, error) {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
