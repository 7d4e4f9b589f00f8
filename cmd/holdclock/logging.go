package main

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/holdclock/internal/config"
)

// runIDHook tags every log entry with the id of the current process run.
type runIDHook struct{ id string }

func (h runIDHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h runIDHook) Fire(e *logrus.Entry) error {
	e.Data["run_id"] = h.id
	return nil
}

// configureLogging sets the log level from flags and installs the run id hook.
func configureLogging() {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
	logrus.AddHook(runIDHook{id: uuid.NewString()})
}

// openLogFile opens path for appending, creating it and its parent directory.
func openLogFile(path string) (*os.File, error) {
	expanded, err := config.ExpandTilde(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o700); err != nil {
		return nil, err
	}
	return os.OpenFile(expanded, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
}
