package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-timber/internal/config"
)

// nopCloser is returned when the logger does not own its writer.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds the logger for a command. Logs go to the configured file
// when there is one, otherwise to fallback. The returned closer releases the
// file.
func newLogger(c config.Config, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := c.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	w := fallback
	var closer io.Closer = nopCloser{}
	if c.Log.File != "" {
		path, expandErr := config.ExpandHome(c.Log.File)
		if expandErr != nil {
			return nil, nil, expandErr
		}
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, closer, nil
}
