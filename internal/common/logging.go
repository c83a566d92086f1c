package common

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// NewLogger builds the run logger. The log file is truncated on every run;
// path "-" logs to stderr instead. The returned closer releases the file.
func NewLogger(path string, verbose bool) (*slog.Logger, io.Closer, error) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	var w io.WriteCloser = nopCloser{os.Stderr}
	if path != "" && path != "-" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel}))
	return logger.With("run_id", uuid.NewString()), w, nil
}

// DiscardLogger returns a logger that drops everything. Used by tests and by
// library callers that pass no logger.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
