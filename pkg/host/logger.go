package host

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const logFilePermission = 0664

// NewLogger builds the diagnostic logger. Diagnostics go to a file so they
// never interleave with the terminal UI; with no path (or disabled) the
// logger discards everything.
func NewLogger(path string, enabled bool) (zerolog.Logger, io.Closer, error) {
	if !enabled || path == "" {
		return zerolog.New(io.Discard), nil, nil
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePermission)
	if err != nil {
		return zerolog.New(io.Discard), nil, err
	}

	logger := zerolog.New(zerolog.SyncWriter(file)).With().Timestamp().Logger()
	return logger, file, nil
}
